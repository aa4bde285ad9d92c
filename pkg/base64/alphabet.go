package base64

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

const padding = '='

// Sentinel values in decodeMap, outside of the 6-bit value space.
const (
	paddingValue = 0xFE
	invalidValue = 0xFF
)

// decodeMap maps every byte to its 6-bit alphabet value, paddingValue for
// '=' or invalidValue. It is read-only after initialization.
var decodeMap = func() [256]byte {
	var m [256]byte
	for i := range m {
		m[i] = invalidValue
	}
	for i := 0; i < len(alphabet); i++ {
		m[alphabet[i]] = byte(i)
	}
	m[padding] = paddingValue
	return m
}()
