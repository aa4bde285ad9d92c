package base64

import (
	"golang.org/x/exp/slices"
)

// EncodedLen returns the length in bytes of the base64 encoding
// of an input buffer of length n.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// DecodedLen returns the maximum length in bytes of the decoded data
// corresponding to n bytes of base64-encoded data.
func DecodedLen(n int) int {
	return n / 4 * 3
}

// Encode returns the base64 encoding of raw. The result is always padded to
// a multiple of four bytes, and is empty for empty input.
//
// Encoding never fails.
func Encode(raw []byte) []byte {
	return AppendEncode(make([]byte, 0, EncodedLen(len(raw))), raw)
}

// EncodeToString returns the base64 encoding of raw as a string.
//
// The encoding consists only of ASCII characters, so the result is always
// valid UTF-8.
func EncodeToString(raw []byte) string {
	return string(Encode(raw))
}

// AppendEncode appends the base64 encoding of raw to dst and returns the
// extended buffer. The buffer is grown at most once.
func AppendEncode(dst, raw []byte) []byte {
	dst = slices.Grow(dst, EncodedLen(len(raw)))

	i := 0
	for ; len(raw)-i >= 3; i += 3 {
		v := uint(raw[i])<<16 | uint(raw[i+1])<<8 | uint(raw[i+2])
		dst = append(dst,
			alphabet[v>>18&0x3F],
			alphabet[v>>12&0x3F],
			alphabet[v>>6&0x3F],
			alphabet[v&0x3F],
		)
	}

	// Missing bytes of the final group are treated as zero bits.
	switch len(raw) - i {
	case 2:
		v := uint(raw[i])<<16 | uint(raw[i+1])<<8
		dst = append(dst,
			alphabet[v>>18&0x3F],
			alphabet[v>>12&0x3F],
			alphabet[v>>6&0x3F],
			padding,
		)
	case 1:
		v := uint(raw[i]) << 16
		dst = append(dst,
			alphabet[v>>18&0x3F],
			alphabet[v>>12&0x3F],
			padding,
			padding,
		)
	}

	return dst
}

// Decode returns the bytes represented by the base64 encoded input.
//
// It returns an *ErrInvalidCharacter if the input contains a byte outside
// of the alphabet (including whitespace), misplaced padding, or non-zero
// unused bits before the padding. It returns an *ErrInvalidLength if the
// input is not a multiple of four bytes long. Decoding is all-or-nothing,
// the returned slice is nil on error.
func Decode(ascii []byte) ([]byte, error) {
	raw, err := AppendDecode(make([]byte, 0, DecodedLen(len(ascii))), ascii)
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// DecodeString returns the bytes represented by the base64 string s.
func DecodeString(s string) ([]byte, error) {
	return Decode([]byte(s))
}

// AppendDecode appends the bytes represented by the base64 encoded input
// to dst and returns the extended buffer.
//
// If the input is invalid, dst is returned with its original length and
// contents along with the error.
func AppendDecode(dst, ascii []byte) ([]byte, error) {
	if i := slices.IndexFunc(ascii, invalidByte); i >= 0 {
		return dst, NewInvalidCharacterError(i, ascii[i])
	}

	if len(ascii)%4 != 0 {
		return dst, NewInvalidLengthError(len(ascii))
	}

	out := slices.Grow(dst, DecodedLen(len(ascii)))

	for i := 0; i < len(ascii); i += 4 {
		v, n, err := decodeGroup(ascii, i, i+4 == len(ascii))
		if err != nil {
			return dst, err
		}

		switch n {
		case 3:
			out = append(out, byte(v>>16), byte(v>>8), byte(v))
		case 2:
			out = append(out, byte(v>>16), byte(v>>8))
		case 1:
			out = append(out, byte(v>>16))
		}
	}

	return out, nil
}

func invalidByte(c byte) bool {
	return decodeMap[c] == invalidValue
}

// decodeGroup decodes the four characters starting at ascii[i] into a 24-bit
// value and the number of bytes it carries. Padding is only allowed when
// final is set, as "XX==" or "XXX=".
//
// Every byte of ascii must already be known to be an alphabet or padding
// character.
func decodeGroup(ascii []byte, i int, final bool) (v uint, n int, err error) {
	n = 3
	for j := 0; j < 4; j++ {
		d := decodeMap[ascii[i+j]]
		if d == paddingValue {
			if !final || j < 2 || ascii[i+3] != padding {
				return 0, 0, NewInvalidCharacterError(i+j, padding)
			}
			if n == 3 {
				n = j - 1
			}
			d = 0
		}
		v = v<<6 | uint(d)
	}

	// The bits of the last character that do not reach an output byte must
	// be zero, otherwise the input is not the canonical encoding.
	switch {
	case n == 2 && v&0xFF != 0:
		return 0, 0, NewInvalidCharacterError(i+2, ascii[i+2])
	case n == 1 && v&0xFFFF != 0:
		return 0, 0, NewInvalidCharacterError(i+1, ascii[i+1])
	}

	return v, n, nil
}
