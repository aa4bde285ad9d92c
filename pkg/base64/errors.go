package base64

import "fmt"

// ErrInvalidLength is returned when the input to decode is not a
// multiple of four bytes long.
type ErrInvalidLength struct {
	Length int
}

func (e *ErrInvalidLength) Error() string {
	return fmt.Sprintf("base64: invalid input length %d, must be a multiple of 4", e.Length)
}

func NewInvalidLengthError(length int) *ErrInvalidLength {
	return &ErrInvalidLength{Length: length}
}

// ErrInvalidCharacter is returned when the input to decode contains a byte
// outside of the alphabet, padding in a position it is not allowed, or a
// final character with non-zero unused bits.
type ErrInvalidCharacter struct {
	// Offset is the index of the offending byte in the input.
	Offset int

	// Char is the offending byte.
	Char byte
}

func (e *ErrInvalidCharacter) Error() string {
	return fmt.Sprintf("base64: invalid character %q at offset %d", e.Char, e.Offset)
}

func NewInvalidCharacterError(offset int, char byte) *ErrInvalidCharacter {
	return &ErrInvalidCharacter{Offset: offset, Char: char}
}
