package base64_test

import (
	"errors"
	"fmt"

	"github.com/friendlymatthew/based64/pkg/base64"
)

func ExampleEncode() {
	encoded := base64.Encode([]byte("foobar"))

	fmt.Println(string(encoded))
	// Output: Zm9vYmFy
}

func ExampleEncodeToString() {
	fmt.Println(base64.EncodeToString([]byte("Hello World")))
	// Output: SGVsbG8gV29ybGQ=
}

func ExampleDecode() {
	raw, err := base64.Decode([]byte("Zm9vYmFy"))
	if err != nil {
		panic(err)
	}

	fmt.Println(string(raw))
	// Output: foobar
}

func ExampleDecode_invalidCharacter() {
	_, err := base64.Decode([]byte("AB C="))

	var charErr *base64.ErrInvalidCharacter
	if errors.As(err, &charErr) {
		fmt.Printf("offset %d: %q\n", charErr.Offset, charErr.Char)
	}
	// Output: offset 2: ' '
}

func ExampleDecode_invalidLength() {
	_, err := base64.DecodeString("Zm9vYmE")

	fmt.Println(err)
	// Output: base64: invalid input length 7, must be a multiple of 4
}

func ExampleAppendEncode() {
	header := []byte("Authorization: Basic ")
	header = base64.AppendEncode(header, []byte("user:secret"))

	fmt.Println(string(header))
	// Output: Authorization: Basic dXNlcjpzZWNyZXQ=
}
