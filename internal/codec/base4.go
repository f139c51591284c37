// Package codec implements the base-4-letter numeral encoding used by every artifact the
// assembler emits. It is the text encoding counterpart to the teacher's Intel-Hex style object
// encoding: instead of marshaling a whole object-code document at once, it encodes and decodes one
// integer at a time, since the artifacts are simple tab-separated tables rather than a single
// self-describing document.
//
// Digits are a b c d, standing for 0 1 2 3 in base 4. The pad character for fixed-width fields is
// 'a', the zero digit, never a space.
package codec

import (
	"fmt"
)

// digits maps a base-4 digit value to its letter.
const digits = "abcd"

// Encode returns the base-4-letter digits of n, a non-negative integer, left-padded with 'a' to at
// least minWidth characters. Encode(0, 0) returns the empty string; Encode(0, n) returns n copies
// of 'a'.
func Encode(n int, minWidth int) string {
	if n < 0 {
		panic(fmt.Sprintf("codec: Encode: negative value %d", n))
	}

	var buf []byte

	for n > 0 {
		buf = append([]byte{digits[n%4]}, buf...)
		n /= 4
	}

	if pad := minWidth - len(buf); pad > 0 {
		padding := make([]byte, pad)
		for i := range padding {
			padding[i] = 'a'
		}

		buf = append(padding, buf...)
	}

	return string(buf)
}

// ErrInvalidDigit is returned by Decode when a character outside a..d is encountered.
var ErrInvalidDigit = fmt.Errorf("codec: invalid base-4-letter digit")

// Decode parses a base-4-letter string back into its integer value. An empty string decodes to 0.
func Decode(s string) (int, error) {
	n := 0

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < 'a' || c > 'd' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDigit, s[i:i+1])
		}

		n = n*4 + int(c-'a')
	}

	return n, nil
}
