// Package evn implements the European Vehicle Number codec: normalization,
// checksum, classification, decoding, formatting and random generation.
// This is part of the Functional Core - no I/O, only pure functions.
package evn

import "strings"

// Length is the number of digits in a normalized EVN.
const Length = 12

// bodyLength is the number of digits covered by the check digit.
const bodyLength = Length - 1

// Normalize strips every character that is not an ASCII digit, so
// "94 51 2150 054-6" and "94512150054-6" both become "945121500546".
func Normalize(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		if c := input[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
