package evn

import "fmt"

// CheckDigit computes the check digit over an 11-digit body.
//
// Digits at even positions (counting from zero at the left) are doubled and
// folded to the sum of their decimal digits; odd positions count once. The
// check digit tops the total up to the next multiple of ten.
func CheckDigit(body string) (int, error) {
	if len(body) != bodyLength || !isDigits(body) {
		return 0, fmt.Errorf("%w: check digit needs %d digits, got %q", ErrInvalidLength, bodyLength, body)
	}
	return checkDigit(body), nil
}

// checkDigit assumes body is already known to be 11 ASCII digits.
func checkDigit(body string) int {
	total := 0
	for i := 0; i < len(body); i++ {
		product := int(body[i] - '0')
		if i%2 == 0 {
			product *= 2
		}
		if product > 9 {
			product = product/10 + product%10
		}
		total += product
	}

	last := total % 10
	if last == 0 {
		return 0
	}
	return 10 - last
}

// VerifyCheckDigit reports whether a 12-digit string ends in the check digit
// of its first 11 digits.
func VerifyCheckDigit(code string) bool {
	if len(code) != Length || !isDigits(code) {
		return false
	}
	return checkDigit(code[:bodyLength]) == int(code[bodyLength]-'0')
}
