package evn

import (
	"fmt"
	"strings"

	"github.com/example/evn/internal/core/country"
)

// Field boundaries within a normalized code.
const (
	countryStart    = 2
	countryEnd      = 4
	vehicleStart    = 4
	locomotiveSplit = 7
	wagonSplit      = 8
)

// Validate checks raw after normalization. It returns nil for a valid code,
// otherwise an error wrapping ErrInvalidLength, ErrInvalidCountryCode or
// ErrInvalidChecksum. The checks always run in that order, so a code that is
// both too short and carries an unknown country reports the length.
func Validate(raw string) error {
	_, err := validateNormalized(raw)
	return err
}

func validateNormalized(raw string) (string, error) {
	code := Normalize(raw)
	if len(code) != Length {
		return "", fmt.Errorf("%w: got %d digits", ErrInvalidLength, len(code))
	}

	cc := code[countryStart:countryEnd]
	if _, ok := country.LookupNumeric(cc); !ok {
		return "", fmt.Errorf("%w: %s is not registered", ErrInvalidCountryCode, cc)
	}

	want := checkDigit(code[:bodyLength])
	if got := int(code[bodyLength] - '0'); got != want {
		return "", fmt.Errorf("%w: check digit is %d, expected %d", ErrInvalidChecksum, got, want)
	}

	return code, nil
}

// Decode validates raw and splits it into its fields. Validation failures are
// returned unchanged.
func Decode(raw string) (Record, error) {
	code, err := validateNormalized(raw)
	if err != nil {
		return Record{}, err
	}

	r := Record{
		raw:         raw,
		normalized:  code,
		countryCode: code[countryStart:countryEnd],
		countryISO:  country.UnknownISO,
		countryName: country.UnknownName,
		category:    Classify(code),
		checkDigit:  code[bodyLength:],
	}

	split := splitPoint(r.category)
	r.technical = code[vehicleStart:split]
	r.serial = code[split:bodyLength]
	if r.category.IsLocomotiveLayout() {
		r.subType, r.hasSubType = SubTypeFromDigit(code[1])
	}

	if c, ok := country.LookupNumeric(r.countryCode); ok {
		r.countryISO = c.ISO
		r.countryName = c.Name
	}

	return r, nil
}

// Format renders a record as "CC TT GGG SSSS-K" for traction and special
// vehicles and "CC TT GGGG SSS-K" for wagons. The grouping is positional
// over the normalized digits.
func Format(r Record) string {
	code := r.normalized
	if len(code) != Length {
		return r.raw
	}
	split := splitPoint(r.category)

	var b strings.Builder
	b.Grow(Length + 4)
	b.WriteString(code[0:countryStart])
	b.WriteByte(' ')
	b.WriteString(code[countryStart:countryEnd])
	b.WriteByte(' ')
	b.WriteString(code[vehicleStart:split])
	b.WriteByte(' ')
	b.WriteString(code[split:bodyLength])
	b.WriteByte('-')
	b.WriteString(code[bodyLength:])
	return b.String()
}

func splitPoint(c Category) int {
	if c.IsLocomotiveLayout() {
		return locomotiveSplit
	}
	return wagonSplit
}
