package evn

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/example/evn/internal/core/country"
)

// GenerateOptions constrains Random. Zero values mean "not requested".
type GenerateOptions struct {
	// Country is a 2-digit numeric code ("51") or an ISO code ("PL").
	Country string
	// Category selects the vehicle category. CategoryUnknown picks one of the
	// four categories uniformly at random.
	Category Category
	// SubType fixes the second digit of traction vehicle codes when
	// HasSubType is set. It is ignored for every other category.
	SubType    SubType
	HasSubType bool
}

// Generator synthesizes valid EVNs.
//
// The zero Generator, and one built from a nil source, draws from the
// process-level math/rand/v2 source and is safe for concurrent use. A
// Generator built from a non-nil source is reproducible but must not be
// shared between goroutines.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator drawing from src.
func NewGenerator(src rand.Source) *Generator {
	if src == nil {
		return &Generator{}
	}
	return &Generator{rng: rand.New(src)}
}

var defaultGenerator Generator

// Random generates a code with the process-level random source.
func Random(opts GenerateOptions) (string, error) {
	return defaultGenerator.Random(opts)
}

// Random generates a 12-digit code satisfying opts. Every code it returns
// passes Validate and decodes to the requested category.
func (g *Generator) Random(opts GenerateOptions) (string, error) {
	if err := opts.Category.Validate(); err != nil {
		return "", err
	}
	if opts.HasSubType {
		if err := opts.SubType.Validate(); err != nil {
			return "", err
		}
	}

	cc, err := g.countryDigits(opts.Country)
	if err != nil {
		return "", err
	}

	category := opts.Category
	if category == CategoryUnknown {
		category = Categories[g.intN(len(Categories))]
	}

	var lead, vehicle string
	switch category {
	case TractionVehicle:
		second := byte('0' + g.intN(9))
		if opts.HasSubType {
			second = opts.SubType.Digit()
		}
		lead = string([]byte{'9', second})
		vehicle = pad(g.intN(900), 3) + pad(g.intN(10000), 4)
	case SpecialVehicle:
		lead = "99"
		vehicle = strconv.Itoa(9000+g.intN(1000)) + pad(1+g.intN(999), 3)
	case PassengerWagon:
		lead = strconv.Itoa(50 + g.intN(30))
		vehicle = pad(g.intN(10000), 4) + pad(1+g.intN(999), 3)
	case FreightWagon:
		if g.intN(2) == 0 {
			lead = pad(g.intN(50), 2)
		} else {
			lead = strconv.Itoa(80 + g.intN(10))
		}
		vehicle = pad(g.intN(10000), 4) + pad(1+g.intN(999), 3)
	}

	body := lead + cc + vehicle
	return body + strconv.Itoa(checkDigit(body)), nil
}

func (g *Generator) countryDigits(code string) (string, error) {
	if code == "" {
		codes := country.NumericCodes()
		return codes[g.intN(len(codes))], nil
	}
	c, ok := country.Resolve(code)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidCountryCode, code)
	}
	return c.Numeric, nil
}

func (g *Generator) intN(n int) int {
	if g == nil || g.rng == nil {
		return rand.IntN(n)
	}
	return g.rng.IntN(n)
}

func pad(n, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}
