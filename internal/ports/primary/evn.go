package primary

import (
	"context"

	"github.com/example/evn/internal/core/country"
	"github.com/example/evn/internal/core/evn"
)

// EVNService defines the primary port for EVN operations.
type EVNService interface {
	// Validate checks a free-form code. A nil error means the code is valid;
	// otherwise the error matches one of the evn sentinel errors.
	Validate(ctx context.Context, code string) error

	// ValidateBatch checks several codes and reports each outcome.
	ValidateBatch(ctx context.Context, codes []string) []ValidationResult

	// Decode validates a code and splits it into its fields.
	Decode(ctx context.Context, code string) (evn.Record, error)

	// Generate synthesizes one or more valid codes.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// ListCountries returns the country registry ordered by numeric code.
	ListCountries(ctx context.Context) ([]country.Country, error)
}

// ValidationResult is the outcome of validating one code.
type ValidationResult struct {
	Code       string
	Normalized string
	Err        error
}

// Valid reports whether the code passed validation.
func (r ValidationResult) Valid() bool {
	return r.Err == nil
}

// GenerateRequest contains parameters for generating codes. Empty strings
// mean "not constrained".
type GenerateRequest struct {
	Country  string // numeric ("51") or ISO ("PL")
	Category string // e.g. "traction", "passenger-wagon"
	SubType  string // digit "0".."8" or a name such as "electric"
	Count    int    // 1..app.MaxGenerateCount
	Seed     *uint64
}

// GenerateResponse contains the generated codes.
type GenerateResponse struct {
	Codes []GeneratedCode
}

// GeneratedCode is one generated EVN with its decoded form.
type GeneratedCode struct {
	Code   string
	Record evn.Record
}
