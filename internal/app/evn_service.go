package app

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/example/evn/internal/core/country"
	"github.com/example/evn/internal/core/evn"
	"github.com/example/evn/internal/logging"
	"github.com/example/evn/internal/ports/primary"
)

// MaxGenerateCount caps a single Generate request.
const MaxGenerateCount = 10000

// pcgStream is the fixed second PCG seed word used for seeded generation.
const pcgStream = 0x9e3779b97f4a7c15

// EVNServiceImpl implements the EVNService interface.
type EVNServiceImpl struct {
	generator *evn.Generator
}

// NewEVNService creates a new EVNService. A nil source draws from the
// runtime's global generator.
func NewEVNService(src rand.Source) *EVNServiceImpl {
	return &EVNServiceImpl{
		generator: evn.NewGenerator(src),
	}
}

// Validate checks a free-form code.
func (s *EVNServiceImpl) Validate(ctx context.Context, code string) error {
	err := evn.Validate(code)
	logging.FromContext(ctx).Debug("validated code",
		"normalized", evn.Normalize(code),
		"result", evn.KindOf(err).String(),
	)
	return err
}

// ValidateBatch checks each code independently.
func (s *EVNServiceImpl) ValidateBatch(ctx context.Context, codes []string) []primary.ValidationResult {
	results := make([]primary.ValidationResult, 0, len(codes))
	for _, code := range codes {
		results = append(results, primary.ValidationResult{
			Code:       code,
			Normalized: evn.Normalize(code),
			Err:        s.Validate(ctx, code),
		})
	}
	return results
}

// Decode validates a code and splits it into its fields.
func (s *EVNServiceImpl) Decode(ctx context.Context, code string) (evn.Record, error) {
	record, err := evn.Decode(code)
	if err != nil {
		logging.FromContext(ctx).Debug("decode rejected", "result", evn.KindOf(err).String())
		return evn.Record{}, err
	}

	logging.FromContext(ctx).Debug("decoded code",
		"normalized", record.Normalized(),
		"country", record.CountryISO(),
		"category", record.Category().String(),
	)
	return record, nil
}

// Generate synthesizes req.Count valid codes. Count must be between 1 and
// MaxGenerateCount.
func (s *EVNServiceImpl) Generate(ctx context.Context, req primary.GenerateRequest) (*primary.GenerateResponse, error) {
	opts, err := generateOptions(req)
	if err != nil {
		return nil, err
	}

	count := req.Count
	if count < 1 || count > MaxGenerateCount {
		return nil, fmt.Errorf("count must be between 1 and %d, got %d", MaxGenerateCount, count)
	}

	logger := logging.WithFields(ctx,
		"country", req.Country,
		"category", opts.Category.String(),
		"seeded", req.Seed != nil,
	)

	generator := s.generator
	if req.Seed != nil {
		generator = evn.NewGenerator(rand.NewPCG(*req.Seed, pcgStream))
	}

	resp := &primary.GenerateResponse{Codes: make([]primary.GeneratedCode, 0, count)}
	for range count {
		code, err := generator.Random(opts)
		if err != nil {
			logger.Debug("generate rejected", "result", evn.KindOf(err).String())
			return nil, fmt.Errorf("failed to generate code: %w", err)
		}
		record, err := evn.Decode(code)
		if err != nil {
			// Generator output always decodes; this guards the invariant
			return nil, fmt.Errorf("generated code %s failed to decode: %w", code, err)
		}
		resp.Codes = append(resp.Codes, primary.GeneratedCode{Code: code, Record: record})
	}

	logger.Debug("generated codes", "count", count)
	return resp, nil
}

// ListCountries returns the country registry ordered by numeric code.
func (s *EVNServiceImpl) ListCountries(ctx context.Context) ([]country.Country, error) {
	return country.All(), nil
}

func generateOptions(req primary.GenerateRequest) (evn.GenerateOptions, error) {
	opts := evn.GenerateOptions{Country: req.Country}

	category, err := evn.ParseCategory(req.Category)
	if err != nil {
		return opts, err
	}
	opts.Category = category

	if req.SubType != "" {
		subType, err := evn.ParseSubType(req.SubType)
		if err != nil {
			return opts, err
		}
		opts.SubType = subType
		opts.HasSubType = true
	}

	return opts, nil
}

// Ensure EVNServiceImpl implements the interface
var _ primary.EVNService = (*EVNServiceImpl)(nil)
