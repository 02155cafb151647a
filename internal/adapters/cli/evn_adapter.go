// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting and
// localization, but delegate business logic to services.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/example/evn/internal/config"
	"github.com/example/evn/internal/core/country"
	"github.com/example/evn/internal/core/evn"
	"github.com/example/evn/internal/i18n"
	"github.com/example/evn/internal/ports/primary"
)

// ErrInvalidCodes is returned by Validate when at least one code failed.
// The per-code details have already been written to the output.
var ErrInvalidCodes = errors.New("one or more EVN codes are invalid")

// LocalizedError carries a translated message while keeping the underlying
// error reachable through errors.Is.
type LocalizedError struct {
	Message string
	Err     error
}

func (e *LocalizedError) Error() string { return e.Message }

func (e *LocalizedError) Unwrap() error { return e.Err }

// EVNAdapter is a thin adapter that translates CLI operations to EVNService calls.
// It depends only on the EVNService interface, enabling easy testing with mocks.
type EVNAdapter struct {
	service primary.EVNService
	msgs    *i18n.Messages
	out     io.Writer
}

// NewEVNAdapter creates a new EVNAdapter printing in the language of msgs.
func NewEVNAdapter(service primary.EVNService, msgs *i18n.Messages, out io.Writer) *EVNAdapter {
	return &EVNAdapter{
		service: service,
		msgs:    msgs,
		out:     out,
	}
}

// Validate checks every code and prints one status line per code.
func (a *EVNAdapter) Validate(ctx context.Context, codes []string) error {
	results := a.service.ValidateBatch(ctx, codes)

	failed := 0
	for _, r := range results {
		if r.Valid() {
			fmt.Fprintf(a.out, "%s %s: %s\n", color.New(color.FgGreen).Sprint("✓"), r.Code, a.msgs.ValidEVN)
			continue
		}
		failed++
		reason := a.localize(a.msgs.ValidationError, r.Err)
		fmt.Fprintf(a.out, "%s %s: %s (%s)\n", color.New(color.FgRed).Sprint("✗"), r.Code, a.msgs.InvalidEVN, reason)
	}

	if failed > 0 {
		return ErrInvalidCodes
	}
	return nil
}

// Decode prints the fields of a code in the given output format.
func (a *EVNAdapter) Decode(ctx context.Context, code, output string) error {
	if err := config.ValidateOutput(output); err != nil {
		return err
	}

	record, err := a.service.Decode(ctx, code)
	if err != nil {
		return a.localize(a.msgs.DecodingError, err)
	}

	switch output {
	case config.OutputJSON:
		return a.writeJSON(record)
	case config.OutputYAML:
		return a.writeYAML(record)
	}

	a.printRecord(record)
	return nil
}

// Generate produces codes and prints them in the given output format.
func (a *EVNAdapter) Generate(ctx context.Context, req primary.GenerateRequest, output string) error {
	if err := config.ValidateOutput(output); err != nil {
		return err
	}

	resp, err := a.service.Generate(ctx, req)
	if err != nil {
		return a.localize(a.msgs.GenerationError, err)
	}

	records := make([]evn.Record, len(resp.Codes))
	for i, gc := range resp.Codes {
		records[i] = gc.Record
	}

	switch output {
	case config.OutputJSON:
		return a.writeJSON(records)
	case config.OutputYAML:
		return a.writeYAML(records)
	}

	if len(resp.Codes) == 1 {
		gc := resp.Codes[0]
		fmt.Fprintf(a.out, "%s %s %s\n", color.New(color.FgGreen).Sprint("✓"), a.msgs.Generated, gc.Code)
		fmt.Fprintf(a.out, "  %s %s\n", a.msgs.Formatted, gc.Record.Formatted())
		fmt.Fprintf(a.out, "  %s %s\n", a.msgs.Country, a.countryLabel(gc.Record, req.Country == ""))
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	for _, gc := range resp.Codes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			gc.Code,
			gc.Record.Formatted(),
			gc.Record.CountryISO(),
			a.msgs.Category(gc.Record.Category()),
		)
	}
	return w.Flush()
}

// Countries prints the country registry as a table.
func (a *EVNAdapter) Countries(ctx context.Context) error {
	countries, err := a.service.ListCountries(ctx)
	if err != nil {
		return fmt.Errorf("failed to list countries: %w", err)
	}

	if len(countries) == 0 {
		fmt.Fprintln(a.out, a.msgs.NoCountries)
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tISO\tNAME")
	fmt.Fprintln(w, "----\t---\t----")
	for _, c := range countries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.Numeric, c.ISO, a.msgs.CountryName(c))
	}
	return w.Flush()
}

// countryLabel renders "51 (PL) Polska", tagged when the country was drawn
// at random.
func (a *EVNAdapter) countryLabel(r evn.Record, random bool) string {
	c := country.Country{Numeric: r.CountryCode(), ISO: r.CountryISO(), Name: r.CountryName()}
	label := fmt.Sprintf("%s (%s) %s", c.Numeric, c.ISO, a.msgs.CountryName(c))
	if random {
		label += " [" + a.msgs.Random + "]"
	}
	return label
}

func (a *EVNAdapter) printRecord(r evn.Record) {
	fmt.Fprintln(a.out, a.msgs.EVNInfo)
	fmt.Fprintf(a.out, "  %s %s\n", a.msgs.OriginalCode, r.Raw())
	fmt.Fprintf(a.out, "  %s %s\n", a.msgs.FormattedCode, color.New(color.FgCyan).Sprint(r.Formatted()))
	fmt.Fprintf(a.out, "  %s %s\n", a.msgs.Country, a.countryLabel(r, false))
	fmt.Fprintf(a.out, "  %s %s\n", a.msgs.VehicleType, a.msgs.Category(r.Category()))
	if st, ok := r.SubType(); ok {
		fmt.Fprintf(a.out, "  %s %s\n", a.msgs.Locomotive, a.msgs.SubType(st))
	}
	fmt.Fprintf(a.out, "  %s %s\n", a.msgs.Technical, r.TechnicalCharacteristics())
	fmt.Fprintf(a.out, "  %s %s\n", a.msgs.SerialNumber, r.SerialNumber())
	fmt.Fprintf(a.out, "  %s %s\n", a.msgs.CheckDigit, r.CheckDigit())
}

func (a *EVNAdapter) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func (a *EVNAdapter) writeYAML(v any) error {
	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

// localize turns core errors into translated messages. Errors the core does
// not classify keep their text behind the operation's generic caption.
func (a *EVNAdapter) localize(caption string, err error) error {
	if evn.KindOf(err) == evn.KindOther {
		return &LocalizedError{Message: fmt.Sprintf("%s: %v", caption, err), Err: err}
	}
	return &LocalizedError{Message: a.msgs.Error(err), Err: err}
}
