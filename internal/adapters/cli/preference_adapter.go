package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/evn/internal/i18n"
	"github.com/example/evn/internal/ports/primary"
)

// PreferenceAdapter is a thin adapter that translates CLI operations to
// PreferenceService calls.
type PreferenceAdapter struct {
	service primary.PreferenceService
	out     io.Writer
}

// NewPreferenceAdapter creates a new PreferenceAdapter with the given service.
func NewPreferenceAdapter(service primary.PreferenceService, out io.Writer) *PreferenceAdapter {
	return &PreferenceAdapter{
		service: service,
		out:     out,
	}
}

// ShowLanguage prints the effective language and, if different, the stored one.
func (a *PreferenceAdapter) ShowLanguage(ctx context.Context, effective i18n.Lang) error {
	stored, err := a.service.GetLanguage(ctx)
	if err != nil {
		return err
	}

	msgs := i18n.For(effective)
	fmt.Fprintf(a.out, "%s %s\n", msgs.LanguageIs, effective)
	if stored != "" && stored != string(effective) {
		fmt.Fprintf(a.out, "  (preference: %s)\n", stored)
	}
	return nil
}

// SetLanguage persists lang and confirms in the newly selected language.
func (a *PreferenceAdapter) SetLanguage(ctx context.Context, lang string) error {
	saved, err := a.service.SetLanguage(ctx, lang)
	if err != nil {
		return err
	}

	msgs := i18n.For(i18n.Lang(saved))
	fmt.Fprintf(a.out, "%s %s %s\n", color.New(color.FgGreen).Sprint("✓"), msgs.LanguageSet, saved)
	return nil
}

// ClearLanguage removes the stored language.
func (a *PreferenceAdapter) ClearLanguage(ctx context.Context) error {
	if err := a.service.ClearLanguage(ctx); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s language preference cleared\n", color.New(color.FgGreen).Sprint("✓"))
	return nil
}
