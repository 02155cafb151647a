package app

import (
	"context"
	"fmt"

	"github.com/example/evn/internal/i18n"
	"github.com/example/evn/internal/logging"
	"github.com/example/evn/internal/ports/primary"
	"github.com/example/evn/internal/ports/secondary"
)

// LanguageKey is the preference key holding the display language.
const LanguageKey = "language"

// PreferenceServiceImpl implements the PreferenceService interface.
type PreferenceServiceImpl struct {
	prefRepo secondary.PreferenceRepository
}

// NewPreferenceService creates a new PreferenceService with injected dependencies.
func NewPreferenceService(prefRepo secondary.PreferenceRepository) *PreferenceServiceImpl {
	return &PreferenceServiceImpl{
		prefRepo: prefRepo,
	}
}

// GetLanguage returns the persisted display language, or "" if none is set.
func (s *PreferenceServiceImpl) GetLanguage(ctx context.Context) (string, error) {
	record, err := s.prefRepo.Get(ctx, LanguageKey)
	if err != nil {
		return "", fmt.Errorf("failed to read language preference: %w", err)
	}
	if record == nil {
		return "", nil
	}
	return record.Value, nil
}

// SetLanguage validates lang against the supported languages and persists
// its canonical code.
func (s *PreferenceServiceImpl) SetLanguage(ctx context.Context, lang string) (string, error) {
	l, err := i18n.Parse(lang)
	if err != nil {
		return "", err
	}

	if err := s.prefRepo.Set(ctx, LanguageKey, string(l)); err != nil {
		return "", fmt.Errorf("failed to save language preference: %w", err)
	}

	logging.FromContext(ctx).Info("language preference saved", "lang", string(l))
	return string(l), nil
}

// ClearLanguage removes the persisted display language.
func (s *PreferenceServiceImpl) ClearLanguage(ctx context.Context) error {
	if err := s.prefRepo.Delete(ctx, LanguageKey); err != nil {
		return fmt.Errorf("failed to clear language preference: %w", err)
	}
	return nil
}

// Ensure PreferenceServiceImpl implements the interface
var _ primary.PreferenceService = (*PreferenceServiceImpl)(nil)
