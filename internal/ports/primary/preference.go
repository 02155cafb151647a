package primary

import "context"

// PreferenceService defines the primary port for user preferences.
type PreferenceService interface {
	// GetLanguage returns the persisted display language, or "" if none is set.
	GetLanguage(ctx context.Context) (string, error)

	// SetLanguage validates and persists the display language.
	SetLanguage(ctx context.Context, lang string) (string, error)

	// ClearLanguage removes the persisted display language.
	ClearLanguage(ctx context.Context) error
}
