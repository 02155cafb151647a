package secondary

import "context"

// PreferenceRepository defines the secondary port for preference persistence.
type PreferenceRepository interface {
	// Get retrieves a preference by key. Returns nil, nil when the key is unset.
	Get(ctx context.Context, key string) (*PreferenceRecord, error)

	// Set creates or replaces a preference.
	Set(ctx context.Context, key, value string) error

	// Delete removes a preference. Deleting an unset key is not an error.
	Delete(ctx context.Context, key string) error
}

// PreferenceRecord represents a preference as stored in persistence.
type PreferenceRecord struct {
	Key       string
	Value     string
	UpdatedAt string
}
