// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/evn/internal/ports/secondary"
)

// PreferenceRepository implements secondary.PreferenceRepository with SQLite.
type PreferenceRepository struct {
	db *sql.DB
}

// NewPreferenceRepository creates a new SQLite preference repository.
func NewPreferenceRepository(db *sql.DB) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// Get retrieves a preference by key.
func (r *PreferenceRepository) Get(ctx context.Context, key string) (*secondary.PreferenceRecord, error) {
	var updatedAt time.Time

	record := &secondary.PreferenceRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT key, value, updated_at FROM preferences WHERE key = ?",
		key,
	).Scan(&record.Key, &record.Value, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}

	record.UpdatedAt = updatedAt.Format(time.RFC3339)
	return record, nil
}

// Set creates or replaces a preference.
func (r *PreferenceRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to set preference: %w", err)
	}
	return nil
}

// Delete removes a preference.
func (r *PreferenceRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM preferences WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete preference: %w", err)
	}
	return nil
}

// Ensure PreferenceRepository implements the interface
var _ secondary.PreferenceRepository = (*PreferenceRepository)(nil)
