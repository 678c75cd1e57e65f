package sqlite

import (
	"context"
	"fmt"

	"github.com/mmynk/docshelf/internal/models"
)

// GetSettings returns the singleton settings row.
func (s *SQLiteStore) GetSettings(ctx context.Context) (*models.UserSettings, error) {
	settings := &models.UserSettings{}
	err := s.db.QueryRowContext(ctx, "SELECT currency FROM settings WHERE id = 1").Scan(&settings.Currency)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings overwrites the singleton settings row.
func (s *SQLiteStore) UpdateSettings(ctx context.Context, settings *models.UserSettings) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO settings (id, currency) VALUES (1, ?) ON CONFLICT(id) DO UPDATE SET currency = excluded.currency",
		settings.Currency,
	)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}
