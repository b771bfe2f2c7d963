package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"moviedash/internal/domain"
	"moviedash/internal/repository"
)

type settingRepository struct {
	db *DB
}

func NewSettingRepository(db *DB) repository.SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, `SELECT value FROM settings WHERE key = ?`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%w: %q", repository.ErrSettingNotFound, key)
		}
		return "", fmt.Errorf("failed to get setting: %w", err)
	}
	return value, nil
}

func (r *settingRepository) Set(ctx context.Context, key, value string) error {
	setting := domain.NewSetting(key, value)
	if err := setting.Validate(); err != nil {
		return fmt.Errorf("invalid setting: %w", err)
	}

	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`

	if _, err := r.db.ExecContext(ctx, query, setting.Key, setting.Value); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}
	return nil
}

func (r *settingRepository) Delete(ctx context.Context, key string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete setting: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %q", repository.ErrSettingNotFound, key)
	}
	return nil
}

func (r *settingRepository) List(ctx context.Context) ([]*domain.Setting, error) {
	var settings []*domain.Setting
	err := r.db.SelectContext(ctx, &settings, `SELECT key, value, updated_at FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	return settings, nil
}
