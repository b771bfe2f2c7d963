package repository

import (
	"context"
	"errors"

	"moviedash/internal/domain"
)

var ErrSettingNotFound = errors.New("setting not found")

// SettingRepository persists theme, locale and other small user choices.
type SettingRepository interface {
	Get(ctx context.Context, key string) (string, error)

	Set(ctx context.Context, key, value string) error

	Delete(ctx context.Context, key string) error

	List(ctx context.Context) ([]*domain.Setting, error)
}
