package domain

import (
	"errors"
	"strings"
	"time"
)

const (
	SettingTheme  = "theme"
	SettingLocale = "locale"
)

var (
	ErrEmptySettingKey   = errors.New("setting key cannot be empty")
	ErrSettingKeyTooLong = errors.New("setting key cannot exceed 64 characters")
)

// Setting is one persisted user preference. Values are opaque strings.
type Setting struct {
	Key       string    `db:"key" json:"key"`
	Value     string    `db:"value" json:"value"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func NewSetting(key, value string) *Setting {
	return &Setting{
		Key:       strings.TrimSpace(key),
		Value:     value,
		UpdatedAt: time.Now(),
	}
}

func (s *Setting) Validate() error {
	if strings.TrimSpace(s.Key) == "" {
		return ErrEmptySettingKey
	}
	if len(s.Key) > 64 {
		return ErrSettingKeyTooLong
	}
	return nil
}
