package tmdb

import (
	"errors"
	"fmt"

	"moviedash/internal/domain"
)

var (
	ErrUnauthorized = errors.New("tmdb: unauthorized, check the api key")
	ErrNotFound     = errors.New("tmdb: not found")
	ErrRateLimited  = errors.New("tmdb: rate limited by server")
	ErrServer       = errors.New("tmdb: server error")
)

// Error wraps a failed API call with the operation and locale it was for.
type Error struct {
	Op     string // "popular", "genres"
	Locale domain.Locale
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("tmdb %s [%s]: %v", e.Op, e.Locale, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrapError(op string, locale domain.Locale, err error) error {
	return &Error{Op: op, Locale: locale, Err: err}
}
