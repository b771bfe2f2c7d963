package tmdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"moviedash/internal/domain"
)

const breakerName = "tmdb-api"

type BreakerSettings struct {
	// consecutive failures before the circuit opens
	MaxFailures uint32
	// how long the circuit stays open before probing again
	OpenTimeout time.Duration
}

func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MaxFailures: 3,
		OpenTimeout: 30 * time.Second,
	}
}

// BreakerClient wraps Client with a circuit breaker so a dead API fails fast
// instead of holding the dashboard on the loading screen for every request.
type BreakerClient struct {
	client *Client
	cb     *gobreaker.CircuitBreaker[any]
	logger *zap.Logger
}

func NewBreakerClient(client *Client, settings BreakerSettings, logger *zap.Logger) *BreakerClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	if settings.MaxFailures == 0 {
		settings = DefaultBreakerSettings()
	}

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.MaxFailures
		},
		// caller cancellation says nothing about the API
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("circuit breaker state change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &BreakerClient{client: client, cb: cb, logger: logger}
}

func (b *BreakerClient) State() gobreaker.State {
	return b.cb.State()
}

func (b *BreakerClient) PopularMovies(ctx context.Context, locale domain.Locale) ([]domain.Movie, error) {
	return execute[[]domain.Movie](b, func() (any, error) {
		return b.client.PopularMovies(ctx, locale)
	})
}

func (b *BreakerClient) Genres(ctx context.Context, locale domain.Locale) ([]domain.Genre, error) {
	return execute[[]domain.Genre](b, func() (any, error) {
		return b.client.Genres(ctx, locale)
	})
}

func execute[T any](b *BreakerClient, fn func() (any, error)) (T, error) {
	var zero T

	result, err := b.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			b.logger.Warn("circuit breaker rejected request", zap.Error(err))
		}
		return zero, err
	}

	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}
