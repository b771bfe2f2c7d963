package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"moviedash/internal/domain"
)

// ErrFetchFailure marks a failed load of either collection.
var ErrFetchFailure = errors.New("error loading data")

type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MovieAPI is the remote collaborator the source reads from.
type MovieAPI interface {
	PopularMovies(ctx context.Context, locale domain.Locale) ([]domain.Movie, error)
	Genres(ctx context.Context, locale domain.Locale) ([]domain.Genre, error)
}

// Snapshot is one successful load of both collections for a locale.
type Snapshot struct {
	Locale    domain.Locale
	Movies    []domain.Movie
	Genres    []domain.Genre
	FetchedAt time.Time
	Stale     bool
}

// Source loads movies and genres per locale through two TTL stores.
type Source struct {
	api    MovieAPI
	movies *Store[[]domain.Movie]
	genres *Store[[]domain.Genre]
	logger *zap.Logger
}

func NewSource(api MovieAPI, ttl time.Duration, logger *zap.Logger) *Source {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Source{
		api:    api,
		movies: NewStore[[]domain.Movie](ttl),
		genres: NewStore[[]domain.Genre](ttl),
		logger: logger,
	}
}

// Load returns cached collections where available and fetches the rest. Both
// collections must load or the call fails; partial data is never returned.
func (s *Source) Load(ctx context.Context, locale domain.Locale) (Snapshot, error) {
	return s.load(ctx, locale, false)
}

// Reload bypasses the cache for both collections.
func (s *Source) Reload(ctx context.Context, locale domain.Locale) (Snapshot, error) {
	return s.load(ctx, locale, true)
}

func (s *Source) load(ctx context.Context, locale domain.Locale, force bool) (Snapshot, error) {
	key := locale.String()

	fetchMovies := func(ctx context.Context) ([]domain.Movie, error) {
		return s.api.PopularMovies(ctx, locale)
	}
	fetchGenres := func(ctx context.Context) ([]domain.Genre, error) {
		return s.api.Genres(ctx, locale)
	}

	var movies Result[[]domain.Movie]
	var genres Result[[]domain.Genre]

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if force {
			movies, err = s.movies.Refresh(gctx, key, fetchMovies)
		} else {
			movies, err = s.movies.Get(gctx, key, fetchMovies)
		}
		return err
	})
	g.Go(func() error {
		var err error
		if force {
			genres, err = s.genres.Refresh(gctx, key, fetchGenres)
		} else {
			genres, err = s.genres.Get(gctx, key, fetchGenres)
		}
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("load failed", zap.String("locale", key), zap.Error(err))
		return Snapshot{}, fmt.Errorf("%w: %w", ErrFetchFailure, err)
	}

	fetchedAt := movies.FetchedAt
	if genres.FetchedAt.Before(fetchedAt) {
		fetchedAt = genres.FetchedAt
	}

	snap := Snapshot{
		Locale:    locale,
		Movies:    movies.Value,
		Genres:    genres.Value,
		FetchedAt: fetchedAt,
		Stale:     movies.Stale || genres.Stale,
	}

	s.logger.Debug("load complete",
		zap.String("locale", key),
		zap.Int("movies", len(snap.Movies)),
		zap.Int("genres", len(snap.Genres)),
		zap.Bool("stale", snap.Stale),
	)

	return snap, nil
}

func (s *Source) Stats() (movies, genres Stats) {
	return s.movies.Stats(), s.genres.Stats()
}
