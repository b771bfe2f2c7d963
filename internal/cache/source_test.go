package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviedash/internal/domain"
)

type fakeAPI struct {
	mu         sync.Mutex
	movies     map[domain.Locale][]domain.Movie
	genres     map[domain.Locale][]domain.Genre
	moviesErr  error
	genresErr  error
	movieCalls int
	genreCalls int
}

func (f *fakeAPI) PopularMovies(ctx context.Context, locale domain.Locale) ([]domain.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.movieCalls++
	if f.moviesErr != nil {
		return nil, f.moviesErr
	}
	return f.movies[locale], nil
}

func (f *fakeAPI) Genres(ctx context.Context, locale domain.Locale) ([]domain.Genre, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.genreCalls++
	if f.genresErr != nil {
		return nil, f.genresErr
	}
	return f.genres[locale], nil
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		movies: map[domain.Locale][]domain.Movie{
			domain.LocaleEnglish: {{ID: 1, Title: "Spirited Away", GenreIDs: []int64{16}}},
			domain.LocaleChinese: {{ID: 1, Title: "千与千寻", GenreIDs: []int64{16}}},
		},
		genres: map[domain.Locale][]domain.Genre{
			domain.LocaleEnglish: {{ID: 16, Name: "Animation"}},
			domain.LocaleChinese: {{ID: 16, Name: "动画"}},
		},
	}
}

func TestSource_Load(t *testing.T) {
	api := newFakeAPI()
	src := NewSource(api, time.Minute, nil)

	snap, err := src.Load(context.Background(), domain.LocaleChinese)
	require.NoError(t, err)

	assert.Equal(t, domain.LocaleChinese, snap.Locale)
	assert.Equal(t, "千与千寻", snap.Movies[0].Title)
	assert.Equal(t, "动画", snap.Genres[0].Name)
	assert.False(t, snap.Stale)

	_, err = src.Load(context.Background(), domain.LocaleChinese)
	require.NoError(t, err)
	assert.Equal(t, 1, api.movieCalls)
	assert.Equal(t, 1, api.genreCalls)

	movieStats, genreStats := src.Stats()
	assert.Equal(t, int64(1), movieStats.Hits)
	assert.Equal(t, int64(1), genreStats.Hits)
}

func TestSource_LocalesCachedSeparately(t *testing.T) {
	api := newFakeAPI()
	src := NewSource(api, time.Minute, nil)
	ctx := context.Background()

	en, err := src.Load(ctx, domain.LocaleEnglish)
	require.NoError(t, err)
	zh, err := src.Load(ctx, domain.LocaleChinese)
	require.NoError(t, err)

	assert.Equal(t, "Animation", en.Genres[0].Name)
	assert.Equal(t, "动画", zh.Genres[0].Name)
	assert.Equal(t, 2, api.movieCalls)
}

func TestSource_FailureReturnsNoPartialData(t *testing.T) {
	tests := []struct {
		name      string
		moviesErr error
		genresErr error
	}{
		{name: "movies fail", moviesErr: errors.New("movies down")},
		{name: "genres fail", genresErr: errors.New("genres down")},
		{name: "both fail", moviesErr: errors.New("movies down"), genresErr: errors.New("genres down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI()
			api.moviesErr = tt.moviesErr
			api.genresErr = tt.genresErr
			src := NewSource(api, time.Minute, nil)

			snap, err := src.Load(context.Background(), domain.LocaleEnglish)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrFetchFailure))
			assert.Nil(t, snap.Movies)
			assert.Nil(t, snap.Genres)
		})
	}
}

func TestSource_EmptyIsNotFailure(t *testing.T) {
	api := &fakeAPI{
		movies: map[domain.Locale][]domain.Movie{domain.LocaleEnglish: {}},
		genres: map[domain.Locale][]domain.Genre{domain.LocaleEnglish: {}},
	}
	src := NewSource(api, time.Minute, nil)

	snap, err := src.Load(context.Background(), domain.LocaleEnglish)
	require.NoError(t, err)
	assert.Empty(t, snap.Movies)
	assert.Empty(t, snap.Genres)
}

func TestSource_StaleThenReload(t *testing.T) {
	api := newFakeAPI()
	src := NewSource(api, time.Minute, nil)

	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	src.movies.now = clock.Now
	src.genres.now = clock.Now
	ctx := context.Background()

	_, err := src.Load(ctx, domain.LocaleEnglish)
	require.NoError(t, err)

	clock.Advance(5 * time.Minute)

	snap, err := src.Load(ctx, domain.LocaleEnglish)
	require.NoError(t, err)
	assert.True(t, snap.Stale)
	assert.Equal(t, 1, api.movieCalls)

	snap, err = src.Reload(ctx, domain.LocaleEnglish)
	require.NoError(t, err)
	assert.False(t, snap.Stale)
	assert.Equal(t, 2, api.movieCalls)
	assert.Equal(t, 2, api.genreCalls)
	assert.Equal(t, clock.Now(), snap.FetchedAt)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "loading", StatusLoading.String())
	assert.Equal(t, "ready", StatusReady.String())
	assert.Equal(t, "failed", StatusFailed.String())
}
