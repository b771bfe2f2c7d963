package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviedash/internal/cache"
	"moviedash/internal/domain"
	"moviedash/internal/repository"
	"moviedash/internal/theme"
)

type fakeLoader struct {
	mu        sync.Mutex
	snapshots map[domain.Locale]cache.Snapshot
	err       error
	loads     int
	reloads   int
}

func (f *fakeLoader) Load(ctx context.Context, locale domain.Locale) (cache.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loads++
	if f.err != nil {
		return cache.Snapshot{}, f.err
	}
	return f.snapshots[locale], nil
}

func (f *fakeLoader) Reload(ctx context.Context, locale domain.Locale) (cache.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reloads++
	if f.err != nil {
		return cache.Snapshot{}, f.err
	}
	snap := f.snapshots[locale]
	snap.Stale = false
	return snap, nil
}

type fakeSettings struct {
	mu     sync.Mutex
	values map[string]string
}

func newFakeSettings() *fakeSettings {
	return &fakeSettings{values: map[string]string{}}
}

func (f *fakeSettings) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	if !ok {
		return "", repository.ErrSettingNotFound
	}
	return v, nil
}

func (f *fakeSettings) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return nil
}

func (f *fakeSettings) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	return nil
}

func (f *fakeSettings) List(ctx context.Context) ([]*domain.Setting, error) {
	return nil, nil
}

func testSnapshots() map[domain.Locale]cache.Snapshot {
	movies := func(titles ...string) []domain.Movie {
		return []domain.Movie{
			{ID: 1, Title: titles[0], ReleaseDate: "2020-01-01", VoteAverage: 7.0, Popularity: 30, GenreIDs: []int64{1}},
			{ID: 2, Title: titles[1], ReleaseDate: "2019-06-01", VoteAverage: 8.5, Popularity: 90, GenreIDs: []int64{1, 2}},
			{ID: 3, Title: titles[2], ReleaseDate: "2021-03-01", VoteAverage: 6.0, Popularity: 10, GenreIDs: []int64{2}},
		}
	}

	return map[domain.Locale]cache.Snapshot{
		domain.LocaleEnglish: {
			Locale: domain.LocaleEnglish,
			Movies: movies("Zeta", "Alpha", "Mid"),
			Genres: []domain.Genre{{ID: 1, Name: "Drama"}, {ID: 2, Name: "Comedy"}},
		},
		domain.LocaleChinese: {
			Locale: domain.LocaleChinese,
			Movies: movies("泽塔", "阿尔法", "中间"),
			Genres: []domain.Genre{{ID: 1, Name: "剧情"}, {ID: 2, Name: "喜剧"}},
		},
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return model, cmd
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func loadedModel(t *testing.T) (Model, *fakeLoader, *fakeSettings) {
	t.Helper()

	loader := &fakeLoader{snapshots: testSnapshots()}
	settings := newFakeSettings()
	m := NewModel(Options{Source: loader, Settings: settings, Locale: domain.LocaleEnglish, ThemeName: theme.LightName})

	msg := m.Init()()
	m, cmd := update(t, m, msg)
	require.Nil(t, cmd)
	require.Equal(t, cache.StatusReady, m.status)
	return m, loader, settings
}

func titles(m Model) []string {
	var out []string
	for _, row := range m.table.Rows() {
		out = append(out, row[0])
	}
	return out
}

func TestNewModel_StartsLoading(t *testing.T) {
	m := NewModel(Options{Source: &fakeLoader{}})

	assert.Equal(t, cache.StatusLoading, m.status)
	assert.Equal(t, domain.LocaleEnglish, m.locale)
	assert.Equal(t, domain.DefaultPreferences(), m.prefs)
	assert.Equal(t, theme.LightName, m.themeName)
	assert.Contains(t, m.View(), "Loading movies...")
}

func TestModel_InitialLoad(t *testing.T) {
	m, loader, _ := loadedModel(t)

	assert.Equal(t, 1, loader.loads)
	assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, titles(m))
	assert.Equal(t, []string{"Alpha", "2019", "★ 8.5", "Drama, Comedy"}, []string(m.table.Rows()[0]))

	view := m.View()
	assert.Contains(t, view, "Popular Movies")
	assert.Contains(t, view, "3 of 3 movies")
	assert.Contains(t, view, "All genres")
}

func TestModel_LoadFailure(t *testing.T) {
	loader := &fakeLoader{err: errors.New("connection refused")}
	m := NewModel(Options{Source: loader})

	m, _ = update(t, m, m.Init()())

	assert.Equal(t, cache.StatusFailed, m.status)
	assert.True(t, errors.Is(m.err, cache.ErrFetchFailure))
	assert.Contains(t, m.View(), "Error loading data")

	// keys that need data do nothing while failed
	m, cmd := update(t, m, keyPress("r"))
	assert.Nil(t, cmd)
	assert.Equal(t, domain.SortByTitle, m.prefs.SortKey)

	// R retries in the foreground
	loader.err = nil
	loader.snapshots = testSnapshots()
	m, cmd = update(t, m, keyPress("R"))
	require.NotNil(t, cmd)
	assert.Equal(t, cache.StatusLoading, m.status)

	m, _ = update(t, m, cmd())
	assert.Equal(t, cache.StatusReady, m.status)
	assert.Len(t, m.table.Rows(), 3)
}

func TestModel_EmptyResults(t *testing.T) {
	loader := &fakeLoader{snapshots: map[domain.Locale]cache.Snapshot{
		domain.LocaleEnglish: {Locale: domain.LocaleEnglish, Movies: []domain.Movie{}, Genres: []domain.Genre{}},
	}}
	m := NewModel(Options{Source: loader})
	m, _ = update(t, m, m.Init()())

	assert.Equal(t, cache.StatusReady, m.status)
	assert.Contains(t, m.View(), "No movies found")
	assert.NotContains(t, m.View(), "Error loading data")
}

func TestModel_SortToggle(t *testing.T) {
	m, _, _ := loadedModel(t)

	m, _ = update(t, m, keyPress("r"))
	assert.Equal(t, domain.SortByRating, m.prefs.SortKey)
	assert.Equal(t, domain.SortAscending, m.prefs.Direction)
	assert.Equal(t, []string{"Mid", "Zeta", "Alpha"}, titles(m))

	m, _ = update(t, m, keyPress("r"))
	assert.Equal(t, domain.SortDescending, m.prefs.Direction)
	assert.Equal(t, []string{"Alpha", "Zeta", "Mid"}, titles(m))

	m, _ = update(t, m, keyPress("y"))
	assert.Equal(t, domain.SortByYear, m.prefs.SortKey)
	assert.Equal(t, domain.SortAscending, m.prefs.Direction)
	assert.Equal(t, []string{"Alpha", "Zeta", "Mid"}, titles(m))

	m, _ = update(t, m, keyPress("t"))
	assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, titles(m))
}

func TestModel_GenrePicker(t *testing.T) {
	m, _, _ := loadedModel(t)

	m, _ = update(t, m, keyPress("g"))
	require.Equal(t, pickingGenreMode, m.uiMode)
	assert.Contains(t, m.View(), "Filter by genre")

	m, _ = update(t, m, keyPress("down"))
	m, _ = update(t, m, keyPress("down"))
	m, _ = update(t, m, keyPress("enter"))

	assert.Equal(t, normalMode, m.uiMode)
	assert.Equal(t, domain.GenreFilterFor(2), m.prefs.Genre)
	assert.Equal(t, []string{"Alpha", "Mid"}, titles(m))

	// the aggregate still covers every movie
	require.Len(t, m.view.Aggregate, 2)
	assert.Equal(t, 2, m.view.Aggregate[0].Count)

	t.Run("esc leaves the filter alone", func(t *testing.T) {
		m, _ := update(t, m, keyPress("g"))
		m, _ = update(t, m, keyPress("up"))
		m, _ = update(t, m, keyPress("esc"))
		assert.Equal(t, domain.GenreFilterFor(2), m.prefs.Genre)
	})
}

func TestModel_Search(t *testing.T) {
	m, _, _ := loadedModel(t)

	m, _ = update(t, m, keyPress("/"))
	require.Equal(t, searchingMode, m.uiMode)

	m, _ = update(t, m, keyPress("a"))
	assert.Equal(t, "a", m.prefs.Query)
	assert.Equal(t, []string{"Alpha", "Zeta"}, titles(m))

	m, _ = update(t, m, keyPress("l"))
	assert.Equal(t, []string{"Alpha"}, titles(m))

	m, _ = update(t, m, keyPress("enter"))
	assert.Equal(t, normalMode, m.uiMode)
	assert.Equal(t, "al", m.prefs.Query)

	t.Run("esc restores the previous query", func(t *testing.T) {
		m, _ := update(t, m, keyPress("/"))
		m, _ = update(t, m, keyPress("x"))
		assert.Equal(t, "alx", m.prefs.Query)
		assert.Empty(t, m.table.Rows())

		m, _ = update(t, m, keyPress("esc"))
		assert.Equal(t, "al", m.prefs.Query)
		assert.Equal(t, []string{"Alpha"}, titles(m))
	})

	t.Run("no match shows the empty state", func(t *testing.T) {
		m, _ := update(t, m, keyPress("/"))
		m, _ = update(t, m, keyPress("q"))
		m, _ = update(t, m, keyPress("enter"))
		assert.Contains(t, m.View(), "No movies found")
	})
}

func TestModel_ClearFilters(t *testing.T) {
	m, _, _ := loadedModel(t)
	m.setPreferences(m.prefs.WithGenre(domain.GenreFilterFor(1)).WithQuery("z").WithSort(domain.SortByRating))
	require.Equal(t, []string{"Zeta"}, titles(m))

	m, _ = update(t, m, keyPress("F"))

	assert.True(t, m.prefs.Genre.IsAll())
	assert.Empty(t, m.prefs.Query)
	assert.Equal(t, domain.SortByRating, m.prefs.SortKey)
	assert.Len(t, m.table.Rows(), 3)
}

func TestModel_StaleTriggersBackgroundRefresh(t *testing.T) {
	snaps := testSnapshots()
	en := snaps[domain.LocaleEnglish]
	en.Stale = true
	en.FetchedAt = time.Now().Add(-time.Hour)
	snaps[domain.LocaleEnglish] = en

	loader := &fakeLoader{snapshots: snaps}
	m := NewModel(Options{Source: loader})

	m, cmd := update(t, m, m.Init()())
	require.NotNil(t, cmd)
	assert.Equal(t, cache.StatusReady, m.status)
	assert.True(t, m.refreshing)
	assert.Len(t, m.table.Rows(), 3, "stale rows stay on screen")
	assert.Contains(t, m.View(), "refreshing...")

	msg := cmd()
	loaded, ok := msg.(snapshotLoadedMsg)
	require.True(t, ok)
	assert.True(t, loaded.background)

	m, cmd = update(t, m, msg)
	assert.Nil(t, cmd)
	assert.False(t, m.refreshing)
	assert.False(t, m.stale)
	assert.Equal(t, 1, loader.reloads)
}

func TestModel_BackgroundFailureKeepsData(t *testing.T) {
	m, loader, _ := loadedModel(t)

	loader.err = errors.New("timeout")
	m, cmd := update(t, m, keyPress("R"))
	require.NotNil(t, cmd)
	assert.True(t, m.refreshing)

	m, _ = update(t, m, cmd())
	assert.Equal(t, cache.StatusReady, m.status)
	assert.False(t, m.refreshing)
	assert.Len(t, m.table.Rows(), 3)
	assert.Equal(t, "Error loading data", m.message)
}

func TestModel_ToggleLocale(t *testing.T) {
	m, _, settings := loadedModel(t)
	m.setPreferences(m.prefs.WithGenre(domain.GenreFilterFor(1)))

	m, cmd := update(t, m, keyPress("L"))
	require.NotNil(t, cmd)
	assert.Equal(t, domain.LocaleChinese, m.locale)
	assert.Equal(t, cache.StatusLoading, m.status)
	assert.Contains(t, m.View(), "正在加载电影...")

	// a late response for the old locale is dropped
	m, _ = update(t, m, snapshotLoadedMsg{snapshot: testSnapshots()[domain.LocaleEnglish]})
	assert.Equal(t, cache.StatusLoading, m.status)

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	for _, c := range batch {
		if c == nil {
			continue
		}
		m, _ = update(t, m, c())
	}

	assert.Equal(t, cache.StatusReady, m.status)
	assert.Equal(t, "zh-CN", settings.values[domain.SettingLocale])
	assert.Equal(t, domain.GenreFilterFor(1), m.prefs.Genre, "genre ids survive a locale switch")
	assert.Equal(t, "剧情", m.genreLabel(m.prefs.Genre))
	assert.Len(t, m.table.Rows(), 2)
	assert.Contains(t, m.View(), "片名")
}

func TestModel_ToggleTheme(t *testing.T) {
	m, _, settings := loadedModel(t)

	m, cmd := update(t, m, keyPress("T"))
	require.NotNil(t, cmd)
	assert.Equal(t, theme.DarkName, m.themeName)
	assert.Equal(t, theme.DarkName, m.theme.Name)

	saved, _ := update(t, m, cmd())
	assert.Equal(t, theme.DarkName, settings.values[domain.SettingTheme])
	assert.Equal(t, theme.DarkName, saved.ThemeName())

	m, _ = update(t, m, keyPress("T"))
	assert.Equal(t, theme.LightName, m.themeName)
}

func TestModel_ToggleWithoutSettings(t *testing.T) {
	loader := &fakeLoader{snapshots: testSnapshots()}
	m := NewModel(Options{Source: loader})
	m, _ = update(t, m, m.Init()())

	_, cmd := update(t, m, keyPress("T"))
	assert.Nil(t, cmd)
}

func TestModel_ResizeDebounce(t *testing.T) {
	m, _, _ := loadedModel(t)

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	require.NotNil(t, cmd)
	m, cmd = update(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})
	require.NotNil(t, cmd)

	// nothing applied until the terminal settles
	assert.Equal(t, defaultWidth, m.width)

	m, _ = update(t, m, resizeSettledMsg{seq: 1})
	assert.Equal(t, defaultWidth, m.width, "superseded resize is ignored")

	m, _ = update(t, m, resizeSettledMsg{seq: 2})
	assert.Equal(t, 140, m.width)
	assert.Equal(t, 40, m.height)
}

func TestModel_CycleViews(t *testing.T) {
	m, _, _ := loadedModel(t)

	m, _ = update(t, m, keyPress("tab"))
	assert.Equal(t, cardView, m.viewMode)
	view := m.View()
	assert.Contains(t, view, "Alpha")
	assert.Contains(t, view, "cards")

	m, _ = update(t, m, keyPress("tab"))
	assert.Equal(t, chartView, m.viewMode)
	view = m.View()
	assert.Contains(t, view, "Average rating by genre")
	assert.Contains(t, view, "Rating vs popularity")
	assert.True(t, strings.Contains(view, "Drama"))

	m, _ = update(t, m, keyPress("tab"))
	assert.Equal(t, tableView, m.viewMode)
}

func TestModel_NarrowChartFallsBackToTable(t *testing.T) {
	m, _, _ := loadedModel(t)
	m.width = 40
	m.viewMode = chartView

	view := m.View()
	assert.Contains(t, view, "Average")
	assert.Contains(t, view, "Movies")
	assert.Contains(t, view, "7.75")
}

func TestModel_UnknownGenreLocalized(t *testing.T) {
	loader := &fakeLoader{snapshots: map[domain.Locale]cache.Snapshot{
		domain.LocaleChinese: {
			Locale: domain.LocaleChinese,
			Movies: []domain.Movie{{ID: 9, Title: "无名", GenreIDs: []int64{404}}},
			Genres: []domain.Genre{},
		},
	}}
	m := NewModel(Options{Source: loader, Locale: domain.LocaleChinese})
	m, _ = update(t, m, m.Init()())

	require.Len(t, m.table.Rows(), 1)
	assert.Equal(t, "未知", m.table.Rows()[0][3])
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := loadedModel(t)

	_, cmd := update(t, m, keyPress("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
