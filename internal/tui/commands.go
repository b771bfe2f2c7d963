package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"moviedash/internal/cache"
	"moviedash/internal/domain"
	"moviedash/internal/repository"
)

const resizeDebounce = 100 * time.Millisecond

// Loader is the part of cache.Source the dashboard needs.
type Loader interface {
	Load(ctx context.Context, locale domain.Locale) (cache.Snapshot, error)
	Reload(ctx context.Context, locale domain.Locale) (cache.Snapshot, error)
}

// snapshotLoadedMsg is sent when both collections loaded for a locale
type snapshotLoadedMsg struct {
	snapshot   cache.Snapshot
	background bool
}

// loadFailedMsg is sent when either collection failed to load
type loadFailedMsg struct {
	locale     domain.Locale
	err        error
	background bool
}

// settingSavedMsg is sent when a preference has been persisted
type settingSavedMsg struct {
	key   string
	value string
}

// resizeSettledMsg fires once the terminal has stopped resizing
type resizeSettledMsg struct {
	seq int
}

// errMsg wraps errors from async operations
type errMsg struct {
	err error
}

func (e errMsg) Error() string {
	return e.err.Error()
}

// loadCmd serves from cache where possible
func loadCmd(ctx context.Context, src Loader, locale domain.Locale) tea.Cmd {
	return func() tea.Msg {
		snap, err := src.Load(ctx, locale)
		if err != nil {
			return loadFailedMsg{locale: locale, err: err}
		}
		return snapshotLoadedMsg{snapshot: snap}
	}
}

// reloadCmd always goes to the API; background reloads keep the current
// data on screen while they run
func reloadCmd(ctx context.Context, src Loader, locale domain.Locale, background bool) tea.Cmd {
	return func() tea.Msg {
		snap, err := src.Reload(ctx, locale)
		if err != nil {
			return loadFailedMsg{locale: locale, err: err, background: background}
		}
		return snapshotLoadedMsg{snapshot: snap, background: background}
	}
}

func saveSettingCmd(ctx context.Context, repo repository.SettingRepository, key, value string) tea.Cmd {
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		if err := repo.Set(ctx, key, value); err != nil {
			return errMsg{err}
		}
		return settingSavedMsg{key: key, value: value}
	}
}

// the latest resize wins: only the tick carrying the current sequence is applied
func debounceResizeCmd(seq int) tea.Cmd {
	return tea.Tick(resizeDebounce, func(time.Time) tea.Msg {
		return resizeSettledMsg{seq: seq}
	})
}
