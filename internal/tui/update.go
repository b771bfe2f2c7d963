package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"moviedash/internal/cache"
	"moviedash/internal/domain"
	"moviedash/internal/i18n"
	"moviedash/internal/theme"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// async results and resizes are handled the same way in every mode
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case resizeSettledMsg:
		if msg.seq != m.resize.seq {
			return m, nil
		}
		m.width = m.resize.pendingWidth
		m.height = m.resize.pendingHeight
		m.layout()
		return m, nil

	case snapshotLoadedMsg:
		return m.handleSnapshot(msg)

	case loadFailedMsg:
		return m.handleLoadFailed(msg)

	case settingSavedMsg:
		m.logger.Debug("setting saved", zap.String("key", msg.key), zap.String("value", msg.value))
		return m, nil

	case errMsg:
		m.logger.Warn("async operation failed", zap.Error(msg.err))
		m.message = msg.Error()
		return m, nil
	}

	switch m.uiMode {
	case searchingMode:
		return m.updateSearchMode(msg)
	case pickingGenreMode:
		return m.updateGenrePicker(msg)
	}

	return m.updateNormalMode(msg)
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.resize.seq++
	m.resize.pendingWidth = msg.Width
	m.resize.pendingHeight = msg.Height
	return m, debounceResizeCmd(m.resize.seq)
}

func (m Model) handleSnapshot(msg snapshotLoadedMsg) (tea.Model, tea.Cmd) {
	// a response for a locale we already switched away from
	if msg.snapshot.Locale != m.locale {
		return m, nil
	}

	if msg.background {
		m.refreshing = false
	}
	m.applySnapshot(msg.snapshot)

	m.logger.Info("movies loaded",
		zap.String("locale", m.locale.String()),
		zap.Int("movies", len(m.dataset.Movies)),
		zap.Int("genres", len(m.dataset.Genres)),
		zap.Bool("stale", m.stale),
	)

	// stale data stays on screen while a fresh copy is fetched
	if m.stale && !m.refreshing {
		m.refreshing = true
		return m, reloadCmd(m.ctx, m.source, m.locale, true)
	}
	return m, nil
}

func (m Model) handleLoadFailed(msg loadFailedMsg) (tea.Model, tea.Cmd) {
	if msg.locale != m.locale {
		return m, nil
	}

	m.logger.Warn("load failed",
		zap.String("locale", msg.locale.String()),
		zap.Bool("background", msg.background),
		zap.Error(msg.err),
	)

	if msg.background && m.status == cache.StatusReady {
		// keep showing what we have
		m.refreshing = false
		m.message = m.tr.T(i18n.KeyLoadError)
		return m, nil
	}

	m.refreshing = false
	m.status = cache.StatusFailed
	m.err = msg.err
	if !errors.Is(msg.err, cache.ErrFetchFailure) {
		m.err = errors.Join(cache.ErrFetchFailure, msg.err)
	}
	return m, nil
}

func (m Model) updateNormalMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	if m.viewMode == tableView {
		m.table, cmd = m.table.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		m.applyTheme(theme.Resolve(theme.Toggle(m.themeName)))
		m.message = m.tr.T(i18n.KeyThemeChanged, m.themeName)
		return m, saveSettingCmd(m.ctx, m.settings, domain.SettingTheme, m.themeName)

	case key.Matches(msg, m.keys.ToggleLocale):
		return m.switchLocale(m.locale.Toggle())

	case key.Matches(msg, m.keys.Refresh):
		return m.refresh()
	}

	// everything below needs data on screen
	if m.status != cache.StatusReady {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Search):
		m.uiMode = searchingMode
		m.searchOrig = m.prefs.Query
		m.searchInput.SetValue(m.prefs.Query)
		m.searchInput.CursorEnd()
		cmd = m.searchInput.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.GenrePicker):
		m.uiMode = pickingGenreMode
		m.genrePicker.cursor = 0
		for i, f := range m.genreOptions() {
			if f == m.prefs.Genre {
				m.genrePicker.cursor = i
				break
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.ClearFilters):
		m.setPreferences(m.prefs.ClearFilters())
		m.searchInput.SetValue("")
		m.message = m.tr.T(i18n.KeyFiltersReset)
		return m, nil

	case key.Matches(msg, m.keys.SortTitle):
		m.setPreferences(m.prefs.WithSort(domain.SortByTitle))
		return m, nil

	case key.Matches(msg, m.keys.SortYear):
		m.setPreferences(m.prefs.WithSort(domain.SortByYear))
		return m, nil

	case key.Matches(msg, m.keys.SortRating):
		m.setPreferences(m.prefs.WithSort(domain.SortByRating))
		return m, nil

	case key.Matches(msg, m.keys.CycleView):
		m.viewMode = m.viewMode.next()
		return m, nil
	}

	switch m.viewMode {
	case tableView:
		m.table, cmd = m.table.Update(msg)
		return m, cmd

	case cardView:
		perRow := m.cardsPerRow()
		switch {
		case key.Matches(msg, m.keys.Up):
			m.cardOffset = max(m.cardOffset-perRow, 0)
		case key.Matches(msg, m.keys.Down):
			if m.cardOffset+perRow < len(m.view.Results) {
				m.cardOffset += perRow
			}
		}
	}

	return m, nil
}

func (m Model) switchLocale(locale domain.Locale) (tea.Model, tea.Cmd) {
	m.locale = locale
	m.applyLocale()
	m.layout()

	// the genre index is rebuilt from the new locale's genre list once it arrives
	m.status = cache.StatusLoading
	m.refreshing = false
	m.message = m.tr.T(i18n.KeyLocaleChanged, m.locale.String())

	return m, tea.Batch(
		loadCmd(m.ctx, m.source, m.locale),
		saveSettingCmd(m.ctx, m.settings, domain.SettingLocale, m.locale.String()),
	)
}

func (m Model) refresh() (tea.Model, tea.Cmd) {
	if m.status == cache.StatusReady {
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		return m, reloadCmd(m.ctx, m.source, m.locale, true)
	}

	m.status = cache.StatusLoading
	m.err = nil
	return m, reloadCmd(m.ctx, m.source, m.locale, false)
}

func (m Model) updateSearchMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC:
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.uiMode = normalMode
			m.searchInput.Blur()
			m.searchInput.SetValue(m.searchOrig)
			m.setPreferences(m.prefs.WithQuery(m.searchOrig))
			return m, nil

		case key.Matches(msg, m.keys.Enter):
			m.uiMode = normalMode
			m.searchInput.Blur()
			return m, nil
		}
	}

	m.searchInput, cmd = m.searchInput.Update(msg)

	// results follow the input as it is typed
	if q := m.searchInput.Value(); q != m.prefs.Query {
		m.setPreferences(m.prefs.WithQuery(q))
	}
	return m, cmd
}

func (m Model) updateGenrePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	options := m.genreOptions()

	switch {
	case key.Matches(keyMsg, m.keys.Back), key.Matches(keyMsg, m.keys.GenrePicker):
		m.uiMode = normalMode

	case key.Matches(keyMsg, m.keys.Up):
		if m.genrePicker.cursor > 0 {
			m.genrePicker.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.genrePicker.cursor < len(options)-1 {
			m.genrePicker.cursor++
		}

	case key.Matches(keyMsg, m.keys.Enter):
		if m.genrePicker.cursor < len(options) {
			m.setPreferences(m.prefs.WithGenre(options[m.genrePicker.cursor]))
		}
		m.uiMode = normalMode

	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	}

	return m, nil
}
