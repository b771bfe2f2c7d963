package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"moviedash/internal/cache"
	"moviedash/internal/display"
	"moviedash/internal/domain"
	"moviedash/internal/i18n"
	"moviedash/internal/pipeline"
	"moviedash/internal/repository"
	"moviedash/internal/theme"
)

type viewMode int

const (
	tableView viewMode = iota
	cardView
	chartView
)

func (v viewMode) next() viewMode {
	return (v + 1) % 3
}

type uiMode int

const (
	normalMode uiMode = iota
	searchingMode
	pickingGenreMode
)

const (
	defaultWidth  = 100
	defaultHeight = 30

	// title, filter summary, status bar, help, spacing
	chromeHeight = 9

	cardWidth  = 30
	cardHeight = 5
)

type genrePicker struct {
	cursor int
}

type resizeState struct {
	seq           int
	pendingWidth  int
	pendingHeight int
}

type Options struct {
	Source      Loader
	Settings    repository.SettingRepository
	Locale      domain.Locale
	ThemeName   string
	Preferences domain.Preferences
	Logger      *zap.Logger
}

type Model struct {
	source   Loader
	settings repository.SettingRepository
	logger   *zap.Logger

	status     cache.Status
	err        error
	dataset    pipeline.Dataset
	view       pipeline.View
	fetchedAt  time.Time
	stale      bool
	refreshing bool

	// the only place preferences change
	prefs  domain.Preferences
	locale domain.Locale
	tr     *i18n.Translator

	themeName string
	theme     *theme.Theme
	styles    *theme.Styles

	table       table.Model
	searchInput textinput.Model
	searchOrig  string
	help        help.Model
	keys        keyMap

	viewMode    viewMode
	uiMode      uiMode
	genrePicker genrePicker
	cardOffset  int

	width   int
	height  int
	resize  resizeState
	message string

	ctx context.Context
}

func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	locale := opts.Locale
	if locale == "" {
		locale = domain.LocaleEnglish
	}

	prefs := opts.Preferences
	if prefs.SortKey == "" {
		prefs = domain.DefaultPreferences()
	}

	themeObj := theme.Resolve(opts.ThemeName)

	t := table.New(
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(defaultHeight-chromeHeight),
	)

	si := textinput.New()
	si.CharLimit = 100
	si.Width = 40
	si.SetValue(prefs.Query)

	m := Model{
		source:      opts.Source,
		settings:    opts.Settings,
		logger:      logger,
		status:      cache.StatusLoading,
		prefs:       prefs,
		locale:      locale,
		tr:          i18n.New(locale),
		table:       t,
		searchInput: si,
		help:        help.New(),
		keys:        defaultKeyMap(),
		viewMode:    tableView,
		uiMode:      normalMode,
		width:       defaultWidth,
		height:      defaultHeight,
		ctx:         context.Background(),
	}
	m.applyTheme(themeObj)
	m.applyLocale()
	m.layout()

	return m
}

func (m Model) Init() tea.Cmd {
	return loadCmd(m.ctx, m.source, m.locale)
}

// Preferences returns the current selection, for callers that outlive the program.
func (m Model) Preferences() domain.Preferences {
	return m.prefs
}

func (m Model) Locale() domain.Locale {
	return m.locale
}

func (m Model) ThemeName() string {
	return m.themeName
}

func (m *Model) applyTheme(t *theme.Theme) {
	m.theme = t
	m.themeName = t.Name
	m.styles = theme.NewStyles(t)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(t.BorderColor)).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(t.SelectedFg)).
		Background(lipgloss.Color(t.SelectedBg)).
		Bold(true)
	m.table.SetStyles(s)

	m.help.Styles.ShortKey = m.styles.Info
	m.help.Styles.ShortDesc = m.styles.TUIHelp
	m.help.Styles.FullKey = m.styles.Info
	m.help.Styles.FullDesc = m.styles.TUIHelp
}

func (m *Model) applyLocale() {
	m.tr = i18n.New(m.locale)
	m.searchInput.Prompt = m.tr.T(i18n.KeySearchPrompt)
	m.searchInput.Placeholder = m.tr.T(i18n.KeySearchHint)
}

// sizes the table columns to the current terminal width
func (m *Model) layout() {
	const (
		yearWidth   = 6
		ratingWidth = 7
		padding     = 8
	)

	rest := max(m.width-yearWidth-ratingWidth-padding, 20)
	titleWidth := rest * 55 / 100
	genresWidth := rest - titleWidth

	m.table.SetColumns([]table.Column{
		{Title: m.tr.T(i18n.KeyColumnTitle), Width: titleWidth},
		{Title: m.tr.T(i18n.KeyColumnYear), Width: yearWidth},
		{Title: m.tr.T(i18n.KeyColumnRating), Width: ratingWidth},
		{Title: m.tr.T(i18n.KeyColumnGenres), Width: genresWidth},
	})
	m.table.SetHeight(max(m.height-chromeHeight, 3))
	m.help.Width = m.width

	m.updateTableRows()
}

// recompute rebuilds the derived view from scratch
func (m *Model) recompute() {
	m.view = pipeline.Compose(m.dataset, m.prefs, m.locale)
	m.cardOffset = 0
	m.updateTableRows()
}

func (m *Model) setPreferences(p domain.Preferences) {
	m.prefs = p
	m.recompute()
	m.table.GotoTop()
}

func (m *Model) applySnapshot(snap cache.Snapshot) {
	m.dataset = pipeline.NewDataset(snap.Movies, snap.Genres)
	m.fetchedAt = snap.FetchedAt
	m.stale = snap.Stale
	m.status = cache.StatusReady
	m.err = nil
	m.recompute()
}

func (m *Model) updateTableRows() {
	rows := m.view.Rows()
	tableRows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, m.rowToTableRow(r))
	}
	m.table.SetRows(tableRows)
}

func (m *Model) rowToTableRow(r pipeline.Row) table.Row {
	rating := fmt.Sprintf("%s %s",
		display.GetRatingIcon(display.GetRatingLevel(r.Rating)),
		display.FormatRating(r.Rating))

	return table.Row{
		r.Title,
		display.FormatYear(r.Year),
		rating,
		display.JoinGenres(m.localizeGenres(r.Genres)),
	}
}

func (m *Model) localizeGenres(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		if n == domain.UnknownGenre {
			n = m.tr.T(i18n.KeyUnknownGenre)
		}
		out[i] = n
	}
	return out
}

// picker entries: "all" first, then the genres in API order
func (m *Model) genreOptions() []domain.GenreFilter {
	opts := make([]domain.GenreFilter, 0, len(m.dataset.Genres)+1)
	opts = append(opts, domain.AllGenres)
	for _, g := range m.dataset.Genres {
		opts = append(opts, domain.GenreFilterFor(g.ID))
	}
	return opts
}

func (m *Model) genreLabel(f domain.GenreFilter) string {
	id, ok := f.GenreID()
	if !ok {
		return m.tr.T(i18n.KeyAllGenres)
	}
	if name, found := m.dataset.Index.Lookup(id); found {
		return name
	}
	return m.tr.T(i18n.KeyUnknownGenre)
}

func (m *Model) sortLabel() string {
	var key string
	switch m.prefs.SortKey {
	case domain.SortByYear:
		key = m.tr.T(i18n.KeySortYear)
	case domain.SortByRating:
		key = m.tr.T(i18n.KeySortRating)
	default:
		key = m.tr.T(i18n.KeySortTitle)
	}

	arrow := "↑"
	if m.prefs.Direction == domain.SortDescending {
		arrow = "↓"
	}
	return key + " " + arrow
}

func (m *Model) cardsPerRow() int {
	return max(m.width/(cardWidth+2), 1)
}

func (m *Model) visibleCardRows() int {
	return max((m.height-chromeHeight)/cardHeight, 1)
}
