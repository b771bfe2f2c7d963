package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"moviedash/internal/chart"
	"moviedash/internal/display"
	"moviedash/internal/domain"
	"moviedash/internal/i18n"
	"moviedash/internal/pipeline"
	"moviedash/internal/repository"
	"moviedash/internal/theme"
)

type setupStep int

const (
	themeStep setupStep = iota
	localeStep
)

var setupLocales = []domain.Locale{domain.LocaleEnglish, domain.LocaleChinese}

// SetupModel is the first-run picker for theme and language
type SetupModel struct {
	settings repository.SettingRepository
	ctx      context.Context

	step         setupStep
	themes       []string
	themeIndex   int
	localeIndex  int
	currentTheme *theme.Theme
	width        int
	height       int
	quitting     bool
	confirmed    bool
	err          error
}

func NewSetupModel(settings repository.SettingRepository) SetupModel {
	themes := theme.ListThemes()
	currentTheme, _ := theme.GetTheme(themes[0])

	return SetupModel{
		settings:     settings,
		ctx:          context.Background(),
		themes:       themes,
		currentTheme: currentTheme,
		width:        100,
		height:       30,
	}
}

func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Result reports the chosen theme and locale, ok is false when cancelled
func (m SetupModel) Result() (themeName string, locale domain.Locale, ok bool) {
	return m.themes[m.themeIndex], setupLocales[m.localeIndex], m.confirmed
}

func (m SetupModel) Err() error {
	return m.err
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("q", "ctrl+c"))):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, key.NewBinding(key.WithKeys("esc"))):
			if m.step == localeStep {
				m.step = themeStep
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			m.move(-1)
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			m.move(1)
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			if m.step == themeStep {
				m.step = localeStep
				return m, nil
			}
			m.err = m.save()
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m *SetupModel) move(delta int) {
	switch m.step {
	case themeStep:
		m.themeIndex = min(max(m.themeIndex+delta, 0), len(m.themes)-1)
		m.currentTheme = theme.Resolve(m.themes[m.themeIndex])
	case localeStep:
		m.localeIndex = min(max(m.localeIndex+delta, 0), len(setupLocales)-1)
	}
}

func (m SetupModel) save() error {
	if m.settings == nil {
		return nil
	}
	themeName, locale, _ := m.Result()
	if err := m.settings.Set(m.ctx, domain.SettingTheme, themeName); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	if err := m.settings.Set(m.ctx, domain.SettingLocale, locale.String()); err != nil {
		return fmt.Errorf("failed to save locale: %w", err)
	}
	return nil
}

func (m SetupModel) View() string {
	if m.quitting {
		if m.confirmed {
			return ""
		}
		return "Setup cancelled.\n"
	}

	if m.width < 60 || m.height < 10 {
		return "Terminal too small. Please resize and try again.\n"
	}

	styles := theme.NewStyles(m.currentTheme)
	tr := i18n.New(setupLocales[m.localeIndex])

	leftWidth := max(m.width/3, 30)
	rightWidth := max(m.width-leftWidth-4, 30)

	var list string
	if m.step == themeStep {
		list = m.renderOptions("Theme", m.themes, m.themeIndex, leftWidth)
	} else {
		names := make([]string, len(setupLocales))
		for i, l := range setupLocales {
			names[i] = l.String()
		}
		list = m.renderOptions("Language", names, m.localeIndex, leftWidth)
	}

	panel := lipgloss.NewStyle().
		Height(m.height - 6).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.currentTheme.BorderColor)).
		Padding(1)

	left := panel.Width(leftWidth).Render(list)
	right := panel.Width(rightWidth).Render(m.renderPreview(styles, tr, rightWidth))

	main := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	header := styles.TUITitle.Render("moviedash setup")
	subtitle := styles.TUISubtitle.Render("Pick a theme, then a language")
	help := styles.TUIHelp.Render("↑/k: up • ↓/j: down • enter: confirm • esc: back • q: quit")

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", header, subtitle, main, help)
}

func (m SetupModel) renderOptions(title string, options []string, selected, width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.currentTheme.Primary)).
		Render(title))
	b.WriteString("\n\n")

	for i, name := range options {
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.currentTheme.TextSecondary)).
			Width(width - 4)
		prefix := "  "
		if i == selected {
			prefix = "▶ "
			style = lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.currentTheme.SelectedFg)).
				Background(lipgloss.Color(m.currentTheme.SelectedBg)).
				Bold(true).
				Width(width - 4)
		}
		b.WriteString(style.Render(prefix + name))
		b.WriteString("\n")
	}

	return b.String()
}

var previewRatings = []pipeline.GenreRating{
	{GenreID: 18, Name: "Drama", Average: 7.8, Count: 9},
	{GenreID: 35, Name: "Comedy", Average: 6.4, Count: 6},
	{GenreID: 27, Name: "Horror", Average: 4.9, Count: 3},
}

func (m SetupModel) renderPreview(styles *theme.Styles, tr *i18n.Translator, width int) string {
	var b strings.Builder

	b.WriteString(styles.CardTitle.Render(tr.T(i18n.KeyAppTitle)))
	b.WriteString("\n\n")

	for _, r := range previewRatings {
		b.WriteString(fmt.Sprintf("%s %s\n",
			display.PadRight(r.Name, 8),
			styles.GetRatingStyle(r.Average).Render(display.FormatRating(r.Average))))
	}

	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render(tr.T(i18n.KeyChartBar)))
	b.WriteString("\n")
	b.WriteString(chart.BarChart(previewRatings, width-4, styles))

	return b.String()
}
