package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"moviedash/internal/cache"
	"moviedash/internal/chart"
	"moviedash/internal/display"
	"moviedash/internal/i18n"
)

// below this width the bar chart falls back to a table
const minBarChartWidth = 50

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.status {
	case cache.StatusLoading:
		b.WriteString("\n")
		b.WriteString(m.styles.Info.Render(m.tr.T(i18n.KeyLoading)))
		b.WriteString("\n\n")
		b.WriteString(m.help.View(m.keys))
		return b.String()

	case cache.StatusFailed:
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render("✗ " + m.tr.T(i18n.KeyLoadError)))
		b.WriteString("\n")
		b.WriteString(m.styles.Subtitle.Render(m.tr.T(i18n.KeyLoadErrorHint)))
		b.WriteString("\n\n")
		b.WriteString(m.help.View(m.keys))
		return b.String()
	}

	b.WriteString(m.renderFilterSummary())
	b.WriteString("\n")

	switch m.uiMode {
	case searchingMode:
		b.WriteString(m.searchInput.View())
		b.WriteString("\n")
	case pickingGenreMode:
		b.WriteString(m.renderGenrePicker())
		b.WriteString("\n")
		b.WriteString(m.renderStatusBar())
		return b.String()
	}

	b.WriteString("\n")
	switch m.viewMode {
	case tableView:
		b.WriteString(m.renderTableView())
	case cardView:
		b.WriteString(m.renderCardView())
	case chartView:
		b.WriteString(m.renderChartView())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) renderHeader() string {
	title := m.styles.TUITitle.Render("  " + m.tr.T(i18n.KeyAppTitle) + "  ")
	meta := m.styles.TUISubtitle.Render(fmt.Sprintf(" %s · %s", m.locale, m.themeName))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, meta)
}

func (m Model) renderFilterSummary() string {
	items := []string{
		m.genreLabel(m.prefs.Genre),
		m.sortLabel(),
	}
	if m.prefs.Query != "" && m.uiMode != searchingMode {
		items = append(items, fmt.Sprintf("%q", m.prefs.Query))
	}
	return m.styles.Info.Render(strings.Join(items, " | "))
}

func (m Model) renderEmpty() string {
	return m.styles.Info.Render(m.tr.T(i18n.KeyEmpty))
}

func (m Model) renderTableView() string {
	if m.view.Empty() {
		return m.renderEmpty()
	}
	return m.table.View()
}

func (m Model) renderCardView() string {
	if m.view.Empty() {
		return m.renderEmpty()
	}

	rows := m.view.Rows()
	perRow := m.cardsPerRow()
	end := min(m.cardOffset+perRow*m.visibleCardRows(), len(rows))

	var lines []string
	for start := m.cardOffset; start < end; start += perRow {
		var cards []string
		for _, r := range rows[start:min(start+perRow, end)] {
			cards = append(cards, m.renderCard(r.Title, r.Year, r.Rating, m.localizeGenres(r.Genres)))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderCard(title, year string, rating float64, genres []string) string {
	inner := cardWidth - 4

	ratingText := m.styles.GetRatingStyle(rating).Render(
		display.GetRatingIcon(display.GetRatingLevel(rating)) + " " + display.FormatRating(rating))

	body := strings.Join([]string{
		m.styles.CardTitle.Render(display.Truncate(title, inner)),
		m.styles.CardMeta.Render(display.FormatYear(year)) + "  " + ratingText,
		m.styles.CardMeta.Render(display.Truncate(display.JoinGenres(genres), inner)),
	}, "\n")

	return m.styles.Card.Width(cardWidth - 2).Render(body)
}

func (m Model) renderChartView() string {
	var b strings.Builder
	width := max(m.width-4, 20)

	b.WriteString(m.styles.Title.Render(m.tr.T(i18n.KeyChartBar)))
	b.WriteString("\n")
	switch {
	case len(m.view.Aggregate) == 0:
		b.WriteString(m.styles.Muted.Render(m.tr.T(i18n.KeyChartNoData)))
	case m.width < minBarChartWidth:
		b.WriteString(chart.AggregateTable(m.view.Aggregate, []string{
			m.tr.T(i18n.KeyColumnGenre),
			m.tr.T(i18n.KeyColumnAverage),
			m.tr.T(i18n.KeyColumnCount),
		}, m.styles))
	default:
		b.WriteString(chart.BarChart(m.view.Aggregate, width, m.styles))
	}
	b.WriteString("\n")

	b.WriteString(m.styles.Title.Render(m.tr.T(i18n.KeyChartScatter)))
	b.WriteString("\n")
	if m.view.Empty() {
		b.WriteString(m.styles.Muted.Render(m.tr.T(i18n.KeyChartNoData)))
	} else {
		height := max(m.height-chromeHeight-len(m.view.Aggregate)-6, 6)
		b.WriteString(chart.Scatter(m.view.Points(), width-6, height, m.styles))
		b.WriteString("\n")
		b.WriteString(m.styles.AxisLabel.Render(fmt.Sprintf("x: %s  y: %s",
			m.tr.T(i18n.KeyChartAxisRating), m.tr.T(i18n.KeyChartAxisPop))))
	}

	return b.String()
}

func (m Model) renderGenrePicker() string {
	var b strings.Builder

	b.WriteString(m.styles.CardTitle.Render(m.tr.T(i18n.KeyGenrePicker)))
	b.WriteString("\n\n")

	options := m.genreOptions()

	// keep the cursor inside a window that fits the screen
	window := max(m.height-chromeHeight-4, 5)
	start := 0
	if m.genrePicker.cursor >= window {
		start = m.genrePicker.cursor - window + 1
	}
	end := min(start+window, len(options))

	for i := start; i < end; i++ {
		label := m.genreLabel(options[i])
		if options[i] == m.prefs.Genre {
			label += " ✓"
		}
		if i == m.genrePicker.cursor {
			b.WriteString(m.styles.PickerFocus.Render("> " + label))
		} else {
			b.WriteString(m.styles.PickerItem.Render("  " + label))
		}
		b.WriteString("\n")
	}

	return m.styles.Picker.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) renderStatusBar() string {
	var items []string

	items = append(items, m.tr.T(i18n.KeyResultCount, len(m.view.Results), len(m.dataset.Movies)))

	switch m.viewMode {
	case tableView:
		items = append(items, m.tr.T(i18n.KeyViewTable))
	case cardView:
		items = append(items, m.tr.T(i18n.KeyViewCards))
	case chartView:
		items = append(items, m.tr.T(i18n.KeyViewCharts))
	}

	if m.refreshing {
		items = append(items, m.tr.T(i18n.KeyRefreshing))
	} else if m.stale {
		items = append(items, m.tr.T(i18n.KeyStale))
	}

	if m.message != "" {
		items = append(items, m.message)
	}

	return m.styles.StatusBar.Render(strings.Join(items, " • "))
}
