// Package chart draws the dashboard's text charts from pipeline output.
// Functions here are pure; a nil style set renders plain text.
package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"moviedash/internal/display"
	"moviedash/internal/pipeline"
	"moviedash/internal/theme"
)

const (
	maxRating     = 10.0
	maxLabelWidth = 18
	minBarWidth   = 5
	barGlyph      = "█"
)

func render(style *lipgloss.Style, s string) string {
	if style == nil {
		return s
	}
	return style.Render(s)
}

// BarChart draws one horizontal bar per genre, scaled so a full bar is a
// rating of ten.
func BarChart(ratings []pipeline.GenreRating, width int, styles *theme.Styles) string {
	if len(ratings) == 0 {
		return ""
	}

	labelWidth := 0
	for _, r := range ratings {
		labelWidth = max(labelWidth, lipgloss.Width(r.Name))
	}
	labelWidth = min(labelWidth, maxLabelWidth)

	// label, space, bar, space, "10.0"
	barWidth := max(width-labelWidth-6, minBarWidth)

	var barStyle, labelStyle *lipgloss.Style
	if styles != nil {
		barStyle = &styles.Bar
		labelStyle = &styles.AxisLabel
	}

	lines := make([]string, 0, len(ratings))
	for _, r := range ratings {
		filled := BarLength(r.Average, barWidth)
		label := display.PadRight(display.Truncate(r.Name, labelWidth), labelWidth)
		bar := strings.Repeat(barGlyph, filled) + strings.Repeat(" ", barWidth-filled)

		lines = append(lines, fmt.Sprintf("%s %s %s",
			render(labelStyle, label),
			render(barStyle, bar),
			fmt.Sprintf("%4.1f", r.Average),
		))
	}

	return strings.Join(lines, "\n")
}

// BarLength maps a rating on [0, 10] to a whole number of cells.
func BarLength(rating float64, width int) int {
	if width <= 0 || rating <= 0 {
		return 0
	}
	n := int(math.Round(rating / maxRating * float64(width)))
	return min(max(n, 0), width)
}

// AggregateTable is the tabular form of the bar chart for narrow terminals
// and plain output.
func AggregateTable(ratings []pipeline.GenreRating, headers []string, styles *theme.Styles) string {
	rows := make([][]string, 0, len(ratings))
	for _, r := range ratings {
		rows = append(rows, []string{
			r.Name,
			fmt.Sprintf("%.2f", r.Average),
			fmt.Sprintf("%d", r.Count),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)

	if styles != nil {
		t = t.BorderStyle(styles.Separator).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return styles.Header
				}
				return styles.Cell
			})
	}

	return t.Render()
}
