package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"moviedash/internal/display"
	"moviedash/internal/pipeline"
	"moviedash/internal/theme"
)

const (
	pointGlyph   = "●"
	overlapGlyph = "◆"
	minPlotSize  = 4
)

// Grid is a scatter plot laid out in cells. Counts[row][col] is the number
// of points in that cell, row zero at the top.
type Grid struct {
	Width         int
	Height        int
	MaxPopularity float64
	Counts        [][]int
}

// Plot places rating on x over [0, 10] and popularity on y over [0, max].
func Plot(points []pipeline.Point, width, height int) Grid {
	width = max(width, minPlotSize)
	height = max(height, minPlotSize)

	g := Grid{Width: width, Height: height, Counts: make([][]int, height)}
	for i := range g.Counts {
		g.Counts[i] = make([]int, width)
	}

	for _, p := range points {
		g.MaxPopularity = math.Max(g.MaxPopularity, p.Popularity)
	}

	for _, p := range points {
		col := scale(p.Rating, maxRating, width)
		row := height - 1 - scale(p.Popularity, g.MaxPopularity, height)
		g.Counts[row][col]++
	}

	return g
}

func scale(v, limit float64, cells int) int {
	if limit <= 0 || v <= 0 {
		return 0
	}
	n := int(math.Round(v / limit * float64(cells-1)))
	return min(max(n, 0), cells-1)
}

// Scatter renders a grid with a popularity axis on the left and a rating
// axis underneath. width and height are the plot area, axes excluded.
func Scatter(points []pipeline.Point, width, height int, styles *theme.Styles) string {
	if len(points) == 0 {
		return ""
	}

	g := Plot(points, width, height)

	var pointStyle, axisStyle, labelStyle *lipgloss.Style
	if styles != nil {
		pointStyle = &styles.Point
		axisStyle = &styles.Axis
		labelStyle = &styles.AxisLabel
	}

	top := display.FormatPopularity(g.MaxPopularity)
	gutter := max(lipgloss.Width(top), 1)

	var b strings.Builder
	for row, counts := range g.Counts {
		label := ""
		switch row {
		case 0:
			label = top
		case g.Height - 1:
			label = "0"
		}
		b.WriteString(render(labelStyle, fmt.Sprintf("%*s", gutter, label)))
		b.WriteString(render(axisStyle, "│"))

		for _, n := range counts {
			switch {
			case n == 0:
				b.WriteString(" ")
			case n == 1:
				b.WriteString(render(pointStyle, pointGlyph))
			default:
				b.WriteString(render(pointStyle, overlapGlyph))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat(" ", gutter))
	b.WriteString(render(axisStyle, "└"+strings.Repeat("─", g.Width)))
	b.WriteString("\n")

	axis := "0" + strings.Repeat(" ", max(g.Width-3, 1)) + "10"
	b.WriteString(strings.Repeat(" ", gutter+1))
	b.WriteString(render(labelStyle, axis))

	return b.String()
}
