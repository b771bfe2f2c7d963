package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type RatingLevel int

const (
	RatingLow RatingLevel = iota
	RatingMid
	RatingHigh
)

const (
	highRatingThreshold = 7.0
	midRatingThreshold  = 5.0
)

func GetRatingLevel(rating float64) RatingLevel {
	switch {
	case rating >= highRatingThreshold:
		return RatingHigh
	case rating >= midRatingThreshold:
		return RatingMid
	default:
		return RatingLow
	}
}

func GetRatingIcon(level RatingLevel) string {
	switch level {
	case RatingHigh:
		return "★"
	case RatingMid:
		return "☆"
	default:
		return "·"
	}
}

// one decimal, "-" for unrated
func FormatRating(rating float64) string {
	if rating <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f", rating)
}

func FormatYear(year string) string {
	if year == "" {
		return "-"
	}
	return year
}

func FormatPopularity(popularity float64) string {
	return fmt.Sprintf("%.0f", popularity)
}

func JoinGenres(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

// cuts s to the given cell width, CJK runes count as two cells
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return ansi.Truncate(s, width, "…")
}

// pads s with spaces to the given cell width
func PadRight(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
