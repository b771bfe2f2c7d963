package theme

import (
	"moviedash/internal/display"

	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	// cli
	Success   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Separator lipgloss.Style

	// rating
	HighRating lipgloss.Style
	MidRating  lipgloss.Style
	LowRating  lipgloss.Style

	// chart
	Bar       lipgloss.Style
	Point     lipgloss.Style
	Axis      lipgloss.Style
	AxisLabel lipgloss.Style

	// tui
	TUITitle    lipgloss.Style
	TUISubtitle lipgloss.Style
	TUIHelp     lipgloss.Style
	StatusBar   lipgloss.Style
	Card        lipgloss.Style
	CardTitle   lipgloss.Style
	CardMeta    lipgloss.Style
	Picker      lipgloss.Style
	PickerItem  lipgloss.Style
	PickerFocus lipgloss.Style
	Muted       lipgloss.Style
}

// creates all styles based on the given theme
func NewStyles(t *Theme) *Styles {
	return &Styles{
		// cli
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Secondary)).
			PaddingTop(1).
			PaddingBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SubtitleText)).
			Italic(true),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.HeaderFg)).
			Background(lipgloss.Color(t.HeaderBg)).
			PaddingLeft(1).
			PaddingRight(1),

		Cell: lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1),

		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Separator)),

		// rating
		HighRating: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.RatingHigh)).
			Bold(true),

		MidRating: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.RatingMid)),

		LowRating: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.RatingLow)),

		// chart
		Bar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.ChartBar)),

		Point: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.ChartPoint)).
			Bold(true),

		Axis: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.ChartAxis)),

		AxisLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextMuted)),

		// tui
		TUITitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.HeaderFg)).
			Background(lipgloss.Color(t.HeaderBg)).
			Padding(0, 1),

		TUISubtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextSecondary)),

		TUIHelp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.HelpText)),

		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextSecondary)).
			Background(lipgloss.Color(t.BgSecondary)).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderColor)).
			Padding(0, 1),

		CardTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),

		CardMeta: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextSecondary)),

		Picker: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderColor)).
			Padding(1, 2),

		PickerItem: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextPrimary)),

		PickerFocus: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SelectedFg)).
			Background(lipgloss.Color(t.SelectedBg)).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextMuted)),
	}
}

func (s *Styles) GetRatingStyle(rating float64) lipgloss.Style {
	switch display.GetRatingLevel(rating) {
	case display.RatingHigh:
		return s.HighRating
	case display.RatingMid:
		return s.MidRating
	default:
		return s.LowRating
	}
}
