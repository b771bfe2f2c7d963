package display

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestGetRatingLevel(t *testing.T) {
	tests := []struct {
		rating float64
		want   RatingLevel
	}{
		{9.1, RatingHigh},
		{7.0, RatingHigh},
		{6.9, RatingMid},
		{5.0, RatingMid},
		{4.99, RatingLow},
		{0, RatingLow},
	}

	for _, tt := range tests {
		if got := GetRatingLevel(tt.rating); got != tt.want {
			t.Errorf("GetRatingLevel(%v) = %v, want %v", tt.rating, got, tt.want)
		}
	}
}

func TestFormatRating(t *testing.T) {
	assert.Equal(t, "8.5", FormatRating(8.5))
	assert.Equal(t, "7.0", FormatRating(7))
	assert.Equal(t, "6.8", FormatRating(6.789))
	assert.Equal(t, "-", FormatRating(0))
}

func TestFormatYear(t *testing.T) {
	assert.Equal(t, "2019", FormatYear("2019"))
	assert.Equal(t, "-", FormatYear(""))
}

func TestJoinGenres(t *testing.T) {
	assert.Equal(t, "-", JoinGenres(nil))
	assert.Equal(t, "Drama", JoinGenres([]string{"Drama"}))
	assert.Equal(t, "Drama, Unknown", JoinGenres([]string{"Drama", "Unknown"}))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "Alien", 10, "Alien"},
		{"exact", "Alien", 5, "Alien"},
		{"cut", "The Godfather", 8, "The God…"},
		{"zero", "Alien", 0, ""},
		{"single cell", "Alien", 1, "…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.width))
		})
	}

	t.Run("wide runes stay within width", func(t *testing.T) {
		got := Truncate("千与千寻的神隐", 7)
		assert.LessOrEqual(t, lipgloss.Width(got), 7)
		assert.Contains(t, got, "…")
	})
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "abcdef", PadRight("abcdef", 3))
	assert.Equal(t, 6, lipgloss.Width(PadRight("千与", 6)))
}
