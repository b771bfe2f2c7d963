package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_GetTheme(t *testing.T) {
	m := NewManager()

	for _, name := range m.ListThemes() {
		th, err := m.GetTheme(name)
		require.NoError(t, err)
		assert.Equal(t, name, th.Name)
		assert.NotEmpty(t, th.RatingHigh)
		assert.NotEmpty(t, th.ChartBar)
	}

	_, err := m.GetTheme("dracula")
	assert.True(t, errors.Is(err, ErrThemeNotFound))
}

func TestToggle(t *testing.T) {
	assert.Equal(t, DarkName, Toggle(LightName))
	assert.Equal(t, LightName, Toggle(DarkName))
	assert.Equal(t, DarkName, Toggle(""))
	assert.Equal(t, LightName, Toggle(Toggle(LightName)))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, DarkName, Resolve("dark").Name)
	assert.Equal(t, LightName, Resolve("light").Name)
	assert.Equal(t, DefaultTheme().Name, Resolve("nope").Name)
	assert.Equal(t, LightName, GetDefaultTheme().Name)
}

func TestStyles_GetRatingStyle(t *testing.T) {
	s := NewStyles(DarkTheme())

	assert.Equal(t, s.HighRating.GetForeground(), s.GetRatingStyle(8.2).GetForeground())
	assert.Equal(t, s.MidRating.GetForeground(), s.GetRatingStyle(6.0).GetForeground())
	assert.Equal(t, s.LowRating.GetForeground(), s.GetRatingStyle(3.1).GetForeground())
}
