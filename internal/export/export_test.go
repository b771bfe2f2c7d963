package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviedash/internal/domain"
	"moviedash/internal/pipeline"
)

func sampleExport(t *testing.T) *ViewExport {
	t.Helper()

	movies := []domain.Movie{
		{ID: 1, Title: "Zeta", ReleaseDate: "2020-05-01", VoteAverage: 7.0, Popularity: 12.5, GenreIDs: []int64{1}},
		{ID: 2, Title: "Alpha | Omega", ReleaseDate: "2019-01-01", VoteAverage: 8.5, Popularity: 40, GenreIDs: []int64{1, 2}},
		{ID: 3, Title: "Gamma", ReleaseDate: "", VoteAverage: 5.0, Popularity: 3, GenreIDs: []int64{99}},
	}
	genres := []domain.Genre{{ID: 1, Name: "Drama"}, {ID: 2, Name: "Comedy"}, {ID: 3, Name: "Horror"}}

	prefs := domain.DefaultPreferences().WithGenre(domain.GenreFilterFor(1))
	view := pipeline.Compose(pipeline.NewDataset(movies, genres), prefs, domain.LocaleEnglish)

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return NewViewExport(view, prefs, domain.LocaleEnglish, now)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    ExportFormat
		wantErr bool
	}{
		{"csv", FormatCSV, false},
		{"JSON", FormatJSON, false},
		{"markdown", FormatMarkdown, false},
		{"md", FormatMarkdown, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.True(t, errors.Is(err, ErrUnsupportedFormat))
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestNewViewExport(t *testing.T) {
	exp := sampleExport(t)

	assert.Equal(t, "en-US", exp.Locale)
	assert.Equal(t, "1", exp.Filters.Genre)
	assert.Equal(t, "title", exp.Filters.SortKey)

	// filtered to Drama, sorted by title
	require.Len(t, exp.Movies, 2)
	assert.Equal(t, "Alpha | Omega", exp.Movies[0].Title)
	assert.Equal(t, 40.0, exp.Movies[0].Popularity)
	assert.Equal(t, []string{"Drama", "Comedy"}, exp.Movies[0].Genres)
	assert.Equal(t, "Zeta", exp.Movies[1].Title)

	// aggregate ignores the genre filter, Horror has no movies
	require.Len(t, exp.Genres, 2)
	assert.Equal(t, "Drama", exp.Genres[0].Name)
	assert.InDelta(t, 7.75, exp.Genres[0].Average, 1e-9)
	assert.Equal(t, "Comedy", exp.Genres[1].Name)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleExport(t)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"ID", "Title", "Year", "Rating", "Popularity", "Genres"}, records[0])
	assert.Equal(t, []string{"2", "Alpha | Omega", "2019", "8.5", "40.000", "Drama;Comedy"}, records[1])
	assert.Equal(t, "Zeta", records[2][1])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleExport(t)))

	var decoded ViewExport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, exportVersion, decoded.Version)
	assert.Len(t, decoded.Movies, 2)
	assert.Len(t, decoded.Genres, 2)
	assert.Contains(t, buf.String(), `"genre_ratings"`)
	assert.Contains(t, buf.String(), `"generated_at": "2026-03-01T10:00:00Z"`)
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, sampleExport(t)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# Popular Movies"))
	assert.Contains(t, out, `| Alpha \| Omega | 2019 | 8.5 | Drama, Comedy |`)
	assert.Contains(t, out, "| Drama | 7.75 | 2 |")
	assert.NotContains(t, out, "Search:")
}

func TestWrite_Dispatch(t *testing.T) {
	exp := sampleExport(t)

	for _, f := range []ExportFormat{FormatCSV, FormatJSON, FormatMarkdown} {
		var buf bytes.Buffer
		require.NoError(t, Write(&buf, f, exp))
		assert.NotZero(t, buf.Len())
	}

	err := Write(&bytes.Buffer{}, "xml", exp)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}
