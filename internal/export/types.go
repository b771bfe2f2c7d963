package export

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"moviedash/internal/domain"
	"moviedash/internal/pipeline"
)

const exportVersion = "1.0"

var ErrUnsupportedFormat = errors.New("unsupported export format")

type ExportFormat string

const (
	FormatJSON     ExportFormat = "json"
	FormatCSV      ExportFormat = "csv"
	FormatMarkdown ExportFormat = "markdown"
)

func ParseFormat(s string) (ExportFormat, error) {
	switch f := ExportFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatCSV, FormatMarkdown:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// ViewExport is a derived view flattened for writing out.
type ViewExport struct {
	Version     string             `json:"version"`
	Locale      string             `json:"locale"`
	GeneratedAt time.Time          `json:"generated_at"`
	Filters     FilterData         `json:"filters"`
	Movies      []*MovieData       `json:"movies"`
	Genres      []*GenreRatingData `json:"genre_ratings"`
}

type FilterData struct {
	Genre     string `json:"genre"`
	Query     string `json:"query,omitempty"`
	SortKey   string `json:"sort_key"`
	Direction string `json:"direction"`
}

type MovieData struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Year       string   `json:"year,omitempty"`
	Rating     float64  `json:"rating"`
	Popularity float64  `json:"popularity"`
	Genres     []string `json:"genres"`
}

type GenreRatingData struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

func NewViewExport(view pipeline.View, prefs domain.Preferences, locale domain.Locale, now time.Time) *ViewExport {
	rows := view.Rows()
	movies := make([]*MovieData, 0, len(rows))
	for i, row := range rows {
		movies = append(movies, &MovieData{
			ID:         row.ID,
			Title:      row.Title,
			Year:       row.Year,
			Rating:     row.Rating,
			Popularity: view.Results[i].Popularity,
			Genres:     row.Genres,
		})
	}

	genres := make([]*GenreRatingData, 0, len(view.Aggregate))
	for _, g := range view.Aggregate {
		genres = append(genres, &GenreRatingData{
			ID:      g.GenreID,
			Name:    g.Name,
			Average: g.Average,
			Count:   g.Count,
		})
	}

	return &ViewExport{
		Version:     exportVersion,
		Locale:      locale.String(),
		GeneratedAt: now.UTC(),
		Filters: FilterData{
			Genre:     prefs.Genre.String(),
			Query:     prefs.Query,
			SortKey:   string(prefs.SortKey),
			Direction: string(prefs.Direction),
		},
		Movies: movies,
		Genres: genres,
	}
}
