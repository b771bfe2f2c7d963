package domain

import (
	"errors"
	"slices"
	"strings"
)

var (
	ErrInvalidSortKey       = errors.New("invalid sort key: must be title, year, or rating")
	ErrInvalidSortDirection = errors.New("invalid sort direction: must be asc or desc")
	ErrInvalidGenreFilter   = errors.New("invalid genre filter: must be all or a genre id")
	ErrInvalidLocale        = errors.New("invalid locale: must be en-US or zh-CN")
)

// movie record as returned by the popular movies endpoint
type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	Popularity  float64 `json:"popularity"`
	GenreIDs    []int64 `json:"genre_ids"`
}

// first four characters of the release date, empty when unknown
func (m Movie) Year() string {
	if len(m.ReleaseDate) < 4 {
		return m.ReleaseDate
	}
	return m.ReleaseDate[:4]
}

func (m Movie) HasGenre(id int64) bool {
	return slices.Contains(m.GenreIDs, id)
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UnknownGenre is what a genre id that is missing from the index resolves to.
const UnknownGenre = "Unknown"

// GenreIndex maps genre ids to display names. It is built once per genre
// collection and never mutated afterwards.
type GenreIndex struct {
	names map[int64]string
}

func NewGenreIndex(genres []Genre) GenreIndex {
	names := make(map[int64]string, len(genres))
	for _, g := range genres {
		names[g.ID] = g.Name
	}
	return GenreIndex{names: names}
}

func (gi GenreIndex) Lookup(id int64) (string, bool) {
	name, ok := gi.names[id]
	return name, ok
}

// returns the display name, or UnknownGenre for stale ids
func (gi GenreIndex) Name(id int64) string {
	if name, ok := gi.names[id]; ok {
		return name
	}
	return UnknownGenre
}

func (gi GenreIndex) Names(ids []int64) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, gi.Name(id))
	}
	return names
}

func (gi GenreIndex) Len() int {
	return len(gi.names)
}

// finds a genre by case-insensitive display name
func FindGenreByName(genres []Genre, name string) (Genre, bool) {
	name = strings.TrimSpace(name)
	for _, g := range genres {
		if strings.EqualFold(g.Name, name) {
			return g, true
		}
	}
	return Genre{}, false
}
