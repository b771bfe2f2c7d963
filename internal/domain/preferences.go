package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type SortKey string

const (
	SortByTitle  SortKey = "title"
	SortByYear   SortKey = "year"
	SortByRating SortKey = "rating"
)

type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortByTitle, SortByYear, SortByRating:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
	}
}

func ParseSortDirection(s string) (SortDirection, error) {
	switch d := SortDirection(strings.ToLower(strings.TrimSpace(s))); d {
	case SortAscending, SortDescending:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSortDirection, s)
	}
}

func (d SortDirection) Flip() SortDirection {
	if d == SortAscending {
		return SortDescending
	}
	return SortAscending
}

// GenreFilter is either "all" or a single genre id. The zero value is "all".
type GenreFilter struct {
	id  int64
	set bool
}

var AllGenres = GenreFilter{}

func GenreFilterFor(id int64) GenreFilter {
	return GenreFilter{id: id, set: true}
}

func (f GenreFilter) IsAll() bool {
	return !f.set
}

// returns the selected genre id; ok is false for "all"
func (f GenreFilter) GenreID() (int64, bool) {
	return f.id, f.set
}

func (f GenreFilter) String() string {
	if !f.set {
		return "all"
	}
	return strconv.FormatInt(f.id, 10)
}

// accepts "all", "" or a numeric genre id
func ParseGenreFilter(s string) (GenreFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return AllGenres, nil
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return AllGenres, fmt.Errorf("%w: %q", ErrInvalidGenreFilter, s)
	}
	return GenreFilterFor(id), nil
}

// Preferences is the user-controlled selection that drives the derived view.
// Values are immutable: every With* method returns an updated copy.
type Preferences struct {
	Genre     GenreFilter
	Query     string
	SortKey   SortKey
	Direction SortDirection
}

func DefaultPreferences() Preferences {
	return Preferences{
		Genre:     AllGenres,
		Query:     "",
		SortKey:   SortByTitle,
		Direction: SortAscending,
	}
}

func (p Preferences) WithGenre(f GenreFilter) Preferences {
	p.Genre = f
	return p
}

func (p Preferences) WithQuery(q string) Preferences {
	p.Query = q
	return p
}

// selecting the active key flips the direction, a new key starts ascending
func (p Preferences) WithSort(key SortKey) Preferences {
	if p.SortKey == key {
		p.Direction = p.Direction.Flip()
		return p
	}
	p.SortKey = key
	p.Direction = SortAscending
	return p
}

func (p Preferences) WithDirection(d SortDirection) Preferences {
	p.Direction = d
	return p
}

// clears genre and query, keeps the sort selection
func (p Preferences) ClearFilters() Preferences {
	p.Genre = AllGenres
	p.Query = ""
	return p
}

func (p Preferences) HasActiveFilters() bool {
	return !p.Genre.IsAll() || strings.TrimSpace(p.Query) != ""
}
