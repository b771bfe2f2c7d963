// Package pipeline derives everything the dashboard renders from the fetched
// movie and genre collections and the current preferences. Every function is
// pure: inputs are never modified and outputs are rebuilt on each call.
package pipeline

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"

	"moviedash/internal/domain"
)

// returns the input itself for "all", otherwise the matching movies in order
func FilterByGenre(movies []domain.Movie, filter domain.GenreFilter) []domain.Movie {
	id, ok := filter.GenreID()
	if !ok {
		return movies
	}

	filtered := make([]domain.Movie, 0, len(movies))
	for _, m := range movies {
		if m.HasGenre(id) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// case-insensitive substring match on title, empty query matches everything
func Search(movies []domain.Movie, query string) []domain.Movie {
	if query == "" {
		return movies
	}

	fold := cases.Fold()
	needle := fold.String(query)

	matched := make([]domain.Movie, 0, len(movies))
	for _, m := range movies {
		if strings.Contains(fold.String(m.Title), needle) {
			matched = append(matched, m)
		}
	}
	return matched
}

// Sort returns a sorted copy. Descending is the exact reverse of ascending;
// equal keys fall back to movie id so the order is total.
func Sort(movies []domain.Movie, key domain.SortKey, dir domain.SortDirection, locale domain.Locale) []domain.Movie {
	sorted := slices.Clone(movies)
	compare := comparator(key, locale)

	slices.SortStableFunc(sorted, func(a, b domain.Movie) int {
		if c := compare(a, b); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	if dir == domain.SortDescending {
		slices.Reverse(sorted)
	}
	return sorted
}

func comparator(key domain.SortKey, locale domain.Locale) func(a, b domain.Movie) int {
	switch key {
	case domain.SortByYear:
		return func(a, b domain.Movie) int {
			return strings.Compare(a.ReleaseDate, b.ReleaseDate)
		}
	case domain.SortByRating:
		return func(a, b domain.Movie) int {
			return cmp.Compare(a.VoteAverage, b.VoteAverage)
		}
	default:
		collator := collate.New(locale.Tag())
		return func(a, b domain.Movie) int {
			return collator.CompareString(a.Title, b.Title)
		}
	}
}

// GenreRating is the mean vote average of every movie tagged with a genre.
type GenreRating struct {
	GenreID int64
	Name    string
	Average float64
	Count   int
}

// GenreRatings averages over the full movie list. Genres with no movies are
// left out; the remaining entries keep the genre list order.
func GenreRatings(movies []domain.Movie, genres []domain.Genre) []GenreRating {
	ratings := make([]GenreRating, 0, len(genres))
	for _, g := range genres {
		var sum float64
		count := 0
		for _, m := range movies {
			if m.HasGenre(g.ID) {
				sum += m.VoteAverage
				count++
			}
		}
		if count == 0 {
			continue
		}
		ratings = append(ratings, GenreRating{
			GenreID: g.ID,
			Name:    g.Name,
			Average: sum / float64(count),
			Count:   count,
		})
	}
	return ratings
}
