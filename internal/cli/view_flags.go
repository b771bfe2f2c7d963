package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"moviedash/internal/domain"
	"moviedash/internal/fuzzy"
)

// viewFlags are the preference flags shared by list and export
type viewFlags struct {
	genre  string
	query  string
	sort   string
	desc   bool
	locale string
}

func addViewFlags(cmd *cobra.Command, f *viewFlags) {
	cmd.Flags().StringVarP(&f.genre, "genre", "g", "all", "Filter by genre name or ID")
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "Only titles containing this text")
	cmd.Flags().StringVarP(&f.sort, "sort", "s", "title", "Sort by title, year or rating")
	cmd.Flags().BoolVar(&f.desc, "desc", false, "Sort descending")
	cmd.Flags().StringVarP(&f.locale, "locale", "l", "", "Language: en or zh (defaults to the stored choice)")
}

// builds preferences from the flags, resolving the genre against the loaded list
func (f viewFlags) preferences(genres []domain.Genre) (domain.Preferences, error) {
	key, err := domain.ParseSortKey(f.sort)
	if err != nil {
		return domain.Preferences{}, err
	}

	filter, err := resolveGenreFilter(genres, f.genre)
	if err != nil {
		return domain.Preferences{}, err
	}

	dir := domain.SortAscending
	if f.desc {
		dir = domain.SortDescending
	}

	return domain.DefaultPreferences().
		WithGenre(filter).
		WithQuery(f.query).
		WithSort(key).
		WithDirection(dir), nil
}

// accepts "all", a numeric genre id, or a genre name in the active locale
func resolveGenreFilter(genres []domain.Genre, value string) (domain.GenreFilter, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "all") {
		return domain.AllGenres, nil
	}

	if _, err := strconv.ParseInt(value, 10, 64); err == nil {
		return domain.ParseGenreFilter(value)
	}

	g, ok := domain.FindGenreByName(genres, value)
	if !ok {
		names := make([]string, len(genres))
		for i, genre := range genres {
			names[i] = genre.Name
		}
		if hint, found := fuzzy.Suggest(value, names); found {
			return domain.AllGenres, fmt.Errorf("genre '%s' not found. Did you mean '%s'?", value, hint)
		}
		return domain.AllGenres, fmt.Errorf("genre '%s' not found. Run 'moviedash genres' to see available genres", value)
	}
	return domain.GenreFilterFor(g.ID), nil
}
