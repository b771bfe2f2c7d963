package pipeline

import "moviedash/internal/domain"

// Dataset is one fetched pair of collections plus the genre index built from
// them. Build it once per fetch and reuse it across preference changes.
type Dataset struct {
	Movies []domain.Movie
	Genres []domain.Genre
	Index  domain.GenreIndex
}

func NewDataset(movies []domain.Movie, genres []domain.Genre) Dataset {
	return Dataset{
		Movies: movies,
		Genres: genres,
		Index:  domain.NewGenreIndex(genres),
	}
}

// View holds every derived collection for one set of inputs.
type View struct {
	Filtered  []domain.Movie
	Sorted    []domain.Movie
	Results   []domain.Movie
	Aggregate []GenreRating

	index domain.GenreIndex
}

// Row is one table row or card.
type Row struct {
	ID     int64
	Title  string
	Year   string
	Rating float64
	Genres []string
}

// Point is one dot on the rating vs popularity scatter chart.
type Point struct {
	Rating     float64
	Popularity float64
	Title      string
}

// Compose runs filter -> sort -> search for the list views and computes the
// genre aggregate over the unfiltered movies.
func Compose(ds Dataset, prefs domain.Preferences, locale domain.Locale) View {
	filtered := FilterByGenre(ds.Movies, prefs.Genre)
	sorted := Sort(filtered, prefs.SortKey, prefs.Direction, locale)
	results := Search(sorted, prefs.Query)

	return View{
		Filtered:  filtered,
		Sorted:    sorted,
		Results:   results,
		Aggregate: GenreRatings(ds.Movies, ds.Genres),
		index:     ds.Index,
	}
}

func (v View) Empty() bool {
	return len(v.Results) == 0
}

func (v View) Rows() []Row {
	rows := make([]Row, 0, len(v.Results))
	for _, m := range v.Results {
		rows = append(rows, Row{
			ID:     m.ID,
			Title:  m.Title,
			Year:   m.Year(),
			Rating: m.VoteAverage,
			Genres: v.index.Names(m.GenreIDs),
		})
	}
	return rows
}

func (v View) Points() []Point {
	points := make([]Point, 0, len(v.Results))
	for _, m := range v.Results {
		points = append(points, Point{
			Rating:     m.VoteAverage,
			Popularity: m.Popularity,
			Title:      m.Title,
		})
	}
	return points
}
