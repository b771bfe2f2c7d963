package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

func WriteCSV(w io.Writer, export *ViewExport) error {
	writer := csv.NewWriter(w)

	header := []string{"ID", "Title", "Year", "Rating", "Popularity", "Genres"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, movie := range export.Movies {
		row := []string{
			strconv.FormatInt(movie.ID, 10),
			movie.Title,
			movie.Year,
			strconv.FormatFloat(movie.Rating, 'f', 1, 64),
			strconv.FormatFloat(movie.Popularity, 'f', 3, 64),
			strings.Join(movie.Genres, ";"),
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
