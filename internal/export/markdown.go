package export

import (
	"fmt"
	"io"
	"strings"
)

func WriteMarkdown(w io.Writer, export *ViewExport) error {
	var b strings.Builder

	b.WriteString("# Popular Movies\n\n")
	fmt.Fprintf(&b, "- Locale: %s\n", export.Locale)
	fmt.Fprintf(&b, "- Genre: %s\n", export.Filters.Genre)
	if export.Filters.Query != "" {
		fmt.Fprintf(&b, "- Search: %s\n", export.Filters.Query)
	}
	fmt.Fprintf(&b, "- Sort: %s %s\n\n", export.Filters.SortKey, export.Filters.Direction)

	b.WriteString("| Title | Year | Rating | Genres |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, m := range export.Movies {
		fmt.Fprintf(&b, "| %s | %s | %.1f | %s |\n",
			escapeCell(m.Title), m.Year, m.Rating, escapeCell(strings.Join(m.Genres, ", ")))
	}

	if len(export.Genres) > 0 {
		b.WriteString("\n## Average rating by genre\n\n")
		b.WriteString("| Genre | Average | Movies |\n")
		b.WriteString("|---|---|---|\n")
		for _, g := range export.Genres {
			fmt.Fprintf(&b, "| %s | %.2f | %d |\n", escapeCell(g.Name), g.Average, g.Count)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write markdown: %w", err)
	}
	return nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// Write dispatches on format.
func Write(w io.Writer, format ExportFormat, export *ViewExport) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, export)
	case FormatJSON:
		return WriteJSON(w, export)
	case FormatMarkdown:
		return WriteMarkdown(w, export)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
