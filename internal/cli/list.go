package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"moviedash/internal/display"
	"moviedash/internal/domain"
	"moviedash/internal/i18n"
	"moviedash/internal/pipeline"
	"moviedash/internal/theme"
)

const (
	listTitleWidth  = 40
	listYearWidth   = 6
	listRatingWidth = 8
	listGenresWidth = 30
)

var listFlags viewFlags

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List popular movies",
	Long: `List the current popular movies with optional filtering and sorting.

Examples:
  moviedash list
  moviedash list --genre Drama --sort rating --desc
  moviedash list --query star
  moviedash list --locale zh --genre 剧情`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd.Context(), cmd.OutOrStdout(), app, listFlags)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	addViewFlags(listCmd, &listFlags)
}

func runList(ctx context.Context, out io.Writer, a *appContext, flags viewFlags) error {
	view, _, locale, err := composeView(ctx, a, flags)
	if err != nil {
		return err
	}

	tr := i18n.New(locale)
	styles := a.styles(ctx)

	if view.Empty() {
		fmt.Fprintln(out)
		fmt.Fprintln(out, styles.Info.Render(tr.T(i18n.KeyEmpty)))
		fmt.Fprintln(out)
		return nil
	}

	renderMovieTable(out, view, tr, styles)
	return nil
}

// loads the snapshot for the flags' locale and runs the pipeline over it
func composeView(ctx context.Context, a *appContext, flags viewFlags) (pipeline.View, domain.Preferences, domain.Locale, error) {
	locale, err := a.locale(ctx, flags.locale)
	if err != nil {
		return pipeline.View{}, domain.Preferences{}, "", err
	}

	snap, err := a.loadSnapshot(ctx, locale)
	if err != nil {
		return pipeline.View{}, domain.Preferences{}, "", err
	}

	prefs, err := flags.preferences(snap.Genres)
	if err != nil {
		return pipeline.View{}, domain.Preferences{}, "", err
	}

	ds := pipeline.NewDataset(snap.Movies, snap.Genres)
	return pipeline.Compose(ds, prefs, locale), prefs, locale, nil
}

func renderMovieTable(out io.Writer, view pipeline.View, tr *i18n.Translator, styles *theme.Styles) {
	fmt.Fprintln(out)

	headers := []string{
		styles.Header.Render(display.PadRight(tr.T(i18n.KeyColumnTitle), listTitleWidth)),
		styles.Header.Render(display.PadRight(tr.T(i18n.KeyColumnYear), listYearWidth)),
		styles.Header.Render(display.PadRight(tr.T(i18n.KeyColumnRating), listRatingWidth)),
		styles.Header.Render(display.PadRight(tr.T(i18n.KeyColumnGenres), listGenresWidth)),
	}
	fmt.Fprintln(out, strings.Join(headers, " "))

	separator := strings.Repeat("─", listTitleWidth+listYearWidth+listRatingWidth+listGenresWidth+11)
	fmt.Fprintln(out, styles.Separator.Render(separator))

	for _, row := range view.Rows() {
		printMovieRow(out, row, tr, styles)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, tr.T(i18n.KeyResultCount, len(view.Results), len(view.Sorted)))
	fmt.Fprintln(out)
}

func printMovieRow(out io.Writer, row pipeline.Row, tr *i18n.Translator, styles *theme.Styles) {
	genres := make([]string, len(row.Genres))
	for i, name := range row.Genres {
		if name == domain.UnknownGenre {
			name = tr.T(i18n.KeyUnknownGenre)
		}
		genres[i] = name
	}

	rating := fmt.Sprintf("%s %s", display.GetRatingIcon(display.GetRatingLevel(row.Rating)), display.FormatRating(row.Rating))

	cells := []string{
		styles.Cell.Render(display.PadRight(display.Truncate(row.Title, listTitleWidth), listTitleWidth)),
		styles.Cell.Render(display.PadRight(display.FormatYear(row.Year), listYearWidth)),
		styles.Cell.Render(styles.GetRatingStyle(row.Rating).Render(display.PadRight(rating, listRatingWidth))),
		styles.Cell.Render(display.PadRight(display.Truncate(display.JoinGenres(genres), listGenresWidth), listGenresWidth)),
	}

	fmt.Fprintln(out, strings.Join(cells, " "))
}
