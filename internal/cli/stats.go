package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"moviedash/internal/chart"
	"moviedash/internal/i18n"
	"moviedash/internal/pipeline"
)

const defaultStatsWidth = 80

var (
	statsLocale string
	statsWidth  int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show average rating per genre",
	Long: `Show the average rating of every genre across all popular movies, as a
bar chart followed by a table with the movie count per genre.

Examples:
  moviedash stats
  moviedash stats --width 120 --locale zh`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(cmd.Context(), cmd.OutOrStdout(), app, statsLocale, statsWidth)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVarP(&statsLocale, "locale", "l", "", "Language: en or zh (defaults to the stored choice)")
	statsCmd.Flags().IntVarP(&statsWidth, "width", "w", defaultStatsWidth, "Chart width in columns")
}

func runStats(ctx context.Context, out io.Writer, a *appContext, localeFlag string, width int) error {
	locale, err := a.locale(ctx, localeFlag)
	if err != nil {
		return err
	}

	snap, err := a.loadSnapshot(ctx, locale)
	if err != nil {
		return err
	}

	tr := i18n.New(locale)
	styles := a.styles(ctx)
	ratings := pipeline.GenreRatings(snap.Movies, snap.Genres)

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Header.Render(fmt.Sprintf(" %s ", tr.T(i18n.KeyChartBar))))
	fmt.Fprintln(out)

	if len(ratings) == 0 {
		fmt.Fprintln(out, styles.Info.Render(tr.T(i18n.KeyChartNoData)))
		fmt.Fprintln(out)
		return nil
	}

	fmt.Fprintln(out, chart.BarChart(ratings, width, styles))
	fmt.Fprintln(out)

	headers := []string{
		tr.T(i18n.KeyColumnGenre),
		tr.T(i18n.KeyColumnAverage),
		tr.T(i18n.KeyColumnCount),
	}
	fmt.Fprintln(out, chart.AggregateTable(ratings, headers, styles))
	fmt.Fprintln(out)
	return nil
}
