package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"moviedash/internal/i18n"
)

var genresLocale string

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List movie genres",
	Long: `List the movie genres with their IDs. Either form works with --genre.

Examples:
  moviedash genres
  moviedash genres --locale zh`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenres(cmd.Context(), cmd.OutOrStdout(), app, genresLocale)
	},
}

func init() {
	rootCmd.AddCommand(genresCmd)
	genresCmd.Flags().StringVarP(&genresLocale, "locale", "l", "", "Language: en or zh (defaults to the stored choice)")
}

func runGenres(ctx context.Context, out io.Writer, a *appContext, localeFlag string) error {
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

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Header.Render(fmt.Sprintf(" %s ", tr.T(i18n.KeyGenrePicker))))
	fmt.Fprintln(out)

	for _, g := range snap.Genres {
		fmt.Fprintf(out, "  %6d  %s\n", g.ID, g.Name)
	}

	fmt.Fprintln(out)
	return nil
}
