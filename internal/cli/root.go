package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"moviedash/internal/i18n"
	"moviedash/internal/tui"
)

var (
	verbose bool

	// set up by PersistentPreRunE, closed by PersistentPostRun
	app *appContext
)

var rootCmd = &cobra.Command{
	Use:   "moviedash",
	Short: "moviedash - popular movies in your terminal",
	Long: `moviedash shows the current popular movies from TMDB as a searchable,
sortable table with genre filters and rating charts, in English or Chinese.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := newAppContext(verbose)
		if err != nil {
			return err
		}
		app = a
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app != nil {
			app.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkAndRunSetup(cmd.Context()); err != nil {
			return err
		}
		displayWelcome(cmd)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write debug output to the log file")
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func displayWelcome(cmd *cobra.Command) {
	ctx := cmd.Context()
	styles := app.styles(ctx)
	locale, _ := app.locale(ctx, "")
	tr := i18n.New(locale)
	out := cmd.OutOrStdout()

	title := styles.Title.Render(`
		------------------------------------------------------

		              M O V I E D A S H

		------------------------------------------------------
	`)
	subtitle := styles.Subtitle.Render(tr.T(i18n.KeyAppTitle))

	fmt.Fprintln(out)
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, subtitle)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'moviedash tui' to open the dashboard, or 'moviedash --help' for all commands.")
	fmt.Fprintln(out)
}

// runs the theme and language picker when nothing is stored yet
func checkAndRunSetup(ctx context.Context) error {
	if app.hasTheme(ctx) {
		return nil
	}

	fmt.Println()
	fmt.Println("Welcome to moviedash! Let's pick a theme and a language.")
	fmt.Println()

	return runSetup()
}

func runSetup() error {
	p := tea.NewProgram(tui.NewSetupModel(app.settings), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run setup: %w", err)
	}

	setup, ok := final.(tui.SetupModel)
	if !ok {
		return nil
	}
	if err := setup.Err(); err != nil {
		return err
	}

	themeName, locale, confirmed := setup.Result()
	fmt.Println()
	if confirmed {
		fmt.Printf("✓ Theme set to '%s', language set to '%s'\n", themeName, locale)
	} else {
		fmt.Println("Setup cancelled, defaults will be used.")
	}
	fmt.Println()
	return nil
}
