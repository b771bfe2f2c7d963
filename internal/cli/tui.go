package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"moviedash/internal/tui"
)

var tuiFlags viewFlags

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard",
	Long: `Launch the interactive movie dashboard.

The dashboard provides:
  - Table, card and chart views of the popular movies
  - Live title search, genre filter and sorting
  - Light/dark theme and English/Chinese toggles, remembered between runs

Keyboard shortcuts:
  /       Search titles (esc cancels, enter keeps)
  g       Pick a genre
  F       Clear filters
  t/y/r   Sort by title/year/rating (again to reverse)
  tab     Cycle table, cards and charts
  T       Toggle theme
  L       Toggle language
  R       Refresh from TMDB
  ?       Toggle help
  q       Quit

Examples:
  moviedash tui
  moviedash tui --sort rating --desc
  moviedash tui --genre 18 --locale zh`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	addViewFlags(tuiCmd, &tuiFlags)
	tuiCmd.Flags().Lookup("genre").Usage = "Start filtered to this genre ID"
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if err := checkAndRunSetup(ctx); err != nil {
		return err
	}

	locale, err := app.locale(ctx, tuiFlags.locale)
	if err != nil {
		return err
	}

	// genre names are unknown until the first load, so only ids work here
	prefs, err := tuiFlags.preferences(nil)
	if err != nil {
		return err
	}

	src, err := app.movieSource()
	if err != nil {
		return err
	}

	model := tui.NewModel(tui.Options{
		Source:      src,
		Settings:    app.settings,
		Locale:      locale,
		ThemeName:   app.themeName(ctx),
		Preferences: prefs,
		Logger:      app.logger,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
