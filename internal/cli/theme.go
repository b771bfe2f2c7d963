package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"moviedash/internal/domain"
	"moviedash/internal/fuzzy"
	"moviedash/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage the color theme",
	Long: `Manage the color theme.

Run without arguments to launch the interactive setup that picks both the
theme and the language. Use subcommands for direct theme management.

Examples:
  moviedash theme              # Launch interactive setup
  moviedash theme set dark     # Set theme directly
  moviedash theme toggle       # Switch between light and dark
  moviedash theme list         # List available themes
  moviedash theme show         # Show current theme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetup()
	},
}

var themeSetCmd = &cobra.Command{
	Use:   "set [theme-name]",
	Short: "Set the color theme",
	Long: `Set the color theme.

Available themes:
  - light
  - dark

Examples:
  moviedash theme set dark`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runThemeSet(cmd.Context(), cmd.OutOrStdout(), app, args[0])
	},
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between light and dark",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runThemeSet(cmd.Context(), cmd.OutOrStdout(), app, theme.Toggle(app.themeName(cmd.Context())))
	},
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runThemeList(cmd.Context(), cmd.OutOrStdout(), app)
	},
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current theme",
	Long:  `Display the currently selected theme and its color palette.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runThemeShow(cmd.Context(), cmd.OutOrStdout(), app)
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeToggleCmd)
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeShowCmd)
}

func runThemeSet(ctx context.Context, out io.Writer, a *appContext, themeName string) error {
	if !theme.ThemeExists(themeName) {
		if hint, found := fuzzy.Suggest(themeName, theme.ListThemes()); found {
			return fmt.Errorf("theme '%s' not found. Did you mean '%s'?", themeName, hint)
		}
		return fmt.Errorf("theme '%s' not found. Run 'moviedash theme list' to see available themes", themeName)
	}

	if err := a.settings.Set(ctx, domain.SettingTheme, themeName); err != nil {
		return fmt.Errorf("failed to update theme: %w", err)
	}

	fmt.Fprintln(out, a.styles(ctx).Success.Render(fmt.Sprintf("✓ Theme set to '%s'", themeName)))
	return nil
}

func runThemeList(ctx context.Context, out io.Writer, a *appContext) error {
	current := a.themeName(ctx)
	styles := a.styles(ctx)

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Header.Render(" Available Themes "))
	fmt.Fprintln(out)

	for _, name := range theme.ListThemes() {
		prefix := "  "
		if name == current {
			prefix = "▶ "
			name = styles.Success.Render(name + " (current)")
		}
		fmt.Fprintf(out, "%s%s\n", prefix, name)
	}

	fmt.Fprintln(out)
	return nil
}

func runThemeShow(ctx context.Context, out io.Writer, a *appContext) error {
	themeObj := theme.Resolve(a.themeName(ctx))
	styles := theme.NewStyles(themeObj)

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Header.Render(fmt.Sprintf(" Current Theme: %s ", themeObj.Name)))
	fmt.Fprintln(out)

	fmt.Fprintln(out, styles.Info.Render("Color Palette:"))
	fmt.Fprintln(out)

	// fixed order so the output is stable
	colors := []struct {
		name  string
		color string
	}{
		{"Primary", themeObj.Primary},
		{"Text", themeObj.TextPrimary},
		{"Rating high", themeObj.RatingHigh},
		{"Rating mid", themeObj.RatingMid},
		{"Rating low", themeObj.RatingLow},
		{"Chart bar", themeObj.ChartBar},
		{"Chart point", themeObj.ChartPoint},
		{"Border", themeObj.BorderColor},
	}

	for _, c := range colors {
		sample := lipgloss.NewStyle().
			Background(lipgloss.Color(c.color)).
			Foreground(lipgloss.Color(c.color)).
			Render("  ████  ")
		fmt.Fprintf(out, "  %-13s %s %s\n", c.name+":", sample, c.color)
	}

	fmt.Fprintln(out)
	return nil
}
