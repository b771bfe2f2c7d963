package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"moviedash/internal/domain"
)

var localeCmd = &cobra.Command{
	Use:   "locale",
	Short: "Manage the display language",
	Long: `Manage the language used for movie titles, genre names and labels.

Supported languages:
  - en (en-US)
  - zh (zh-CN)

Examples:
  moviedash locale show
  moviedash locale set zh
  moviedash locale toggle`,
}

var localeSetCmd = &cobra.Command{
	Use:   "set [en|zh]",
	Short: "Set the display language",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		locale, err := domain.ParseLocale(args[0])
		if err != nil {
			return fmt.Errorf("%w (use en or zh)", err)
		}
		return runLocaleSet(cmd.Context(), cmd.OutOrStdout(), app, locale)
	},
}

var localeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between English and Chinese",
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := app.locale(cmd.Context(), "")
		if err != nil {
			return err
		}
		return runLocaleSet(cmd.Context(), cmd.OutOrStdout(), app, current.Toggle())
	},
}

var localeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current display language",
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := app.locale(cmd.Context(), "")
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Current language: %s\n", current)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(localeCmd)
	localeCmd.AddCommand(localeSetCmd)
	localeCmd.AddCommand(localeToggleCmd)
	localeCmd.AddCommand(localeShowCmd)
}

func runLocaleSet(ctx context.Context, out io.Writer, a *appContext, locale domain.Locale) error {
	if err := a.settings.Set(ctx, domain.SettingLocale, locale.String()); err != nil {
		return fmt.Errorf("failed to update locale: %w", err)
	}

	fmt.Fprintln(out, a.styles(ctx).Success.Render(fmt.Sprintf("✓ Language set to '%s'", locale)))
	return nil
}
