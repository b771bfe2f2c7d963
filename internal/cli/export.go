package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"moviedash/internal/export"
)

var (
	exportFlags  viewFlags
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current movie view",
	Long: `Export the filtered and sorted movie list, plus the per-genre rating
averages, to a file or stdout.

Supported formats:
  - csv: Comma-separated values for spreadsheets (movies only)
  - json: Structured JSON with filters, movies and genre averages
  - markdown: Human-readable markdown tables

Examples:
  moviedash export --format csv --output movies.csv
  moviedash export --format json --genre Drama --sort rating --desc
  moviedash export --format markdown --locale zh > movies.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), app, exportFlags, exportFormat, exportOutput)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addViewFlags(exportCmd, &exportFlags)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format (csv, json, markdown)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

func runExport(ctx context.Context, stdout, stderr io.Writer, a *appContext, flags viewFlags, formatFlag, outputPath string) error {
	format, err := export.ParseFormat(formatFlag)
	if err != nil {
		return fmt.Errorf("%w (use csv, json, or markdown)", err)
	}

	view, prefs, locale, err := composeView(ctx, a, flags)
	if err != nil {
		return err
	}

	data := export.NewViewExport(view, prefs, locale, time.Now())
	styles := a.styles(ctx)

	output := stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	if err := export.Write(output, format, data); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if outputPath != "" {
		fmt.Fprintln(stderr, styles.Success.Render(fmt.Sprintf("✓ Exported %d movie(s) to %s", len(data.Movies), outputPath)))
	}
	return nil
}
