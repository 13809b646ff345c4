package cli

import (
	"fmt"

	"github.com/alexanderramin/tt/internal/cli/formatter"
	"github.com/alexanderramin/tt/internal/report"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var copyFlag bool

	cmd := &cobra.Command{
		Use:     "report",
		Aliases: []string{"status"},
		Short:   "Show today's time grouped by customer and project",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, app, copyFlag)
		},
	}

	cmd.Flags().BoolVarP(&copyFlag, "copy", "c", false, "Also copy a one-line-per-project summary to the clipboard")
	return cmd
}

func newCopyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "copy",
		Short: "Show the report and copy its summary to the clipboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, app, true)
		},
	}
}

func runReport(cmd *cobra.Command, app *App, copyToClipboard bool) error {
	rep, err := app.Timer.Report(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, formatter.FormatReport(rep.Summary, rep.Current, rep.GeneratedAt, app.quantumMinutes()))

	if !copyToClipboard {
		return nil
	}
	if app.Clipboard == nil {
		return fmt.Errorf("clipboard is not available")
	}
	if err := app.Clipboard.WriteAll(report.ClipboardText(rep.Summary)); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	fmt.Fprintln(out, "\n"+formatter.Success("Detailed summary copied to clipboard!"))
	return nil
}
