package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tt/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newNoteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "note <text...>",
		Short: "Add a note to the running timer",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if _, err := app.Timer.Note(cmd.Context(), text); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatNoteAdded(text))
			return nil
		},
	}
}

func newStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "stop",
		Aliases: []string{"pause"},
		Short:   "Stop the running timer",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.Timer.Stop(cmd.Context())
			if err != nil {
				return err
			}
			if entry == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No timer running.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStopped(entry))
			return nil
		},
	}
}

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all of today's time entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !yes {
				fmt.Fprintln(out, formatter.Warning("This will delete all time entries for today."))
				ok, err := app.Prompter.Confirm("Are you sure?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(out, "Cancelled.")
					return nil
				}
			}
			if err := app.Timer.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.Success("Daily data cleared."))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
