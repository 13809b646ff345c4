package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tt/internal/cli/formatter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type startOptions struct {
	shortcut string
}

func addStartFlags(flags *pflag.FlagSet, opts *startOptions) {
	flags.StringVarP(&opts.shortcut, "shortcut", "s", "", "Start from a saved shortcut (same as @name)")
}

func newStartCmd(app *App) *cobra.Command {
	opts := &startOptions{}

	cmd := &cobra.Command{
		Use:   "start [customer [project [note...]]]",
		Short: "Start a timer, stopping any running one",
		Long: `Start a timer for a customer and project.

Customer and project may be given by their list number or by name; missing
values are prompted for. Words after the project form the first note.
"@name [extra...]" or "-s name [extra...]" starts from a shortcut, appending
any extra words to its note.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStart(cmd, app, opts, args)
		},
	}
	addStartFlags(cmd.Flags(), opts)

	return cmd
}

func runStart(cmd *cobra.Command, app *App, opts *startOptions, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	var (
		target startTarget
		err    error
	)
	switch {
	case opts.shortcut != "":
		target, err = resolveShortcut(ctx, app, opts.shortcut, args)
	case len(args) > 0 && strings.HasPrefix(args[0], "@"):
		target, err = resolveShortcut(ctx, app, args[0], args[1:])
	default:
		target, err = resolveStartArgs(ctx, app, args)
	}
	if err != nil {
		return err
	}

	if target.Shortcut != "" {
		fmt.Fprintf(out, "Using shortcut '@%s'\n", target.Shortcut)
	}

	res, err := app.Timer.Start(ctx, target.Customer, target.Project, target.Note)
	if err != nil {
		return err
	}
	if res.Stopped != nil {
		fmt.Fprintln(out, formatter.FormatStopped(res.Stopped))
	}
	fmt.Fprintln(out, formatter.FormatStarted(res.Session, target.Note))
	return nil
}
