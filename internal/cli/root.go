package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/tt/internal/billing"
	"github.com/alexanderramin/tt/internal/config"
	"github.com/alexanderramin/tt/internal/service"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// Clipboard receives report summaries for pasting elsewhere.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available on this system")
	}
	return clipboard.WriteAll(text)
}

// App holds the services and terminal collaborators used by commands.
type App struct {
	Timer     service.TimerService
	Catalog   service.CatalogService
	Shortcuts service.ShortcutService

	Config     *config.Config
	ConfigPath string

	Prompter  Prompter
	Clipboard Clipboard

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool
	// Now defaults to time.Now.
	Now func() time.Time
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) quantumMinutes() int64 {
	if a.Config == nil {
		return billing.DefaultQuantum / 60
	}
	return a.Config.Quantum() / 60
}

// NewRootCmd creates the top-level "tt" command. Arguments that are not a
// subcommand start a timer, so "tt 1 2" is "tt start 1 2".
//
// Command names match case-insensitively ("tt STOP").
func NewRootCmd(app *App) *cobra.Command {
	cobra.EnableCaseInsensitive = true
	opts := &startOptions{}

	root := &cobra.Command{
		Use:   "tt [customer [project [note...]]]",
		Short: "Personal time tracker with rounded daily reports",
		Long: fmt.Sprintf(`tt tracks one running timer per (customer, project) and reports the day.

Note: every session is rounded up to the next %d minutes when it stops.`, app.quantumMinutes()),
		Example: `  tt start                  interactive menu
  tt start 1 2 "Task"       quick start by customer/project number
  tt start @daily           start from a saved shortcut
  tt note "Discussed goals" add a note to the running timer
  tt stop                   stop the timer
  tt report                 daily breakdown
  tt copy                   copy the breakdown to the clipboard`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && opts.shortcut == "" && !app.interactive() {
				return cmd.Help()
			}
			return runStart(cmd, app, opts, args)
		},
	}
	addStartFlags(root.Flags(), opts)

	root.AddCommand(
		newStartCmd(app),
		newNoteCmd(app),
		newStopCmd(app),
		newReportCmd(app),
		newCopyCmd(app),
		newAddCmd(app),
		newShortcutCmd(app),
		newResetCmd(app),
		newWatchCmd(app),
		newConfigCmd(app),
	)

	return root
}
