package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/tt/internal/cli/formatter"
	"github.com/alexanderramin/tt/internal/domain"
	"github.com/alexanderramin/tt/internal/repository"
	"github.com/spf13/cobra"
)

func newShortcutCmd(app *App) *cobra.Command {
	var complete bool

	cmd := &cobra.Command{
		Use:     "shortcut",
		Aliases: []string{"shortcuts"},
		Short:   "Manage shortcuts for recurring tasks",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Shortcuts.List(cmd.Context())
			if err != nil {
				return err
			}
			if complete {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatShortcutCompletions(list))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatShortcutList(list))
			return nil
		},
	}

	cmd.Flags().BoolVar(&complete, "complete", false, "Print @name lines for shell completion")
	_ = cmd.Flags().MarkHidden("complete")

	cmd.AddCommand(
		newShortcutListCmd(app),
		newShortcutAddCmd(app),
		newShortcutDeleteCmd(app),
		newShortcutPickCmd(app),
	)

	return cmd
}

func newShortcutListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved shortcuts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Shortcuts.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatShortcutList(list))
			return nil
		},
	}
}

func newShortcutAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "add <name> <customer> <project> [note...]",
		Short:   "Create or overwrite a shortcut",
		Example: `  tt shortcut add daily "Acme Corp" "Management" "Daily standup"`,
		Args:    cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			name := domain.NormalizeShortcutName(args[0])

			if _, err := app.Shortcuts.Get(ctx, name); err == nil {
				fmt.Fprintln(out, formatter.Warning(fmt.Sprintf("Shortcut '@%s' already exists. Overwriting...", name)))
			} else if !errors.Is(err, repository.ErrNotFound) {
				return err
			}

			sc := domain.Shortcut{
				Name:     name,
				Customer: args[1],
				Project:  args[2],
				Note:     strings.Join(args[3:], " "),
			}
			if _, err := app.Shortcuts.Save(ctx, sc); err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.Success(fmt.Sprintf("Shortcut '@%s' created.", name)))
			fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("   Use with: tt start @%s", name)))
			return nil
		},
	}
}

func newShortcutDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm", "remove"},
		Short:   "Remove a shortcut",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := domain.NormalizeShortcutName(args[0])
			if err := app.Shortcuts.Delete(cmd.Context(), name); err != nil {
				return shortcutNotFound(name, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Shortcut '@%s' deleted.", name)))
			return nil
		},
	}
}

func newShortcutPickCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Print shortcuts as tab-separated lines for fzf",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Shortcuts.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatShortcutPick(list))
			return nil
		},
	}
}

// shortcutNotFound rewrites a lookup miss into a hint; other errors pass
// through.
func shortcutNotFound(name string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("shortcut '@%s' not found (run 'tt shortcut list' to see available shortcuts): %w",
			domain.NormalizeShortcutName(name), err)
	}
	return err
}
