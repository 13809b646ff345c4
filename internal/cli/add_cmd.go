package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/tt/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add [customer [project...]]",
		Short: "Add a customer and its projects",
		Long: `Add a customer and its projects to the numbered lists used by start.

Without arguments, asks for a customer and then projects until an empty line.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			var name string
			var projects []string
			if len(args) > 0 {
				name, projects = args[0], args[1:]
			} else {
				var err error
				if name, projects, err = promptCustomer(app); err != nil {
					return err
				}
			}

			res, err := app.Catalog.AddCustomer(cmd.Context(), name, projects)
			if err != nil {
				return err
			}
			if res.Created {
				fmt.Fprintf(out, "Created customer '%s'.\n", strings.TrimSpace(name))
			}
			for _, p := range res.AddedProjects {
				fmt.Fprintf(out, " + Added project '%s'\n", p)
			}
			for _, p := range res.Existing {
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("   Project '%s' already exists", p)))
			}
			fmt.Fprintln(out, formatter.Success("Saved."))
			return nil
		},
	}
}

func promptCustomer(app *App) (string, []string, error) {
	name, err := app.Prompter.Input("Customer name")
	if err != nil {
		return "", nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, errors.New("customer name cannot be empty")
	}

	var projects []string
	for {
		p, err := app.Prompter.Input(fmt.Sprintf("Add project for '%s' (Enter to finish)", name))
		if err != nil {
			return "", nil, err
		}
		if p = strings.TrimSpace(p); p == "" {
			break
		}
		projects = append(projects, p)
	}
	return name, projects, nil
}
