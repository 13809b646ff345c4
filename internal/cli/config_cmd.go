package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/tt/internal/cli/formatter"
	"github.com/alexanderramin/tt/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the tt config file",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "init",
			Short: "Write a config file with the default settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := config.WriteDefaults(app.ConfigPath); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("Wrote default config to "+app.ConfigPath))
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if app.Config == nil {
					return fmt.Errorf("no configuration loaded")
				}
				c := app.Config
				rows := [][]string{
					{"config file", app.ConfigPath},
					{"storage.driver", c.Storage.Driver},
					{"storage.path", c.Storage.Path},
				}
				if c.Storage.Driver == config.DriverJSON {
					rows = append(rows, []string{"storage.catalog_path", c.Storage.CatalogPath})
				}
				rows = append(rows,
					[]string{"billing.quantum_minutes", strconv.Itoa(c.Billing.QuantumMinutes)},
					[]string{"logging.level", c.Logging.Level},
					[]string{"logging.format", c.Logging.Format},
				)
				fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"KEY", "VALUE"}, rows))
				return nil
			},
		},
	)

	return cmd
}
