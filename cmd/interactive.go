package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fieldops/subnet-ctl/internal/logging"
	"github.com/fieldops/subnet-ctl/internal/tui"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"tui"},
	Short:   "Interactive subnet calculator",
	Long: `Opens a full-screen form that collects the network and the required
host counts, then shows the computed subnets in a table.

Keys:
  Enter  - Advance / calculate
  Esc    - Go back (quit from the first field)
  n      - Start a new calculation
  b      - Toggle binary address rendering
  q      - Quit from the results view`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	defaults, err := loadDefaults()
	if err != nil {
		return err
	}

	logging.Debug("interactive mode started", "table_rows", defaults.TableRows)

	if err := tui.Run(defaults); err != nil {
		return fmt.Errorf("interactive session error: %w", err)
	}
	return nil
}
