package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fieldops/subnet-ctl/internal/errors"
	"github.com/fieldops/subnet-ctl/internal/logging"
	"github.com/fieldops/subnet-ctl/internal/render"
	"github.com/fieldops/subnet-ctl/internal/subnet"
)

var (
	planBinary bool
	planJSON   bool
)

var planCmd = &cobra.Command{
	Use:   "plan <network> <hosts...>",
	Short: "Partition a network into subnets for the given host counts",
	Long: `Computes one subnet per required host count within the given IPv4
network, each sized to the smallest power-of-two block that provides
at least that many usable hosts. Results are printed in the order the
counts were given, followed by the leftover address range when the
requests do not consume the whole network.`,
	Example: `  subnet-ctl plan 192.168.1.0/24 59 15 7 2 29
  subnet-ctl plan --json 10.0.0.0/16 1000 500 250`,
	Args: cobra.MinimumNArgs(2),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().BoolVar(&planBinary, "binary", false, "Render addresses in dotted binary")
	planCmd.Flags().BoolVar(&planJSON, "json", false, "Print the plan as JSON")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	defaults, err := loadDefaults()
	if err != nil {
		return err
	}
	binary := defaults.Binary
	if cmd.Flags().Changed("binary") {
		binary = planBinary
	}

	network, err := subnet.ParseNetwork(args[0])
	if err != nil {
		return errors.InvalidInput("cannot parse network", err)
	}

	hosts := make([]int, 0, len(args)-1)
	for _, arg := range args[1:] {
		h, err := strconv.Atoi(arg)
		if err != nil {
			return errors.InvalidInput("host counts must be integers", err)
		}
		hosts = append(hosts, h)
	}

	logging.Debug("planning", "network", network.String(), "requirements", len(hosts))

	plan, err := subnet.Allocate(network, hosts)
	if err != nil {
		var oos *subnet.OutOfSpaceError
		if errors.As(err, &oos) {
			// Show what did fit before reporting the failure.
			if len(oos.Placed) > 0 {
				logWarning("Only %d of %d subnets fit into %s:", len(oos.Placed), len(hosts), network)
				partial := &subnet.Plan{Network: network, Subnets: oos.Placed}
				if terr := render.Table(cmd.OutOrStdout(), partial, binary); terr != nil {
					return terr
				}
			}
			return errors.OutOfSpace(err)
		}
		return errors.InvalidInput("invalid requirements", err)
	}

	if planJSON {
		return render.JSON(cmd.OutOrStdout(), plan)
	}

	if err := render.Table(cmd.OutOrStdout(), plan, binary); err != nil {
		return err
	}
	if l := plan.Leftover; l != nil {
		cidrs := make([]string, 0, 4)
		for _, p := range l.Prefixes() {
			cidrs = append(cidrs, p.String())
		}
		logInfo("Leftover %d addresses cover %s", l.Size(), strings.Join(cidrs, ", "))
	}
	return nil
}
