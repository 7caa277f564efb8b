package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldops/subnet-ctl/internal/config"
	"github.com/fieldops/subnet-ctl/internal/errors"
	"github.com/fieldops/subnet-ctl/internal/logging"
)

var (
	verbose    bool
	jsonLogs   bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "subnet-ctl",
	Short: "IPv4 subnetting calculator",
	Long: `subnet-ctl partitions an IPv4 network into subnets, one per
required host count, each sized to the smallest power-of-two block
that covers the request.

Blocks are placed largest-first so that power-of-two alignment never
strands a larger block, and whatever the requests leave unused is
reported as a leftover range.`,
	Version:      "2.1.0",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonLogs, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logWarning = logging.UserWarning
)

// loadDefaults reads the front-end defaults, honoring --config.
func loadDefaults() (config.Defaults, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			// No resolvable config dir; run with compiled-in defaults.
			logging.Debug("no user config dir", "err", err)
			return config.Default(), nil
		}
	}

	defaults, err := config.Load(path)
	if err != nil {
		return config.Defaults{}, errors.ConfigError("cannot load config", err)
	}
	logging.Debug("defaults loaded", "path", path, "table_rows", defaults.TableRows)
	return defaults, nil
}
