package benchmark

import (
	"fmt"

	"github.com/aryankumar/cbench/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewBenchmarkCmd creates the benchmark management command
func NewBenchmarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "benchmark",
		Aliases: []string{"bench"},
		Short:   "Manage benchmarks in the cbench config file",
		Long: `Manage the named benchmarks stored in the cbench config file.

This command provides subcommands for listing, adding and removing the
benchmarks that "cbench suite" runs.`,
	}

	// Add subcommands
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newAddCmd())
	cmd.AddCommand(newRemoveCmd())

	return cmd
}

// loadManager loads the config file selected by --config or CBENCH_CONFIG
func loadManager() (*config.Manager, error) {
	manager := config.NewManager(viper.GetString("config"))
	if _, err := manager.Load(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return manager, nil
}
