package benchmark

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newRemoveCmd creates the benchmark remove command
func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove a benchmark from the cbench configuration",
		Long: `Remove a named benchmark from the cbench config file.

Other benchmarks and the defaults section are left untouched.`,
		Aliases: []string{"rm", "delete"},
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, args[0])
		},
	}

	return cmd
}

func runRemove(cmd *cobra.Command, name string) error {
	manager, err := loadManager()
	if err != nil {
		return err
	}

	if !manager.RemoveBenchmark(name) {
		return fmt.Errorf("benchmark %q not found in configuration", name)
	}

	if err := manager.Save(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed benchmark %q\n", name)
	return nil
}
