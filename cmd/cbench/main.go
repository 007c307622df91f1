package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aryankumar/cbench/internal/cli"
	"github.com/aryankumar/cbench/internal/util"
)

func main() {
	// Setup signal handling for graceful shutdown
	ctx := util.SetupSignalHandler()

	// Execute the CLI
	if err := cli.Execute(ctx); err != nil {
		slog.Debug("command failed", "error", err)
		fmt.Fprintln(os.Stderr, "Error:", util.FriendlyError(err))
		if util.IsCancelled(err) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}
