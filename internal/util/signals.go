package util

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// SetupSignalHandler creates a context that is cancelled with ErrCancelled as its
// cause on receiving SIGINT or SIGTERM. A second signal will force immediate exit.
//
// Only work units that accept the context (such as external commands started by
// the CLI) observe the cancellation; the benchmark engine itself never aborts.
func SetupSignalHandler() context.Context {
	ctx, cancel := context.WithCancelCause(context.Background())

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		slog.Info("received interrupt, in-flight iterations will finish", "signal", sig.String())
		cancel(ErrCancelled)

		sig = <-sigCh
		slog.Warn("received second interrupt, forcing exit", "signal", sig.String())
		os.Exit(130)
	}()

	return ctx
}
