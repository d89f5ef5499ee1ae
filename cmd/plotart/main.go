// Command plotart composes pen-plotter drawings and runs them against a
// simulated plotter.
//
// Usage:
//
//	plotart paint    [--config file] [--seed n] [--log-level lvl] [--interactive]
//	plotart frame    [flags]
//	plotart nautilus [flags]
//
// Ctrl+C stops the drawing between two paths and returns the pen home.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "plotart:", err)
		stop()
		os.Exit(1)
	}
}
