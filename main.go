// Package main is the entry point for the fmlint CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alguides/fmlint/cmd"
)

func main() {
	// Create a context that is cancelled on SIGINT (Ctrl+C).
	// This enables graceful shutdown for long-running scans.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprint(os.Stderr, cmd.FormatError(err))
	}
	os.Exit(cmd.ExitCodeFromError(err))
}
