// Package main is the entry point for the condasnap environment snapshot tool.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/condatools/condasnap/cmd/condasnap/commands"
	"github.com/condatools/condasnap/internal/app"
	"github.com/condatools/condasnap/internal/core/domain"
	_ "github.com/condatools/condasnap/internal/wiring"
	"github.com/grindlemire/graft"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	// 2. Interface - CLI
	cli := commands.New(components.App)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		var failures *domain.StrategyFailures
		if errors.As(err, &failures) {
			// Per-strategy errors were already reported as they happened; the
			// exit code carries the mask of failed strategies.
			return failures.ExitCode()
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
