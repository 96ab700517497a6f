// Package main is the entry point for the pyoxidizer configuration tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/mfraile/PyOxidizer/cmd/pyoxidizer/commands"
	"github.com/mfraile/PyOxidizer/internal/app"
	_ "github.com/mfraile/PyOxidizer/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	if components.Settings.Verbose {
		components.Logger.SetVerbose(true)
	}

	cli := commands.New(components)
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
