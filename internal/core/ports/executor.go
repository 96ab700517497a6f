// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/mfraile/PyOxidizer/internal/core/domain"
)

// Executor defines the interface for running external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Run executes the command and returns its combined stdout and stderr.
	//
	// The command inherits the process environment with cmd.Env applied on top.
	// On a non-zero exit the returned error carries the exit code and the output.
	Run(ctx context.Context, cmd domain.Command) ([]byte, error)
}
