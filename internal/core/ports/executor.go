// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/kiln/internal/core/domain"
)

// Executor defines the interface for executing stage steps.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs a single step in the given working directory.
	//
	// The env parameter contains environment variables in "KEY=VALUE" format,
	// merged over the process environment. Stdout and stderr of the command
	// are streamed to the given writers (typically a telemetry vertex).
	//
	// It returns an error if the step exits non-zero or cannot start.
	Execute(ctx context.Context, step *domain.Step, workdir string, env []string, stdout, stderr io.Writer) error
}
