// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/cbuild/internal/core/domain"
)

// Executor defines the interface for running the composed compiler command.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs cmd to completion, streaming its output to stdout and stderr.
	//
	// It returns an error if the process cannot be started or exits with a
	// non-zero status.
	Execute(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) error
}
