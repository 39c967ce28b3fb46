package ports

import (
	"context"
	"io"

	"go.trai.ch/buildserver/internal/core/domain"
)

// ToolRunner runs external tools.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type ToolRunner interface {
	// Run executes cmd, streaming its output to stdout and stderr, and
	// verifies that every declared output exists afterwards.
	Run(ctx context.Context, cmd domain.ToolCommand, stdout, stderr io.Writer) error
}
