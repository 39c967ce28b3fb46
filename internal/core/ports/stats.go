package ports

import (
	"time"

	"go.trai.ch/buildserver/internal/core/domain"
)

// StatReporter records build statistics.
//
//go:generate mockgen -source=stats.go -destination=mocks/mock_stats.go -package=mocks
type StatReporter interface {
	// BuildStarted records the start of a build.
	BuildStarted(format domain.PackageFormat)
	// TaskFinished records one task run. err is nil on success.
	TaskFinished(task string, elapsed time.Duration, err error)
	// BuildFinished records the outcome of a build.
	BuildFinished(result domain.Result, elapsed time.Duration)
	// Flush writes the collected statistics to path. An empty path is a no-op.
	Flush(path string) error
}
