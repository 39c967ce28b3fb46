package workspace

import (
	"time"

	"go.trai.ch/buildserver/internal/core/ports"
)

// NewManagerWith creates a Manager with a fixed clock, random source and attempt bound.
func NewManagerWith(logger ports.Logger, now time.Time, random string, attempts int) *Manager {
	return &Manager{
		logger:   logger,
		now:      func() time.Time { return now },
		random:   func() string { return random },
		attempts: attempts,
	}
}

// NewWorkspaceAt wraps an existing root without allocating it.
func NewWorkspaceAt(root string, logger ports.Logger) *Workspace {
	return &Workspace{root: root, logger: logger}
}
