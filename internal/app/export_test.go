package app

import (
	"context"
	"time"

	"go.trai.ch/buildserver/internal/adapters/telemetry"
	"go.trai.ch/buildserver/internal/core/ports"
)

// NewForTest creates an App with a fixed clock and build id and a no-op tracer.
func NewForTest(deps Deps, now time.Time, id string) *App {
	a := New(deps)
	a.now = func() time.Time { return now }
	a.newID = func() string { return id }
	a.newTracer = func(ports.Logger, string) (ports.Tracer, func(context.Context) error) {
		return telemetry.NewNoOpTracer(), func(context.Context) error { return nil }
	}
	return a
}
