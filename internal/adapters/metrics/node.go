package metrics

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildserver/internal/core/ports"
)

// NodeID is the unique identifier for the stat reporter Graft node.
const NodeID graft.ID = "adapter.metrics"

func init() {
	graft.Register(graft.Node[ports.StatReporter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StatReporter, error) {
			return NewCollector(), nil
		},
	})
}
