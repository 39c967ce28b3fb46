package analyzer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildserver/internal/core/ports"
)

// NodeID is the unique identifier for the descriptor analyzer Graft node.
const NodeID graft.ID = "adapter.analyzer"

func init() {
	graft.Register(graft.Node[ports.DescriptorAnalyzer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DescriptorAnalyzer, error) {
			return New(), nil
		},
	})
}
