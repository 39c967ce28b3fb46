package workspace

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildserver/internal/adapters/logger"
	"go.trai.ch/buildserver/internal/core/ports"
)

// NodeID is the unique identifier for the workspace manager Graft node.
const NodeID graft.ID = "adapter.workspace"

func init() {
	graft.Register(graft.Node[ports.WorkspaceManager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.WorkspaceManager, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewManager(log), nil
		},
	})
}
