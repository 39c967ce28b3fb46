package catalog

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildserver/internal/core/ports"
)

// NodeID is the unique identifier for the component catalog Graft node.
const NodeID graft.ID = "adapter.catalog"

func init() {
	graft.Register(graft.Node[ports.ComponentCatalog]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ComponentCatalog, error) {
			c, err := New()
			if err != nil {
				return nil, err
			}
			return c, nil
		},
	})
}
