package keytool

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildserver/internal/adapters/shell"
	"go.trai.ch/buildserver/internal/core/ports"
)

// NodeID is the unique identifier for the keystore generator Graft node.
const NodeID graft.ID = "adapter.keytool"

func init() {
	graft.Register(graft.Node[ports.KeystoreGenerator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.KeystoreGenerator, error) {
			runner, err := graft.Dep[ports.ToolRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewGenerator(runner), nil
		},
	})
}
