package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the config loader Graft node.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[ports.BlueprintLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BlueprintLoader, error) {
			return NewFileLoader("kiln.yaml"), nil
		},
	})
}
