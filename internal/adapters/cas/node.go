package cas

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the layer store Graft node.
const NodeID graft.ID = "adapter.layer_store"

func init() {
	graft.Register(graft.Node[ports.LayerStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LayerStore, error) {
			store, err := NewStore(filepath.Join(".kiln", "layers.json"))
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
