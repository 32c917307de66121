package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

const (
	// HasherNodeID is the unique identifier for the stage hasher Graft node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// CopierNodeID is the unique identifier for the tree copier Graft node.
	CopierNodeID graft.ID = "adapter.fs.copier"
	// PreparerNodeID is the unique identifier for the dir preparer Graft node.
	PreparerNodeID graft.ID = "adapter.fs.preparer"
)

func init() {
	graft.Register(graft.Node[ports.StageHasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.StageHasher, error) {
			return NewHasher(NewWalker()), nil
		},
	})

	graft.Register(graft.Node[*Copier]{
		ID:        CopierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Copier, error) {
			return NewCopier(NewWalker()), nil
		},
	})

	graft.Register(graft.Node[ports.DirPreparer]{
		ID:        PreparerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DirPreparer, error) {
			return NewPreparer(), nil
		},
	})
}
