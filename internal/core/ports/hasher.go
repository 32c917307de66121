package ports

import "go.trai.ch/kiln/internal/core/domain"

// StageHasher defines the interface for computing stage cache keys.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type StageHasher interface {
	// ComputeStageKey computes the cache key for a stage from its definition
	// and the content of its input files under the given project root.
	// Optional inputs contribute their presence as well as their content, so
	// a lockfile appearing or disappearing invalidates the layer.
	ComputeStageKey(stage *domain.Stage, root string) (string, error)
}
