package ports

import "go.trai.ch/kiln/internal/core/domain"

// LayerStore defines the interface for storing and retrieving layer records.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type LayerStore interface {
	// Get retrieves the layer record for a given stage name.
	// Returns nil, nil if not found.
	Get(stageName string) (*domain.LayerInfo, error)

	// Put stores the layer record.
	Put(info domain.LayerInfo) error
}
