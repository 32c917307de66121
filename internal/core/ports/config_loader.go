package ports

import "go.trai.ch/kiln/internal/core/domain"

// BlueprintLoader defines the interface for loading the build configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type BlueprintLoader interface {
	// Load reads the configuration from the given project root and returns
	// the validated blueprint.
	Load(root string) (*domain.Blueprint, error)
}
