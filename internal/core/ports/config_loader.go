package ports

import "go.trai.ch/buildserver/internal/core/domain"

// ConfigLoader defines the interface for loading server settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads settings from path. An empty path triggers discovery and
	// falls back to defaults when no file is found.
	Load(path string) (*domain.Settings, error)
}
