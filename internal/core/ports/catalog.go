package ports

import "go.trai.ch/buildserver/internal/core/domain"

// ComponentCatalog resolves component names and build information.
//
//go:generate mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type ComponentCatalog interface {
	// NameTypes returns the name to type lookup for built-in components
	// merged with the extensions found under assetsDir.
	NameTypes(assetsDir string) (map[string]string, error)
	// Types returns every built-in component type.
	Types() []string
	// BuildInfo returns build information for each of types.
	BuildInfo(assetsDir string, types []string) (map[string]domain.ComponentInfo, error)
}
