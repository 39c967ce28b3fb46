package ports

import "go.trai.ch/buildserver/internal/core/domain"

// ProjectReader reads project metadata from an extracted project.
//
//go:generate mockgen -source=project.go -destination=mocks/mock_project.go -package=mocks
type ProjectReader interface {
	Read(root string) (*domain.Project, error)
}
