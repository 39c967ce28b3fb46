package ports

import "go.trai.ch/buildserver/internal/core/domain"

// BuildRecordStore persists build records.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildRecordStore interface {
	// Get returns the record for id under dir, or nil if there is none.
	Get(dir, id string) (*domain.BuildRecord, error)
	// Put stores a record under dir.
	Put(dir string, record domain.BuildRecord) error
}
