package ports

import "context"

// Extractor unpacks archives.
//
//go:generate mockgen -source=extractor.go -destination=mocks/mock_extractor.go -package=mocks
type Extractor interface {
	// Extract unpacks the archive at archivePath into dest and returns the
	// created files in archive order.
	Extract(ctx context.Context, archivePath, dest string) ([]string, error)
}
