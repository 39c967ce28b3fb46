package ports

// Hasher computes content hashes of files.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileHash returns the XXHash of a file's content.
	ComputeFileHash(path string) (uint64, error)
	// ComputeDigest returns the sha256 content digest of a file, in "sha256:<hex>" form.
	ComputeDigest(path string) (string, error)
}
