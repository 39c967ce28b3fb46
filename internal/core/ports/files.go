package ports

// FileCopier copies files and directory trees.
//
//go:generate mockgen -source=files.go -destination=mocks/mock_files.go -package=mocks
type FileCopier interface {
	// CopyFile copies src to dst, creating parent directories.
	CopyFile(src, dst string) error
	// CopyTree copies every file under src into dst, preserving relative paths.
	// Files already present in dst are overwritten.
	CopyTree(src, dst string) error
}

// FileFinder locates files by name.
type FileFinder interface {
	// FilesWithSuffix returns the regular files under root whose name ends
	// with suffix, in lexical order. A missing root has no files.
	FilesWithSuffix(root, suffix string) ([]string, error)
}
