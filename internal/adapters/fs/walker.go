// Package fs provides file system adapters for walking, hashing and copying files.
package fs

import (
	"errors"
	"io/fs"
	"iter"
	"path/filepath"
	"strings"

	"go.trai.ch/buildserver/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileFinder = (*Walker)(nil)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file under root in lexical order.
// A missing root yields nothing. Any other walk error is yielded once and
// ends the walk.
func (w *Walker) WalkFiles(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == root && errors.Is(err, fs.ErrNotExist) {
					return nil
				}
				yield("", zerr.With(zerr.Wrap(err, "failed to walk directory"), "path", path))
				return filepath.SkipAll
			}
			if d.IsDir() || !d.Type().IsRegular() {
				return nil
			}
			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// FilesWithSuffix collects the files under root whose name ends with suffix.
func (w *Walker) FilesWithSuffix(root, suffix string) ([]string, error) {
	var files []string
	for path, err := range w.WalkFiles(root) {
		if err != nil {
			return nil, err
		}
		if strings.HasSuffix(path, suffix) {
			files = append(files, path)
		}
	}
	return files, nil
}
