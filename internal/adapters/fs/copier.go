package fs

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileCopier = (*Copier)(nil)

// Copier copies files and directory trees.
type Copier struct {
	walker *Walker
}

// NewCopier creates a new Copier.
func NewCopier(walker *Walker) *Copier {
	return &Copier{walker: walker}
}

// CopyFile copies src to dst, creating parent directories of dst.
func (c *Copier) CopyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileCopyFailed.Error()), "src", src)
	}
	defer in.Close() //nolint:errcheck // Read-only file

	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileCopyFailed.Error()), "dst", dst)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.FilePerm) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileCopyFailed.Error()), "dst", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrFileCopyFailed.Error()), "dst", dst)
	}

	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileCopyFailed.Error()), "dst", dst)
	}
	return nil
}

// CopyTree copies every regular file under src into dst. A missing src copies nothing.
func (c *Copier) CopyTree(src, dst string) error {
	for path, err := range c.walker.WalkFiles(src) {
		if err != nil {
			return zerr.With(errors.Join(domain.ErrFileCopyFailed, err), "src", src)
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrFileCopyFailed.Error()), "src", path)
		}
		if err := c.CopyFile(path, filepath.Join(dst, rel)); err != nil {
			return err
		}
	}
	return nil
}
