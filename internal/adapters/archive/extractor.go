// Package archive unpacks project archives.
package archive

import (
	"archive/zip"
	"context"
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Extractor = (*Extractor)(nil)

// Extractor unpacks zip archives.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract unpacks every entry of the archive at archivePath into dest and
// returns the absolute paths of the created files in archive order.
// Directory entries create directories and are not listed.
func (e *Extractor) Extract(ctx context.Context, archivePath, dest string) ([]string, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return nil, extractionError(err, "archive", archivePath)
	}
	defer zr.Close() //nolint:errcheck // Read-only archive

	cleanDest, err := filepath.Abs(dest)
	if err != nil {
		return nil, extractionError(err, "dest", dest)
	}
	if err := os.MkdirAll(cleanDest, domain.DirPerm); err != nil {
		return nil, extractionError(err, "dest", cleanDest)
	}

	files := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		if err := ctx.Err(); err != nil {
			return nil, extractionError(err, "archive", archivePath)
		}

		target, err := entryTarget(cleanDest, f.Name)
		if err != nil {
			return nil, extractionError(err, "entry", f.Name)
		}

		mode := f.FileInfo().Mode()
		if mode&os.ModeSymlink != 0 {
			return nil, extractionError(zerr.Wrap(domain.ErrUnsafeArchiveEntry, "symlink"), "entry", f.Name)
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, domain.DirPerm); err != nil {
				return nil, extractionError(err, "entry", f.Name)
			}
			continue
		}

		if err := writeEntry(f, target); err != nil {
			return nil, extractionError(err, "entry", f.Name)
		}
		files = append(files, target)
	}

	return files, nil
}

func writeEntry(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close() //nolint:errcheck // Read-only entry

	out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.FilePerm) //nolint:gosec // Target is confined to dest
	if err != nil {
		return err
	}

	//nolint:gosec // Archive size is bounded by the caller's upload limit
	if _, err := io.Copy(out, rc); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// entryTarget resolves name under dest, rejecting absolute and escaping paths.
func entryTarget(dest, name string) (string, error) {
	raw := strings.TrimSpace(strings.ReplaceAll(name, "\\", "/"))
	if raw == "" {
		return "", zerr.Wrap(domain.ErrUnsafeArchiveEntry, "empty entry name")
	}
	if strings.HasPrefix(raw, "/") || hasWindowsDrive(raw) {
		return "", zerr.Wrap(domain.ErrUnsafeArchiveEntry, "absolute path")
	}

	cleaned := path.Clean(raw)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", zerr.Wrap(domain.ErrUnsafeArchiveEntry, "path traversal")
	}

	target := filepath.Join(dest, filepath.FromSlash(cleaned))
	if !strings.HasPrefix(target, dest+string(os.PathSeparator)) {
		return "", zerr.Wrap(domain.ErrUnsafeArchiveEntry, "path traversal")
	}
	return target, nil
}

func hasWindowsDrive(p string) bool {
	return len(p) >= 2 && p[1] == ':'
}

func extractionError(err error, key, value string) error {
	return zerr.With(errors.Join(domain.ErrExtraction, err), key, value)
}
