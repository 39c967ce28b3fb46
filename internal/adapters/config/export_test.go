package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/buildserver/internal/core/ports"
)

// NewLoaderIn creates a Loader that looks for buildserver.yaml in workDir
// and for the XDG config file under configHome.
func NewLoaderIn(logger ports.Logger, workDir, configHome string) *Loader {
	l := NewLoader(logger)
	l.workDir = workDir
	l.searchConfig = func(relPath string) (string, error) {
		path := filepath.Join(configHome, relPath)
		if _, err := os.Stat(path); err != nil {
			return "", err
		}
		return path, nil
	}
	return l
}
