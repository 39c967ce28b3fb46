// Package project reads project metadata from an extracted project.
package project

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/go-ini/ini"
	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectReader = (*Reader)(nil)

// Property keys of project.properties.
const (
	keyName             = "name"
	keyMain             = "main"
	keyAssets           = "assets"
	keySource           = "source"
	keyAppName          = "aname"
	keyIcon             = "icon"
	keyVersionCode      = "versioncode"
	keyVersionName      = "versionname"
	keyTheme            = "theme"
	keyColorPrimary     = "color.primary"
	keyColorPrimaryDark = "color.primary.dark"
	keyColorAccent      = "color.accent"
	keyDefaultFileScope = "defaultfilescope"
)

// Reader parses project.properties.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses <root>/youngandroidproject/project.properties.
// The assets and source directories are resolved relative to the
// youngandroidproject directory.
func (r *Reader) Read(root string) (*domain.Project, error) {
	path := domain.PropertiesPath(root)

	if _, err := os.Stat(path); err != nil {
		return nil, metadataError(err, path)
	}

	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment: true,
		KeyValueDelimiters:  "=",
	}, path)
	if err != nil {
		return nil, metadataError(err, path)
	}

	props := cfg.Section(ini.DefaultSection).KeysHash()

	name := props[keyName]
	if name == "" {
		return nil, metadataError(zerr.New("missing project name"), path)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, metadataError(err, path)
	}
	projectDir := filepath.Join(absRoot, domain.ProjectDirName)

	return &domain.Project{
		Name:             name,
		Root:             absRoot,
		AssetsDir:        resolveDir(projectDir, props[keyAssets], "../assets"),
		SourceDir:        resolveDir(projectDir, props[keySource], "../src"),
		MainClass:        props[keyMain],
		AppName:          props[keyAppName],
		Icon:             props[keyIcon],
		VersionCode:      props[keyVersionCode],
		VersionName:      props[keyVersionName],
		Theme:            props[keyTheme],
		DefaultFileScope: props[keyDefaultFileScope],
		Colors: domain.Colors{
			Primary:     props[keyColorPrimary],
			PrimaryDark: props[keyColorPrimaryDark],
			Accent:      props[keyColorAccent],
		},
		Properties: props,
	}, nil
}

func resolveDir(base, value, fallback string) string {
	if value == "" {
		value = fallback
	}
	if filepath.IsAbs(value) {
		return filepath.Clean(value)
	}
	return filepath.Join(base, filepath.FromSlash(value))
}

func metadataError(err error, path string) error {
	return zerr.With(errors.Join(domain.ErrMissingProjectMetadata, err), "path", path)
}
