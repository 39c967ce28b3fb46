// Package catalog resolves component names to types and types to build information.
package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ComponentCatalog = (*Catalog)(nil)

//go:embed files/simple_components.json files/simple_components_build_info.json
var bundled embed.FS

const (
	simpleComponentsFile = "files/simple_components.json"
	simpleBuildInfoFile  = "files/simple_components_build_info.json"

	componentFile  = "component.json"
	componentsFile = "components.json"
	buildInfosFile = "component_build_infos.json"
	buildInfoFile  = "component_build_info.json"
)

type descriptor struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Catalog holds the built-in component table. It is read-only after New.
type Catalog struct {
	builtins []descriptor
	infos    map[string]domain.ComponentInfo
}

// New loads the bundled component table.
func New() (*Catalog, error) {
	var builtins []descriptor
	if err := readBundled(simpleComponentsFile, &builtins); err != nil {
		return nil, err
	}

	var infos []domain.ComponentInfo
	if err := readBundled(simpleBuildInfoFile, &infos); err != nil {
		return nil, err
	}

	byType := make(map[string]domain.ComponentInfo, len(infos))
	for _, info := range infos {
		byType[info.Type] = info
	}
	for _, d := range builtins {
		info := byType[d.Type]
		info.Name = d.Name
		info.Type = d.Type
		byType[d.Type] = info
	}

	return &Catalog{builtins: builtins, infos: byType}, nil
}

// NameTypes returns the built-in name to type table merged with the
// extensions under <assetsDir>/external_comps. Later entries overwrite
// earlier ones; extension directories are visited in name order.
func (c *Catalog) NameTypes(assetsDir string) (map[string]string, error) {
	lookup := make(map[string]string, len(c.builtins))
	for _, d := range c.builtins {
		lookup[d.Name] = d.Type
	}

	exts, err := loadExtensions(assetsDir)
	if err != nil {
		return nil, err
	}
	for _, ext := range exts {
		for _, d := range ext.components {
			lookup[d.Name] = d.Type
		}
	}
	return lookup, nil
}

// Types returns every built-in component type in ascending order.
func (c *Catalog) Types() []string {
	types := make([]string, 0, len(c.builtins))
	for _, d := range c.builtins {
		types = append(types, d.Type)
	}
	slices.Sort(types)
	return slices.Compact(types)
}

// BuildInfo returns the build information of each type. Extension
// information takes precedence over built-in information.
func (c *Catalog) BuildInfo(assetsDir string, types []string) (map[string]domain.ComponentInfo, error) {
	exts, err := loadExtensions(assetsDir)
	if err != nil {
		return nil, err
	}

	extInfos := make(map[string]domain.ComponentInfo)
	for _, ext := range exts {
		for _, d := range ext.components {
			info, ok := ext.infos[d.Type]
			if !ok {
				info = domain.ComponentInfo{Type: d.Type}
			}
			info.Name = d.Name
			info.BaseDir = filepath.Join(ext.dir, domain.ExtensionFilesDir)
			extInfos[d.Type] = info
		}
	}

	result := make(map[string]domain.ComponentInfo, len(types))
	for _, typ := range types {
		if info, ok := extInfos[typ]; ok {
			result[typ] = info
			continue
		}
		info, ok := c.infos[typ]
		if !ok {
			return nil, zerr.With(zerr.Wrap(domain.ErrUnknownComponent, typ), "type", typ)
		}
		result[typ] = info
	}
	return result, nil
}

type extension struct {
	dir        string
	components []descriptor
	infos      map[string]domain.ComponentInfo
}

func loadExtensions(assetsDir string) ([]extension, error) {
	root := filepath.Join(assetsDir, domain.ExternalComponentsDirName)
	entries, err := os.ReadDir(root)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, catalogError(err, root)
	}

	var exts []extension
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(root, entry.Name())

		components, err := readDescriptors(dir)
		if err != nil {
			return nil, err
		}
		infos, err := readBuildInfos(filepath.Join(dir, domain.ExtensionFilesDir))
		if err != nil {
			return nil, err
		}
		exts = append(exts, extension{dir: dir, components: components, infos: infos})
	}
	return exts, nil
}

// readDescriptors reads component.json, falling back to components.json.
func readDescriptors(dir string) ([]descriptor, error) {
	var single descriptor
	ok, err := readJSON(filepath.Join(dir, componentFile), &single)
	if err != nil {
		return nil, err
	}
	if ok {
		return []descriptor{single}, nil
	}

	var many []descriptor
	if _, err := readJSON(filepath.Join(dir, componentsFile), &many); err != nil {
		return nil, err
	}
	return many, nil
}

func readBuildInfos(dir string) (map[string]domain.ComponentInfo, error) {
	var list []domain.ComponentInfo
	ok, err := readJSON(filepath.Join(dir, buildInfosFile), &list)
	if err != nil {
		return nil, err
	}
	if !ok {
		var single domain.ComponentInfo
		ok, err = readJSON(filepath.Join(dir, buildInfoFile), &single)
		if err != nil {
			return nil, err
		}
		if ok {
			list = []domain.ComponentInfo{single}
		}
	}

	infos := make(map[string]domain.ComponentInfo, len(list))
	for _, info := range list {
		infos[info.Type] = info
	}
	return infos, nil
}

// readJSON decodes path into v. A missing file reports false and no error.
func readJSON(path string, v any) (bool, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is built from the extracted project
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, catalogError(err, path)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, catalogError(err, path)
	}
	return true, nil
}

func readBundled(name string, v any) error {
	data, err := bundled.ReadFile(name)
	if err != nil {
		return catalogError(err, name)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return catalogError(err, name)
	}
	return nil
}

func catalogError(err error, path string) error {
	return zerr.With(errors.Join(domain.ErrCatalogLoad, err), "path", path)
}
