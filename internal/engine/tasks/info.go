package tasks

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/engine/pipeline"
)

// ReadBuildInfo loads the build information of every required component type.
type ReadBuildInfo struct{}

func (ReadBuildInfo) Name() string { return NameReadBuildInfo }

func (t ReadBuildInfo) Run(_ context.Context, bc *domain.BuildContext, env *pipeline.Env) error {
	project := bc.Project()
	infos, err := env.Catalog.BuildInfo(project.AssetsDir, bc.ComponentTypes())
	if err != nil {
		if errors.Is(err, domain.ErrUnknownComponent) {
			return failure(t.Name(), err)
		}
		return err
	}
	env.State.Components = infos
	return nil
}

// LoadComponentInfo aggregates permissions, libraries, native libraries and
// assets over the required components.
//
// Companion builds drop dangerous permissions unless they were requested.
type LoadComponentInfo struct{}

func (LoadComponentInfo) Name() string { return NameLoadComponentInfo }

func (LoadComponentInfo) Run(_ context.Context, bc *domain.BuildContext, env *pipeline.Env) error {
	perms := make(map[string]struct{})
	for _, p := range bc.Permissions() {
		perms[p] = struct{}{}
	}

	var libs, assets []string
	natives := make(map[string]string)

	for _, typ := range domain.SortedKeys(env.State.Components) {
		info := env.State.Components[typ]
		base := info.BaseDir
		if base == "" {
			base = env.Settings.Toolchain.RuntimeDir
		} else if jar := filepath.Join(base, domain.RuntimeJarName); exists(jar) {
			libs = appendUnique(libs, jar)
		}

		for _, p := range info.Permissions {
			perms[domain.QualifyPermission(p)] = struct{}{}
		}
		for _, lib := range info.Libraries {
			libs = appendUnique(libs, filepath.Join(base, lib))
		}
		for _, n := range info.NativeLibraries {
			natives[n] = filepath.Join(base, domain.RuntimeNativeDir, filepath.FromSlash(n))
		}
		for _, a := range info.Assets {
			assets = appendUnique(assets, filepath.Join(base, domain.RuntimeAssetsDir, filepath.FromSlash(a)))
		}
	}

	if bc.IsCompanion() && !bc.IncludeDangerousPermissions() {
		for p := range perms {
			if domain.IsDangerousPermission(p) {
				delete(perms, p)
			}
		}
	}

	env.State.Permissions = domain.SortedKeys(perms)
	env.State.Libraries = libs
	env.State.NativeLibraries = natives
	env.State.Assets = assets
	return nil
}

func appendUnique(list []string, item string) []string {
	if slices.Contains(list, item) {
		return list
	}
	return append(list, item)
}

func isAar(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".aar")
}
