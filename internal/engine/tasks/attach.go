package tasks

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/engine/pipeline"
)

// AttachNativeLibs copies component native libraries into lib/<abi>/.
// Emulator ABIs are only kept for emulator builds.
type AttachNativeLibs struct{}

func (AttachNativeLibs) Name() string { return NameAttachNativeLibs }

func (t AttachNativeLibs) Run(_ context.Context, bc *domain.BuildContext, env *pipeline.Env) error {
	for _, name := range domain.SortedKeys(env.State.NativeLibraries) {
		abi, _, _ := strings.Cut(name, "/")
		if isEmulatorABI(abi) && !bc.IsEmulator() {
			continue
		}

		src := env.State.NativeLibraries[name]
		if !exists(src) {
			return domain.NewTaskFailure(t.Name(), "missing native library "+name)
		}
		if err := env.Copier.CopyFile(src, buildPath(bc, libDirName, filepath.FromSlash(name))); err != nil {
			return err
		}
	}
	return nil
}

func isEmulatorABI(abi string) bool {
	return abi == "x86" || abi == "x86_64"
}

// AttachAarLibs unpacks aar libraries. Their classes join the libraries and
// their resources are queued for merging.
type AttachAarLibs struct{}

func (AttachAarLibs) Name() string { return NameAttachAarLibs }

func (t AttachAarLibs) Run(ctx context.Context, bc *domain.BuildContext, env *pipeline.Env) error {
	libs := make([]string, 0, len(env.State.Libraries))
	for _, lib := range env.State.Libraries {
		if !isAar(lib) {
			libs = append(libs, lib)
			continue
		}

		name := strings.TrimSuffix(filepath.Base(lib), filepath.Ext(lib))
		dest := tmpPath(bc, aarDirName, name)
		if _, err := env.Extractor.Extract(ctx, lib, dest); err != nil {
			return failure(t.Name(), err)
		}

		if classes := filepath.Join(dest, "classes.jar"); exists(classes) {
			libs = append(libs, classes)
		}
		if res := filepath.Join(dest, "res"); exists(res) {
			env.State.ResourceDirs = append(env.State.ResourceDirs, res)
		}
	}
	env.State.Libraries = libs
	return nil
}

// AttachCompAssets copies the project assets and the assets of required
// components into the package assets. Extension packages are not copied.
type AttachCompAssets struct{}

func (AttachCompAssets) Name() string { return NameAttachCompAssets }

func (t AttachCompAssets) Run(_ context.Context, bc *domain.BuildContext, env *pipeline.Env) error {
	project := bc.Project()
	dest := buildPath(bc, assetsDirName)
	if err := mkdirs(dest); err != nil {
		return err
	}

	extensions := filepath.Join(project.AssetsDir, domain.ExternalComponentsDirName) + string(filepath.Separator)
	assets, err := env.Finder.FilesWithSuffix(project.AssetsDir, "")
	if err != nil {
		return err
	}
	for _, src := range assets {
		if strings.HasPrefix(src, extensions) {
			continue
		}
		rel, err := filepath.Rel(project.AssetsDir, src)
		if err != nil {
			return err
		}
		if err := env.Copier.CopyFile(src, filepath.Join(dest, rel)); err != nil {
			return err
		}
	}

	for _, src := range env.State.Assets {
		if !exists(src) {
			return domain.NewTaskFailure(t.Name(), "missing component asset "+filepath.Base(src))
		}
		if err := env.Copier.CopyFile(src, filepath.Join(dest, filepath.Base(src))); err != nil {
			return err
		}
	}
	return nil
}

// SetupLibs assembles the class path: the runtime first, then component libraries.
type SetupLibs struct{}

func (SetupLibs) Name() string { return NameSetupLibs }

func (t SetupLibs) Run(_ context.Context, _ *domain.BuildContext, env *pipeline.Env) error {
	classPath := []string{filepath.Join(env.Settings.Toolchain.RuntimeDir, domain.RuntimeJarName)}
	classPath = append(classPath, env.State.Libraries...)

	for _, lib := range classPath {
		if !exists(lib) {
			return domain.NewTaskFailure(t.Name(), fmt.Sprintf("missing library %s", filepath.Base(lib)))
		}
	}
	env.State.ClassPath = classPath
	return nil
}
