package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

const d8Main = "com.android.tools.r8.D8"

// RunAapt packages the resources, assets and manifest with aapt.
type RunAapt struct{}

func (RunAapt) Name() string { return NameRunAapt }

func (t RunAapt) Run(ctx context.Context, bc *domain.BuildContext, env *pipeline.Env) error {
	assets := buildPath(bc, assetsDirName)
	gen := tmpPath(bc, genDirName)
	if err := mkdirs(assets, gen); err != nil {
		return err
	}

	out := tmpPath(bc, resourcesApName)
	cmd := domain.ToolCommand{
		Name: env.Settings.Toolchain.Aapt,
		Args: []string{
			"package", "-f", "--no-crunch",
			"--auto-add-overlay",
			"-M", buildPath(bc, manifestName),
			"-S", buildPath(bc, resDirName),
			"-A", assets,
			"-I", env.Settings.Toolchain.AndroidJar,
			"-J", gen,
			"-F", out,
		},
		Dir:     bc.Project().Root,
		Outputs: []string{out},
	}
	if err := runTool(ctx, env, t.Name(), cmd); err != nil {
		return err
	}
	env.State.ResourcePackage = out
	return nil
}

// RunAapt2 compiles and links the resources in proto format for bundling.
type RunAapt2 struct{}

func (RunAapt2) Name() string { return NameRunAapt2 }

func (t RunAapt2) Run(ctx context.Context, bc *domain.BuildContext, env *pipeline.Env) error {
	assets := buildPath(bc, assetsDirName)
	if err := mkdirs(assets, domain.TmpPath(bc.Project().Root)); err != nil {
		return err
	}

	compiled := tmpPath(bc, "compiled_res.zip")
	compile := domain.ToolCommand{
		Name:    env.Settings.Toolchain.Aapt2,
		Args:    []string{"compile", "--dir", buildPath(bc, resDirName), "-o", compiled},
		Dir:     bc.Project().Root,
		Outputs: []string{compiled},
	}
	if err := runTool(ctx, env, t.Name(), compile); err != nil {
		return err
	}

	out := tmpPath(bc, "resources.zip")
	link := domain.ToolCommand{
		Name: env.Settings.Toolchain.Aapt2,
		Args: []string{
			"link", "--proto-format",
			"-o", out,
			"-I", env.Settings.Toolchain.AndroidJar,
			"--manifest", buildPath(bc, manifestName),
			"-A", assets,
			"--auto-add-overlay",
			"--min-sdk-version", strconv.Itoa(env.Settings.MinSDK),
			"--target-sdk-version", strconv.Itoa(env.Settings.TargetSDK),
			compiled,
		},
		Dir:     bc.Project().Root,
		Outputs: []string{out},
	}
	if err := runTool(ctx, env, t.Name(), link); err != nil {
		return err
	}
	env.State.ResourcePackage = out
	return nil
}

// GenerateClasses compiles the generated screen sources into class files.
type GenerateClasses struct{}

func (GenerateClasses) Name() string { return NameGenerateClasses }

func (t GenerateClasses) Run(ctx context.Context, bc *domain.BuildContext, env *pipeline.Env) error {
	project := bc.Project()
	sources, err := env.Finder.FilesWithSuffix(project.SourceDir, domain.YailExtension)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return domain.NewTaskFailure(t.Name(), "no generated sources found")
	}

	classes := buildPath(bc, classesDirName)
	if err := mkdirs(classes); err != nil {
		return err
	}

	pkgDir := filepath.Join(strings.Split(project.PackageName(), ".")...)
	outputs := make([]string, 0, len(sources))
	for _, src := range sources {
		screen := strings.TrimSuffix(filepath.Base(src), domain.YailExtension)
		outputs = append(outputs, filepath.Join(classes, pkgDir, screen+".class"))
	}

	classPath := append([]string{env.Settings.Toolchain.KawaJar}, env.State.ClassPath...)
	classPath = append(classPath, env.Settings.Toolchain.AndroidJar)

	args := []string{
		javaHeap(bc, env),
		"-cp", strings.Join(classPath, string(os.PathListSeparator)),
		"kawa.repl",
		"-d", classes,
		"--module-static-run",
		"-C",
	}
	cmd := domain.ToolCommand{
		Name:    env.Settings.Toolchain.Java,
		Args:    append(args, sources...),
		Dir:     project.SourceDir,
		Outputs: outputs,
	}
	return runTool(ctx, env, t.Name(), cmd)
}

// RunMultidex converts the compiled classes and libraries to dex files.
// Libraries are dexed once into the dex cache, keyed by content hash.
type RunMultidex struct{}

func (RunMultidex) Name() string { return NameRunMultidex }

func (t RunMultidex) Run(ctx context.Context, bc *domain.BuildContext, env *pipeline.Env) error {
	cache := bc.DexCachePath()
	if cache == "" {
		cache = env.Settings.DexCache
	}
	dexDir := tmpPath(bc, dexDirName)
	if err := mkdirs(cache, dexDir); err != nil {
		return err
	}

	inputs, err := env.Finder.FilesWithSuffix(buildPath(bc, classesDirName), ".class")
	if err != nil {
		return err
	}
	for _, lib := range env.State.ClassPath {
		dexed, err := t.cachedDex(ctx, bc, env, cache, lib)
		if err != nil {
			return err
		}
		inputs = append(inputs, dexed)
	}

	main := filepath.Join(dexDir, "classes.dex")
	cmd := d8Command(bc, env, dexDir, inputs)
	cmd.Outputs = []string{main}
	if err := runTool(ctx, env, t.Name(), cmd); err != nil {
		return err
	}

	dexFiles, err := env.Finder.FilesWithSuffix(dexDir, ".dex")
	if err != nil {
		return err
	}
	env.State.DexFiles = dexFiles
	return nil
}

func (t RunMultidex) cachedDex(
	ctx context.Context,
	bc *domain.BuildContext,
	env *pipeline.Env,
	cache, lib string,
) (string, error) {
	sum, err := env.Hasher.ComputeFileHash(lib)
	if err != nil {
		return "", err
	}
	cached := filepath.Join(cache, fmt.Sprintf("%016x.jar", sum))
	if exists(cached) {
		return cached, nil
	}

	// Dex into the workspace first so concurrent builds never see a partial file.
	staged := tmpPath(bc, dexDirName+"-cache", filepath.Base(cached))
	if err := mkdirs(filepath.Dir(staged)); err != nil {
		return "", err
	}
	cmd := d8Command(bc, env, staged, []string{lib})
	cmd.Outputs = []string{staged}
	if err := runTool(ctx, env, t.Name(), cmd); err != nil {
		return "", err
	}

	if err := os.Rename(staged, cached); err != nil {
		if err := env.Copier.CopyFile(staged, cached); err != nil {
			return "", zerr.With(err, "library", lib)
		}
	}
	return cached, nil
}

func d8Command(bc *domain.BuildContext, env *pipeline.Env, output string, inputs []string) domain.ToolCommand {
	args := []string{
		javaHeap(bc, env),
		"-cp", env.Settings.Toolchain.D8Jar,
		d8Main,
		"--release",
		"--min-api", strconv.Itoa(env.Settings.MinSDK),
		"--lib", env.Settings.Toolchain.AndroidJar,
		"--output", output,
	}
	return domain.ToolCommand{
		Name: env.Settings.Toolchain.Java,
		Args: append(args, inputs...),
		Dir:  bc.Project().Root,
	}
}
