// Package tasks implements the build tasks and the per-format pipelines.
package tasks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// Task names in pipeline order.
const (
	NameReadBuildInfo     = "ReadBuildInfo"
	NameLoadComponentInfo = "LoadComponentInfo"
	NamePrepareAppIcon    = "PrepareAppIcon"
	NameXMLConfig         = "XmlConfig"
	NameCreateManifest    = "CreateManifest"
	NameAttachNativeLibs  = "AttachNativeLibs"
	NameAttachAarLibs     = "AttachAarLibs"
	NameAttachCompAssets  = "AttachCompAssets"
	NameMergeResources    = "MergeResources"
	NameSetupLibs         = "SetupLibs"
	NameRunAapt           = "RunAapt"
	NameRunAapt2          = "RunAapt2"
	NameGenerateClasses   = "GenerateClasses"
	NameRunMultidex       = "RunMultidex"
	NameRunApkBuilder     = "RunApkBuilder"
	NameRunZipAlign       = "RunZipAlign"
	NameRunApkSigner      = "RunApkSigner"
	NameRunBundletool     = "RunBundletool"
)

// Directories under the project build directory.
const (
	resDirName      = "res"
	assetsDirName   = "assets"
	libDirName      = "lib"
	classesDirName  = "classes"
	dexDirName      = "dex"
	genDirName      = "gen"
	aarDirName      = "aar"
	manifestName    = "AndroidManifest.xml"
	iconName        = "ya.png"
	resourcesApName = "resources.ap_"
)

// ForFormat returns the pipeline that produces format.
func ForFormat(format domain.PackageFormat) (*pipeline.Pipeline, error) {
	switch format {
	case domain.FormatAPK:
		return APK(), nil
	case domain.FormatAAB:
		return AAB(), nil
	default:
		return nil, zerr.Wrap(domain.ErrUnsupportedFormat, strconv.Quote(format.String()))
	}
}

// APK returns the pipeline producing a signed, aligned apk.
func APK() *pipeline.Pipeline {
	return pipeline.New(domain.FormatAPK.String(), append(shared(),
		RunAapt{},
		GenerateClasses{},
		RunMultidex{},
		RunApkBuilder{},
		RunZipAlign{},
		RunApkSigner{},
	)...)
}

// AAB returns the pipeline producing a signed app bundle.
func AAB() *pipeline.Pipeline {
	return pipeline.New(domain.FormatAAB.String(), append(shared(),
		RunAapt2{},
		GenerateClasses{},
		RunMultidex{},
		RunBundletool{},
	)...)
}

func shared() []pipeline.Task {
	return []pipeline.Task{
		ReadBuildInfo{},
		LoadComponentInfo{},
		PrepareAppIcon{},
		XMLConfig{},
		CreateManifest{},
		AttachNativeLibs{},
		AttachAarLibs{},
		AttachCompAssets{},
		MergeResources{},
		SetupLibs{},
	}
}

// failure reports err as a failure of task. Cancellation passes through so
// the executor records it as a fault.
func failure(task string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return domain.NewTaskFailure(task, err.Error())
}

func runTool(ctx context.Context, env *pipeline.Env, task string, cmd domain.ToolCommand) error {
	if err := env.Runner.Run(ctx, cmd, env.Output, env.Output); err != nil {
		return failure(task, err)
	}
	return nil
}

func buildPath(bc *domain.BuildContext, elem ...string) string {
	return filepath.Join(append([]string{domain.BuildPath(bc.Project().Root)}, elem...)...)
}

func tmpPath(bc *domain.BuildContext, elem ...string) string {
	return filepath.Join(append([]string{domain.TmpPath(bc.Project().Root)}, elem...)...)
}

func mkdirs(dirs ...string) error {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dir)
		}
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func childRAM(bc *domain.BuildContext, env *pipeline.Env) int {
	if ram := bc.ChildProcessRAM(); ram > 0 {
		return ram
	}
	return env.Settings.ChildRAM
}

func javaHeap(bc *domain.BuildContext, env *pipeline.Env) string {
	return "-Xmx" + strconv.Itoa(childRAM(bc, env)) + "m"
}
