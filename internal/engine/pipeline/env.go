package pipeline

import (
	"io"

	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/core/ports"
)

// Env holds the collaborators and scratch state of one pipeline run.
// An Env belongs to a single build and must not be shared.
type Env struct {
	Settings  domain.Settings
	Runner    ports.ToolRunner
	Catalog   ports.ComponentCatalog
	Extractor ports.Extractor
	Copier    ports.FileCopier
	Finder    ports.FileFinder
	Hasher    ports.Hasher
	Logger    ports.Logger

	// Output receives the tool output of the running task. The executor
	// points it at the task span and the build reporter.
	Output io.Writer

	State *State
}

// State is what tasks compute for the tasks that follow them.
type State struct {
	// Components is the build information of every required component type.
	Components map[string]domain.ComponentInfo
	// Permissions are the permissions written to the manifest.
	Permissions []string
	// Libraries are absolute paths of the jar and aar files components link against.
	Libraries []string
	// NativeLibraries maps "<abi>/<file>" to the absolute source path.
	NativeLibraries map[string]string
	// Assets are absolute paths of component assets.
	Assets []string
	// ResourceDirs are extra resource directories, such as those of unpacked aar files.
	ResourceDirs []string
	// ClassPath is the ordered class path used for compilation and dexing.
	ClassPath []string
	// ResourcePackage is the compiled resource archive produced by the packager.
	ResourcePackage string
	// DexFiles are the dex files to package.
	DexFiles []string
	// UnsignedPackage is the assembled package awaiting alignment or signing.
	UnsignedPackage string
	// AlignedPackage is the aligned package awaiting signing.
	AlignedPackage string
}

// NewState returns an empty State.
func NewState() *State {
	return &State{
		Components:      make(map[string]domain.ComponentInfo),
		NativeLibraries: make(map[string]string),
	}
}
