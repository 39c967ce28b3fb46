// Package app implements the application layer for buildserver.
package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/buildserver/internal/adapters/telemetry"
	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/core/ports"
)

// Deps holds the collaborators of an App.
type Deps struct {
	ConfigLoader ports.ConfigLoader
	Logger       ports.Logger
	Workspaces   ports.WorkspaceManager
	Extractor    ports.Extractor
	Projects     ports.ProjectReader
	Analyzer     ports.DescriptorAnalyzer
	Catalog      ports.ComponentCatalog
	Keystores    ports.KeystoreGenerator
	Runner       ports.ToolRunner
	Copier       ports.FileCopier
	Finder       ports.FileFinder
	Hasher       ports.Hasher
	Stats        ports.StatReporter
	Store        ports.BuildRecordStore
}

// App represents the main application logic.
type App struct {
	Deps

	now       func() time.Time
	newID     func() string
	newTracer func(logger ports.Logger, traceFile string) (ports.Tracer, func(context.Context) error)
}

// New creates a new App instance.
func New(deps Deps) *App {
	return &App{
		Deps:      deps,
		now:       time.Now,
		newID:     uuid.NewString,
		newTracer: newTracer,
	}
}

// BuildRequest describes one build invocation.
type BuildRequest struct {
	// ConfigPath selects the settings file. Empty means discovery.
	ConfigPath string
	// UserName is embedded in a generated keystore.
	UserName    string
	ArchivePath string
	// OutputDir receives the package and a freshly generated keystore.
	OutputDir string
	// OutputName overrides the artifact file name.
	OutputName           string
	Companion            bool
	Emulator             bool
	DangerousPermissions bool
	// ExtraTypes are extension types to include regardless of the forms.
	ExtraTypes []string
	// ChildProcessRAM overrides the settings' memory ceiling in MB when positive.
	ChildProcessRAM int
	// DexCachePath overrides the settings' dex cache when set.
	DexCachePath string
	Format       domain.PackageFormat
}

// Build runs one build. It never panics and never returns an error: every
// problem is reported in the returned Result.
func (a *App) Build(ctx context.Context, req BuildRequest) domain.Result {
	run := &buildRun{
		app:     a,
		req:     req,
		id:      a.newID(),
		started: a.now(),
		state:   domain.StateCreated,
		outcome: domain.StateCreated,
	}
	return run.execute(ctx)
}

// BuildRecord returns the stored record of a build, or nil if there is none.
func (a *App) BuildRecord(configPath, id string) (*domain.BuildRecord, error) {
	settings, err := a.ConfigLoader.Load(configPath)
	if err != nil {
		return nil, err
	}
	return a.Store.Get(domain.DefaultStorePath(settings.StateDir), id)
}

func newTracer(logger ports.Logger, traceFile string) (ports.Tracer, func(context.Context) error) {
	provider, err := telemetry.NewProvider(logger, traceFile)
	if err != nil {
		logger.Error(err)
		return telemetry.NewNoOpTracer(), func(context.Context) error { return nil }
	}
	return provider.Tracer(), provider.Shutdown
}
