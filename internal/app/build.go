package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/core/ports"
	"go.trai.ch/buildserver/internal/engine/compilerlog"
	"go.trai.ch/buildserver/internal/engine/pipeline"
	"go.trai.ch/buildserver/internal/engine/tasks"
	"go.trai.ch/zerr"
)

// buildRun carries the state of one Build call.
type buildRun struct {
	app     *App
	req     BuildRequest
	id      string
	started time.Time

	state   domain.BuildState
	outcome domain.BuildState

	settings  *domain.Settings
	tracer    ports.Tracer
	span      ports.Span
	shutdown  func(context.Context) error
	workspace ports.Workspace
	project   *domain.Project
}

// advance moves the run to next, rejecting transitions the state machine forbids.
func (r *buildRun) advance(next domain.BuildState) error {
	if !r.state.CanTransition(next) {
		return zerr.With(zerr.With(zerr.New("invalid build state transition"), "from", r.state.String()), "to", next.String())
	}
	r.state = next
	if next != domain.StateFinalizing && next != domain.StateDone {
		r.outcome = next
	}
	return nil
}

func (r *buildRun) execute(ctx context.Context) (result domain.Result) {
	defer func() {
		if rec := recover(); rec != nil {
			r.app.Logger.Error(zerr.With(zerr.New(fmt.Sprintf("panic: %v", rec)), "build_id", r.id))
			result = r.failing("", domain.MsgServerError)
			r.outcome = domain.StateFaulted
		}
		result.State = r.outcome
		r.finalize(ctx, result)
	}()

	settings, err := r.app.ConfigLoader.Load(r.req.ConfigPath)
	if err != nil {
		r.app.Logger.Error(err)
		return r.failing("", domain.MsgServerError)
	}
	r.settings = settings

	ws, err := r.app.Workspaces.Create(settings.WorkspaceBase)
	if err != nil {
		r.app.Logger.Error(err)
		return r.failing("", domain.MsgServerError)
	}
	r.workspace = ws
	r.app.Logger.Info("temporary project root: " + ws.Root())

	r.tracer, r.shutdown = r.app.newTracer(r.app.Logger, settings.TraceFile)
	ctx, r.span = r.tracer.Start(ctx, "build", ports.WithNewRoot())
	r.span.SetAttribute("build.id", r.id)
	r.span.SetAttribute("build.format", r.req.Format.String())

	p, err := tasks.ForFormat(r.req.Format)
	if err != nil {
		r.app.Logger.Error(err)
		return r.failing("", domain.MsgServerError)
	}
	r.app.Stats.BuildStarted(r.req.Format)

	return r.run(ctx, p)
}

func (r *buildRun) run(ctx context.Context, p *pipeline.Pipeline) domain.Result {
	root := r.workspace.Root()

	if err := r.advance(domain.StateExtracting); err != nil {
		return r.fault(err)
	}
	files, err := r.app.Extractor.Extract(ctx, r.req.ArchivePath, root)
	if err != nil {
		r.app.Logger.Error(err)
		return r.failing("", domain.MsgExtractionFailed)
	}

	keystore, generated, err := r.ensureKeystore(ctx, root)
	if err != nil {
		return r.fault(err)
	}

	if err := r.advance(domain.StateAnalyzingMetadata); err != nil {
		return r.fault(err)
	}
	project, err := r.app.Projects.Read(root)
	if err != nil {
		r.app.Logger.Error(err)
		return r.failing("", domain.MsgMetadataFailed)
	}
	r.project = project
	r.span.SetAttribute("build.project", project.Name)

	if err := os.MkdirAll(domain.TmpPath(root), domain.DirPerm); err != nil {
		return r.fault(zerr.With(zerr.Wrap(err, "failed to create build directory"), "path", domain.TmpPath(root)))
	}

	params, err := r.analyze(files, project)
	if err != nil {
		return r.fault(err)
	}
	params.KeystorePath = keystore

	bc, err := domain.NewBuildContext(params)
	if err != nil {
		return r.fault(err)
	}
	if err := r.advance(domain.StateContextBuilt); err != nil {
		return r.fault(err)
	}

	if err := r.advance(domain.StateRunning); err != nil {
		return r.fault(err)
	}
	env := &pipeline.Env{
		Settings:  *r.settings,
		Runner:    r.app.Runner,
		Catalog:   r.app.Catalog,
		Extractor: r.app.Extractor,
		Copier:    r.app.Copier,
		Finder:    r.app.Finder,
		Hasher:    r.app.Hasher,
		Logger:    r.app.Logger,
		State:     pipeline.NewState(),
	}
	outcome := pipeline.NewExecutor(r.tracer, r.app.Stats, r.app.Logger).Run(ctx, p, bc, env)
	if err := r.advance(outcome.State); err != nil {
		return r.fault(err)
	}

	srcPrefix := bc.Project().SourceDir + string(filepath.Separator)
	log := compilerlog.Normalize(bc.Reporter().SystemOutput(), srcPrefix, r.app.Logger)

	switch outcome.State {
	case domain.StateFailed:
		r.span.SetAttribute("build.failed_task", outcome.Task)
		result := r.failing(log, bc.Reporter().UserOutput()+fmt.Sprintf("Build failed in task %s.", outcome.Task))
		result.FailedTask = outcome.Task
		return result
	case domain.StateFaulted:
		r.span.RecordError(outcome.Err)
		result := r.failing(log, domain.MsgServerError)
		result.FailedTask = outcome.Task
		return result
	}

	artifacts, err := r.publish(bc, keystore, generated)
	if err != nil {
		result := r.fault(err)
		result.Log = log
		return result
	}

	return domain.Result{
		BuildID:     r.id,
		Success:     true,
		Log:         log,
		UserMessage: bc.Reporter().UserOutput(),
		Artifacts:   artifacts,
	}
}

// ensureKeystore returns the project keystore, generating one when the
// archive did not carry it.
func (r *buildRun) ensureKeystore(ctx context.Context, root string) (string, bool, error) {
	path := domain.KeystorePath(root)
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	}
	if err := r.app.Keystores.Generate(ctx, r.settings.Toolchain.Keytool, r.req.UserName, path); err != nil {
		return "", false, err
	}
	return path, true, nil
}

// analyze reads the form and blocks descriptors among files and collects the
// context parameters they imply.
func (r *buildRun) analyze(files []string, project *domain.Project) (domain.ContextParams, error) {
	params := domain.ContextParams{
		Project:              project,
		Format:               r.req.Format,
		Reporter:             domain.NewReporter(),
		ExtraTypes:           r.req.ExtraTypes,
		Blocks:               domain.NewBlockAnalysis(),
		Orientations:         make(map[string]string),
		Companion:            r.req.Companion,
		Emulator:             r.req.Emulator,
		DangerousPermissions: r.req.DangerousPermissions,
		ChildProcessRAM:      r.settings.ChildRAM,
		DexCachePath:         r.settings.DexCache,
		OutputName:           r.req.OutputName,
	}
	if r.req.ChildProcessRAM > 0 {
		params.ChildProcessRAM = r.req.ChildProcessRAM
	}
	if r.req.DexCachePath != "" {
		params.DexCachePath = r.req.DexCachePath
	}
	if r.req.Companion {
		params.CatalogTypes = r.app.Catalog.Types()
	}
	if len(r.req.ExtraTypes) > 0 {
		r.app.Logger.Info("including extensions: " + strings.Join(r.req.ExtraTypes, ", "))
	}

	nameTypes, err := r.app.Catalog.NameTypes(project.AssetsDir)
	if err != nil {
		return params, err
	}

	types := make(map[string]struct{})
	for _, file := range files {
		switch {
		case strings.HasSuffix(file, domain.FormExtension):
			content, err := os.ReadFile(file) //nolint:gosec // File was extracted into the workspace
			if err != nil {
				return params, zerr.With(zerr.Wrap(err, "failed to read form"), "path", file)
			}
			if err := r.analyzeForm(file, content, nameTypes, types, params.Orientations); err != nil {
				return params, err
			}
		case strings.HasSuffix(file, domain.BlocksExtension):
			content, err := os.ReadFile(file) //nolint:gosec // File was extracted into the workspace
			if err != nil {
				return params, zerr.With(zerr.Wrap(err, "failed to read blocks"), "path", file)
			}
			analysis, err := r.app.Analyzer.AnalyzeBlocks(content)
			if err != nil {
				return params, zerr.With(err, "path", file)
			}
			params.Blocks.Merge(analysis)
		}
	}
	params.ComponentTypes = domain.SortedKeys(types)

	return params, nil
}

func (r *buildRun) analyzeForm(
	file string,
	content []byte,
	nameTypes map[string]string,
	types map[string]struct{},
	orientations map[string]string,
) error {
	names, err := r.app.Analyzer.ComponentNames(content)
	if err != nil {
		return zerr.With(err, "path", file)
	}
	for _, name := range names {
		typ, ok := nameTypes[name]
		if !ok {
			r.app.Logger.Warn(fmt.Sprintf("unknown component %s in %s", name, filepath.Base(file)))
			continue
		}
		types[typ] = struct{}{}
	}

	orientation, err := r.app.Analyzer.Orientation(content)
	if err != nil {
		return zerr.With(err, "path", file)
	}
	form := strings.TrimSuffix(filepath.Base(file), domain.FormExtension)
	orientations[form] = orientation
	return nil
}

func (r *buildRun) failing(log, message string) domain.Result {
	return domain.NewFailingResult(r.id, log, message)
}

func (r *buildRun) fault(err error) domain.Result {
	r.app.Logger.Error(zerr.With(err, "build_id", r.id))
	r.outcome = domain.StateFaulted
	return r.failing("", domain.MsgServerError)
}

// finalize releases the workspace and records the build. It runs on every
// exit path.
func (r *buildRun) finalize(ctx context.Context, result domain.Result) {
	_ = r.advance(domain.StateFinalizing)

	if r.workspace != nil {
		r.workspace.Close()
	}

	elapsed := r.app.now().Sub(r.started)
	r.app.Stats.BuildFinished(result, elapsed)

	if r.settings != nil {
		r.record(result, elapsed)
		if err := r.app.Stats.Flush(r.settings.MetricsFile); err != nil {
			r.app.Logger.Error(err)
		}
	}

	if r.span != nil {
		r.span.SetAttribute("build.state", result.State.String())
		r.span.End()
	}
	if r.shutdown != nil {
		if err := r.shutdown(context.WithoutCancel(ctx)); err != nil {
			r.app.Logger.Error(err)
		}
	}

	_ = r.advance(domain.StateDone)
}

func (r *buildRun) record(result domain.Result, elapsed time.Duration) {
	record := domain.BuildRecord{
		ID:         r.id,
		Format:     r.req.Format,
		Success:    result.Success,
		State:      result.State,
		FailedTask: result.FailedTask,
		Artifacts:  result.Artifacts,
		StartedAt:  r.started.UTC(),
		Duration:   elapsed,
	}
	if r.project != nil {
		record.Project = r.project.Name
	}
	if err := r.app.Store.Put(domain.DefaultStorePath(r.settings.StateDir), record); err != nil {
		r.app.Logger.Error(err)
	}
}
