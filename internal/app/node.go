package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/buildserver/internal/adapters/analyzer"  //nolint:depguard // Wired in app layer
	"go.trai.ch/buildserver/internal/adapters/archive"   //nolint:depguard // Wired in app layer
	"go.trai.ch/buildserver/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/buildserver/internal/adapters/catalog"   //nolint:depguard // Wired in app layer
	"go.trai.ch/buildserver/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/buildserver/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/buildserver/internal/adapters/keytool"   //nolint:depguard // Wired in app layer
	"go.trai.ch/buildserver/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/buildserver/internal/adapters/metrics"   //nolint:depguard // Wired in app layer
	"go.trai.ch/buildserver/internal/adapters/project"   //nolint:depguard // Wired in app layer
	"go.trai.ch/buildserver/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/buildserver/internal/adapters/workspace" //nolint:depguard // Wired in app layer
	"go.trai.ch/buildserver/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			workspace.NodeID,
			archive.NodeID,
			project.NodeID,
			analyzer.NodeID,
			catalog.NodeID,
			keytool.NodeID,
			shell.NodeID,
			fs.CopierNodeID,
			fs.FinderNodeID,
			fs.HasherNodeID,
			metrics.NodeID,
			cas.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

//nolint:gocyclo // One lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	var (
		deps Deps
		err  error
	)

	if deps.ConfigLoader, err = graft.Dep[ports.ConfigLoader](ctx); err != nil {
		return nil, err
	}
	if deps.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}
	if deps.Workspaces, err = graft.Dep[ports.WorkspaceManager](ctx); err != nil {
		return nil, err
	}
	if deps.Extractor, err = graft.Dep[ports.Extractor](ctx); err != nil {
		return nil, err
	}
	if deps.Projects, err = graft.Dep[ports.ProjectReader](ctx); err != nil {
		return nil, err
	}
	if deps.Analyzer, err = graft.Dep[ports.DescriptorAnalyzer](ctx); err != nil {
		return nil, err
	}
	if deps.Catalog, err = graft.Dep[ports.ComponentCatalog](ctx); err != nil {
		return nil, err
	}
	if deps.Keystores, err = graft.Dep[ports.KeystoreGenerator](ctx); err != nil {
		return nil, err
	}
	if deps.Runner, err = graft.Dep[ports.ToolRunner](ctx); err != nil {
		return nil, err
	}
	if deps.Copier, err = graft.Dep[ports.FileCopier](ctx); err != nil {
		return nil, err
	}
	if deps.Finder, err = graft.Dep[ports.FileFinder](ctx); err != nil {
		return nil, err
	}
	if deps.Hasher, err = graft.Dep[ports.Hasher](ctx); err != nil {
		return nil, err
	}
	if deps.Stats, err = graft.Dep[ports.StatReporter](ctx); err != nil {
		return nil, err
	}
	if deps.Store, err = graft.Dep[ports.BuildRecordStore](ctx); err != nil {
		return nil, err
	}

	return New(deps), nil
}
