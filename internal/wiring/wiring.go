// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/buildserver/internal/adapters/analyzer"
	_ "go.trai.ch/buildserver/internal/adapters/archive"
	_ "go.trai.ch/buildserver/internal/adapters/cas"
	_ "go.trai.ch/buildserver/internal/adapters/catalog"
	_ "go.trai.ch/buildserver/internal/adapters/config"
	_ "go.trai.ch/buildserver/internal/adapters/fs"
	_ "go.trai.ch/buildserver/internal/adapters/keytool"
	_ "go.trai.ch/buildserver/internal/adapters/logger"
	_ "go.trai.ch/buildserver/internal/adapters/metrics"
	_ "go.trai.ch/buildserver/internal/adapters/project"
	_ "go.trai.ch/buildserver/internal/adapters/shell"
	_ "go.trai.ch/buildserver/internal/adapters/workspace"
	// Register app nodes.
	_ "go.trai.ch/buildserver/internal/app"
)
