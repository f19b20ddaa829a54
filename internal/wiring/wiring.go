// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cbuild/internal/adapters/config"
	_ "go.trai.ch/cbuild/internal/adapters/env"
	_ "go.trai.ch/cbuild/internal/adapters/fs"
	_ "go.trai.ch/cbuild/internal/adapters/logger"
	_ "go.trai.ch/cbuild/internal/adapters/report"
	_ "go.trai.ch/cbuild/internal/adapters/shell"
	_ "go.trai.ch/cbuild/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/cbuild/internal/app"
	_ "go.trai.ch/cbuild/internal/engine/resolver"
)
