package ports

import "go.trai.ch/cbuild/internal/core/domain"

// ScriptLoader defines the interface for building the registered Script.
//
//go:generate go run go.uber.org/mock/mockgen -source=script_loader.go -destination=mocks/mock_script_loader.go -package=mocks
type ScriptLoader interface {
	// Load runs the configuration routine found at path for the given target system.
	Load(path string, sys domain.System) (*domain.Script, error)
}
