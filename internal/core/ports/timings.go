package ports

import "go.trai.ch/cbuild/internal/core/domain"

// Timings exposes the phases traced during the current invocation.
//
//go:generate go run go.uber.org/mock/mockgen -source=timings.go -destination=mocks/mock_timings.go -package=mocks
type Timings interface {
	// Phases returns the finished phases in the order they ended.
	Phases() []domain.Phase
}
