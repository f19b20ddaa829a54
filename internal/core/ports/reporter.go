package ports

import (
	"io"

	"go.trai.ch/cbuild/internal/core/domain"
)

// Reporter defines the interface for the verbose build report.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Recipe writes the resolved recipe and the command that will run.
	Recipe(w io.Writer, recipe *domain.Recipe, cmd domain.Command) error
	// Phases writes the duration of each traced phase.
	Phases(w io.Writer, phases []domain.Phase) error
}
