package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cbuild/internal/core/ports"
)

// NodeID is the unique identifier for the timings Graft node.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Timings]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Timings, error) {
			recorder := NewRecorder()
			Install(recorder)
			return recorder, nil
		},
	})
}
