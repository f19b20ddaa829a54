// Package telemetry collects phase timings from OpenTelemetry spans.
package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/cbuild/internal/core/domain"
)

// Recorder implements sdktrace.SpanProcessor and ports.Timings.
// It keeps the name, duration and status of every span that ends.
type Recorder struct {
	mu     sync.Mutex
	phases []domain.Phase
}

// NewRecorder returns a new Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// OnStart does nothing.
func (r *Recorder) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd records the finished span.
func (r *Recorder) OnEnd(s sdktrace.ReadOnlySpan) {
	if !s.SpanContext().IsValid() {
		return
	}

	phase := domain.Phase{
		Name:     s.Name(),
		Duration: s.EndTime().Sub(s.StartTime()),
		Failed:   s.Status().Code == codes.Error,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.phases = append(r.phases, phase)
}

// ForceFlush does nothing.
func (r *Recorder) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

// Phases returns the recorded phases in the order they ended.
func (r *Recorder) Phases() []domain.Phase {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Phase, len(r.phases))
	copy(out, r.phases)
	return out
}
