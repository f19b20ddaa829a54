package telemetry

import (
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Install registers a global TracerProvider that reports every span to r.
func Install(r *Recorder) *sdktrace.TracerProvider {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(r),
	)
	otel.SetTracerProvider(tp)
	return tp
}
