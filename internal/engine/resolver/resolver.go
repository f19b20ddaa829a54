// Package resolver flattens a registered target and its libraries into a Recipe.
package resolver

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/cbuild/internal/core/domain"
	"go.trai.ch/cbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// TracerName is the instrumentation name of the resolver's spans.
const TracerName = "go.trai.ch/cbuild/resolver"

// Resolver builds Recipes from a Script.
type Resolver struct {
	scanner ports.SourceScanner
}

// New creates a new Resolver that discovers sources with scanner.
func New(scanner ports.SourceScanner) *Resolver {
	return &Resolver{scanner: scanner}
}

// Resolve runs the target's callback, then each bound library's callback, and
// merges everything they declared into one Recipe.
//
// The caller must have checked that the target exists; a missing target is a
// programming error and panics.
func (r *Resolver) Resolve(
	ctx context.Context,
	script *domain.Script,
	name string,
	mode domain.Mode,
	sys domain.System,
) (*domain.Recipe, error) {
	ctx, span := otel.Tracer(TracerName).Start(ctx, "resolve", trace.WithAttributes(
		attribute.String("target", name),
		attribute.String("mode", mode.String()),
		attribute.String("system", sys.String()),
	))
	defer span.End()

	desc, ok := script.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("resolver: target %q is not registered", name))
	}

	recipe := &domain.Recipe{
		Target: name,
		Mode:   mode,
		System: sys,
		Output: desc.Output,
	}

	var target domain.Target
	if desc.Configure != nil {
		desc.Configure(&target, mode, sys)
	}
	recipe.Description = target.Description()

	if err := r.discover(ctx, recipe, target.SourceDirs(), script.SourceExtension()); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRecipeResolutionFailed.Error()), "target", name)
	}

	recipe.CompileFlags = target.Flags()

	var linkFlags domain.Buffer
	var includeDirs, libraryDirs domain.StringList
	for _, binding := range target.Libraries() {
		var lib domain.Library
		if binding.Configure != nil {
			binding.Configure(&lib, mode, sys)
		}

		linkFlags.Append(lib.Flags())
		for _, dir := range lib.IncludeDirs() {
			includeDirs.Append(binding.Dir + dir)
		}
		for _, dir := range lib.LibraryDirs() {
			libraryDirs.Append(binding.Dir + dir)
		}
	}
	recipe.LinkFlags = linkFlags.String()
	recipe.IncludeDirs = includeDirs.Items()
	recipe.LibraryDirs = libraryDirs.Items()

	span.SetAttributes(attribute.Int("files", len(recipe.Files)))
	return recipe, nil
}

// discover records each source directory and appends its files in directory order.
func (r *Resolver) discover(ctx context.Context, recipe *domain.Recipe, dirs []string, ext string) error {
	_, span := otel.Tracer(TracerName).Start(ctx, "discover")
	defer span.End()

	for _, dir := range dirs {
		recipe.SourceDirs = append(recipe.SourceDirs, dir)
		files, err := r.scanner.Discover(dir, ext)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		recipe.Files = append(recipe.Files, files...)
	}
	return nil
}
