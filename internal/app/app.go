package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/bindgengo/internal/ctxlog"
	"github.com/vk/bindgengo/internal/manifest"
	"github.com/vk/bindgengo/internal/sink"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	sink     *sink.Sink
	manifest *manifest.Model
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and a fully populated,
// validated sink. When no modules are given, the compiled-in core modules are
// registered.
func NewApp(outW io.Writer, config *Config, modules ...sink.Module) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load the public declarations first.
	model, err := manifest.Load(ctx, config.ManifestPath)
	if err != nil {
		// A failure to load manifests is a fatal startup error.
		panic(fmt.Errorf("failed to load manifests: %w", err))
	}
	logger.Debug("Manifests loaded into unified model.")

	// Run every generator exactly once, populating the sink.
	s := sink.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		if err := mod.Register(ctx, s); err != nil {
			// A generation failure leaves no usable registration set.
			panic(fmt.Errorf("binding generation failed: %w", err))
		}
	}
	logger.Debug("All modules registered.", "modules", len(modules), "exposures", s.Len())

	// Check that the Go registrations and the manifests are in sync.
	if err := s.Validate(ctx, model); err != nil {
		// A mismatch between code and manifests is a programmer error.
		panic(err)
	}
	logger.Debug("Sink validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		sink:     s,
		manifest: model,
	}
}

// Sink returns the application's exposure sink. This is primarily for testing.
func (a *App) Sink() *sink.Sink {
	return a.sink
}
