package engine

import (
	"log/slog"

	"github.com/Carmen-Shannon/blorf/common"
	"github.com/Carmen-Shannon/blorf/engine/config"
	"github.com/Carmen-Shannon/blorf/engine/renderer"
	"github.com/Carmen-Shannon/blorf/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables the per-second frame statistics log.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithWindow sets a custom configured window for the engine to use rather than allowing the engine
// to create and manage one internally. The engine does not close a window it did not create.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithTriangle enables or disables the hard-coded triangle draw. When disabled, frames are
// only cleared. Enabled by default.
//
// Parameters:
//   - enabled: if true, the triangle pipeline is built and drawn every frame
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTriangle(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.triangle = enabled
	}
}

// WithClearColor sets the color every frame is cleared to.
//
// Parameters:
//   - c: the clear color
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithClearColor(c common.Color) EngineBuilderOption {
	return func(e *engine) {
		e.clearColor = c
	}
}

// WithPresentMode sets the requested surface present mode.
func WithPresentMode(mode renderer.PresentMode) EngineBuilderOption {
	return func(e *engine) {
		e.presentMode = mode
	}
}

// WithLimits sets the device limits profile requested during bootstrap.
func WithLimits(profile renderer.LimitsProfile) EngineBuilderOption {
	return func(e *engine) {
		e.limits = profile
	}
}

// WithForceFallbackAdapter requests the software fallback adapter.
func WithForceFallbackAdapter(force bool) EngineBuilderOption {
	return func(e *engine) {
		e.forceFallback = force
	}
}

// WithLogger sets the logger shared by the engine, the event loop and the renderer.
func WithLogger(logger *slog.Logger) EngineBuilderOption {
	return func(e *engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithContextFactory replaces the context bootstrap. The default calls renderer.NewContext.
//
// Parameters:
//   - f: the factory run off the loop thread with the window's surface descriptor
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithContextFactory(f ContextFactory) EngineBuilderOption {
	return func(e *engine) {
		e.factory = f
	}
}

// WithSpawner replaces how the bootstrap is run off the loop thread.
func WithSpawner(s Spawner) EngineBuilderOption {
	return func(e *engine) {
		e.spawner = s
	}
}

// WithEventLoopOptions passes options through to the event loop created by Run.
func WithEventLoopOptions(opts ...EventLoopOption) EngineBuilderOption {
	return func(e *engine) {
		e.loopOptions = append(e.loopOptions, opts...)
	}
}

// WithConfig applies the settings read from the environment.
//
// Parameters:
//   - cfg: the configuration, usually from config.FromEnv
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithConfig(cfg config.Config) EngineBuilderOption {
	return func(e *engine) {
		e.forceFallback = cfg.ForceFallbackAdapter
		e.limits = cfg.Limits
		e.presentMode = cfg.PresentMode
		e.triangle = cfg.Triangle
		e.profilingEnabled = cfg.Profiling
	}
}
