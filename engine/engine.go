package engine

import (
	"log/slog"

	"github.com/Carmen-Shannon/blorf/common"
	"github.com/Carmen-Shannon/blorf/engine/profiler"
	"github.com/Carmen-Shannon/blorf/engine/renderer"
	"github.com/Carmen-Shannon/blorf/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
)

// engine implements the Engine interface.
type engine struct {
	window      window.Window
	ownedWindow bool
	logger      *slog.Logger

	profilingEnabled bool
	triangle         bool
	clearColor       common.Color
	presentMode      renderer.PresentMode
	limits           renderer.LimitsProfile
	forceFallback    bool

	factory ContextFactory
	spawner Spawner

	loopOptions []EventLoopOption
	app         *Application
}

// Engine is the main entry point. It owns the window and runs the event loop that
// bootstraps the GPU context and renders frames.
type Engine interface {
	// Window returns the underlying window, or nil before Run creates the default one.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Application returns the render state driven by the event loop.
	//
	// Returns:
	//   - *Application: the application
	Application() *Application

	// Run opens the window if none was provided, runs the event loop until the window closes,
	// Escape is pressed, or a fatal error occurs, and closes the window it opened.
	//
	// Returns:
	//   - error: nil on a normal exit, otherwise the fatal error (for example one wrapping
	//     renderer.ErrNoAdapter)
	Run() error
}

// NewEngine creates a new Engine instance with the provided options.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		logger:      slog.Default(),
		triangle:    true,
		clearColor:  common.DefaultClearColor,
		presentMode: renderer.PresentModeVSync,
		limits:      renderer.DefaultLimitsProfile,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.factory == nil {
		e.factory = e.newContext
	}

	e.app = &Application{
		factory:       e.factory,
		logger:        e.logger,
		bootstrapWait: defaultBootstrapWait,
		triangle:      e.triangle,
		clearColor:    e.clearColor,
		presentMode:   e.presentMode,
	}
	if e.profilingEnabled {
		e.app.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger))
	}

	return e
}

func (e *engine) newContext(desc *wgpu.SurfaceDescriptor) (renderer.Context, error) {
	return renderer.NewContext(desc,
		renderer.WithForceFallbackAdapter(e.forceFallback),
		renderer.WithLimits(e.limits),
		renderer.WithLogger(e.logger),
	)
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Application() *Application {
	return e.app
}

func (e *engine) Run() error {
	if e.window == nil {
		e.window = window.NewWindow()
		e.ownedWindow = true
	}

	opts := append([]EventLoopOption{
		WithLoopLogger(e.logger),
		WithLoopSpawner(e.spawner),
	}, e.loopOptions...)
	loop := NewEventLoop(e.window, opts...)

	err := loop.RunApp(e.app)

	if e.ownedWindow {
		if closeErr := e.window.Close(); closeErr != nil {
			e.logger.Warn("closing window", "error", closeErr)
		}
	}
	return err
}
