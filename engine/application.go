package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Carmen-Shannon/blorf/common"
	"github.com/Carmen-Shannon/blorf/engine/profiler"
	"github.com/Carmen-Shannon/blorf/engine/renderer"
	"github.com/Carmen-Shannon/blorf/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

// Phase is the lifecycle phase of an Application.
type Phase int

const (
	// PhaseUninitialized is the phase before Resumed.
	PhaseUninitialized Phase = iota
	// PhaseRequesting is the phase while the context bootstrap runs off the loop thread.
	PhaseRequesting
	// PhaseReady is the phase once the context, surface and pipeline exist.
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseRequesting:
		return "requesting"
	case PhaseReady:
		return "ready"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// defaultBootstrapWait bounds how long Exiting waits for a bootstrap that is still running.
const defaultBootstrapWait = 5 * time.Second

// ContextFactory runs the context bootstrap for a window surface.
type ContextFactory func(desc *wgpu.SurfaceDescriptor) (renderer.Context, error)

// Application is the render state threaded through the event loop. It owns the context,
// the surface and the optional triangle pipeline, and implements Handler.
type Application struct {
	phase   Phase
	factory ContextFactory
	logger  *slog.Logger

	// bootstrapDone is set once ContextReady or ContextFailed has been delivered
	bootstrapDone bool
	bootstrapWait time.Duration

	ctx      renderer.Context
	surface  renderer.Surface
	pipeline pipeline.Pipeline

	// size is the last known window size; zero sizes are never stored once a valid one is seen
	size common.Size

	triangle    bool
	clearColor  common.Color
	presentMode renderer.PresentMode

	// profiler is nil unless profiling is enabled
	profiler *profiler.Profiler
}

var _ Handler = &Application{}

// Phase returns the current lifecycle phase.
func (a *Application) Phase() Phase {
	return a.phase
}

// Surface returns the window surface, or nil before PhaseReady.
func (a *Application) Surface() renderer.Surface {
	return a.surface
}

// Size returns the last known window size.
func (a *Application) Size() common.Size {
	return a.size
}

func (a *Application) Resumed(loop *EventLoop) {
	if a.phase != PhaseUninitialized {
		return
	}
	w := loop.Window()
	a.size = w.Size()
	desc := w.SurfaceDescriptor()
	proxy := loop.Proxy()
	factory := a.factory

	a.phase = PhaseRequesting
	a.logger.Info("requesting GPU context", "window", w.Title())

	loop.Spawn(func() {
		ctx, err := factory(desc)
		if err != nil {
			proxy.Send(ContextFailed{Err: err})
			return
		}
		proxy.Send(ContextReady{Context: ctx})
	})
}

func (a *Application) UserEvent(loop *EventLoop, event UserEvent) {
	switch ev := event.(type) {
	case ContextReady:
		a.bootstrapDone = true
		a.contextReady(loop, ev.Context)
	case ContextFailed:
		a.bootstrapDone = true
		a.logger.Error("GPU context bootstrap failed", "error", ev.Err)
		loop.ExitWithError(ev.Err)
	}
}

func (a *Application) contextReady(loop *EventLoop, ctx renderer.Context) {
	if a.phase != PhaseRequesting {
		ctx.Release()
		return
	}
	a.ctx = ctx
	a.surface = ctx.CreateSurface(a.size,
		renderer.WithPresentMode(a.presentMode),
		renderer.WithClearColor(a.clearColor),
		renderer.WithSurfaceLogger(a.logger),
	)
	if err := a.ensurePipeline(); err != nil {
		loop.ExitWithError(err)
		return
	}

	loop.Window().Show()
	a.phase = PhaseReady
	a.logger.Info("GPU context ready", "adapter", ctx.Info(), "width", a.size.Width, "height", a.size.Height)
	loop.RequestRedraw()
}

// ensurePipeline builds the triangle pipeline once the surface format is known.
func (a *Application) ensurePipeline() error {
	if !a.triangle || a.pipeline != nil || !a.surface.Configured() {
		return nil
	}
	p := pipeline.Triangle()
	if err := a.ctx.BuildPipeline(p, a.surface.Format()); err != nil {
		return fmt.Errorf("build triangle pipeline: %w", err)
	}
	a.pipeline = p
	return nil
}

func (a *Application) WindowEvent(loop *EventLoop, event WindowEvent) {
	switch ev := event.(type) {
	case Resized:
		a.resized(loop, ev.Size)
	case RedrawRequested:
		a.redraw(loop)
	case CloseRequested:
		a.logger.Info("close requested")
		loop.Exit()
	case KeyPressed:
		if ev.Key == common.KeyEsc {
			a.logger.Info("escape pressed")
			loop.Exit()
		}
	}
}

func (a *Application) resized(loop *EventLoop, size common.Size) {
	if size.IsZero() {
		a.logger.Debug("ignoring zero-sized resize", "width", size.Width, "height", size.Height)
		return
	}
	a.size = size
	if a.surface == nil {
		return
	}
	if a.surface.Resize(size) {
		a.countReconfigure()
	}
	if err := a.ensurePipeline(); err != nil {
		loop.ExitWithError(err)
	}
}

func (a *Application) redraw(loop *EventLoop) {
	if a.phase != PhaseReady {
		a.skip("not ready", slog.String("phase", a.phase.String()))
		return
	}
	if !a.surface.Configured() {
		a.skip("surface not configured")
		return
	}

	err := a.surface.RenderFrame(a.pipeline)
	if err == nil {
		if a.profiler != nil {
			a.profiler.FramePresented()
		}
		return
	}

	var frameErr *renderer.FrameError
	switch {
	case errors.As(err, &frameErr):
		a.frameFailed(loop, frameErr)
	case errors.Is(err, renderer.ErrSurfaceNotConfigured):
		a.skip("surface not configured")
	default:
		a.logger.Error("frame encoding failed", "error", err)
		a.skip("encoding failed")
	}
}

func (a *Application) frameFailed(loop *EventLoop, err *renderer.FrameError) {
	switch {
	case !err.Status.Retryable():
		a.logger.Error("presentation failed", "status", err.Status.String(), "error", err)
		loop.ExitWithError(err)
	case err.Status.NeedsReconfigure():
		a.logger.Info("surface needs reconfiguring", "status", err.Status.String())
		if a.surface.Reconfigure() {
			a.countReconfigure()
		}
		a.skip(err.Status.String())
	default:
		a.logger.Warn("frame acquire timed out", "error", err)
		a.skip(err.Status.String())
	}
}

func (a *Application) AboutToWait(loop *EventLoop) {
	if a.phase == PhaseReady {
		loop.RequestRedraw()
	}
}

func (a *Application) Exiting(loop *EventLoop) {
	if a.phase == PhaseRequesting && !a.bootstrapDone {
		a.awaitBootstrap(loop)
	}
	if a.pipeline != nil {
		a.pipeline.Release()
		a.pipeline = nil
	}
	if a.ctx != nil {
		a.ctx.Release()
		a.ctx = nil
	}
	a.surface = nil
}

// awaitBootstrap collects the result of a bootstrap that outlived the loop and releases it, so
// the caller never closes the window while the bootstrap still uses its surface.
func (a *Application) awaitBootstrap(loop *EventLoop) {
	a.logger.Debug("waiting for GPU context bootstrap", "timeout", a.bootstrapWait)
	event, ok := loop.NextUserEvent(a.bootstrapWait)
	if !ok {
		a.logger.Warn("GPU context bootstrap still running at exit", "timeout", a.bootstrapWait)
		return
	}
	a.bootstrapDone = true
	switch ev := event.(type) {
	case ContextReady:
		a.logger.Debug("releasing GPU context that arrived after exit")
		ev.Context.Release()
	case ContextFailed:
		a.logger.Debug("GPU context bootstrap failed after exit", "error", ev.Err)
	}
}

func (a *Application) skip(reason string, attrs ...any) {
	a.logger.Debug("redraw skipped", append([]any{"reason", reason}, attrs...)...)
	if a.profiler != nil {
		a.profiler.FrameSkipped()
	}
}

func (a *Application) countReconfigure() {
	if a.profiler != nil {
		a.profiler.SurfaceReconfigured()
	}
}
