package engine

import (
	"github.com/Carmen-Shannon/blorf/common"
	"github.com/Carmen-Shannon/blorf/engine/renderer"
	"github.com/Carmen-Shannon/blorf/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/blorf/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
)

// fakeWindow replays one batch of scripted callbacks per PollEvents call and requests a
// close once the script runs out, so every loop under test terminates.
type fakeWindow struct {
	size    common.Size
	script  [][]func(w *fakeWindow)
	polls   int
	shown   int
	closed  int
	onSize  func(width, height int)
	onKey   func(keyCode uint32)
	onClose func()
}

var _ window.Window = &fakeWindow{}

func newFakeWindow(size common.Size, script ...[]func(w *fakeWindow)) *fakeWindow {
	return &fakeWindow{size: size, script: script}
}

func resize(width, height int) func(w *fakeWindow) {
	return func(w *fakeWindow) {
		w.size = common.NewSize(width, height)
		w.onSize(width, height)
	}
}

func press(key uint32) func(w *fakeWindow) {
	return func(w *fakeWindow) { w.onKey(key) }
}

func closeWindow(w *fakeWindow) {
	w.onClose()
}

func (w *fakeWindow) SetResizeCallback(cb func(width, height int)) { w.onSize = cb }
func (w *fakeWindow) SetKeyDownCallback(cb func(keyCode uint32)) { w.onKey = cb }
func (w *fakeWindow) SetCloseCallback(cb func()) { w.onClose = cb }
func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor { return &wgpu.SurfaceDescriptor{} }
func (w *fakeWindow) Show() { w.shown++ }
func (w *fakeWindow) Visible() bool { return w.shown > 0 }
func (w *fakeWindow) IsRunning() bool { return w.closed == 0 }
func (w *fakeWindow) Size() common.Size { return w.size }
func (w *fakeWindow) Title() string { return "fake" }

func (w *fakeWindow) Close() error {
	w.closed++
	return nil
}

func (w *fakeWindow) PollEvents() bool {
	defer func() { w.polls++ }()
	if w.polls < len(w.script) {
		for _, f := range w.script[w.polls] {
			f(w)
		}
		return true
	}
	w.onClose()
	return true
}

// fakeSurface mirrors the resize rules of the real surface and records every configuration.
type fakeSurface struct {
	size         common.Size
	configured   bool
	configures   []common.Size
	reconfigures int
	presented    int
	drew         int
	frameErrs    []error
	format       wgpu.TextureFormat
}

var _ renderer.Surface = &fakeSurface{}

func (s *fakeSurface) Resize(size common.Size) bool {
	if size.IsZero() {
		return false
	}
	s.size = size
	s.configures = append(s.configures, size)
	s.configured = true
	return true
}

func (s *fakeSurface) Reconfigure() bool {
	if s.size.IsZero() {
		return false
	}
	s.reconfigures++
	s.configures = append(s.configures, s.size)
	return true
}

func (s *fakeSurface) Size() common.Size { return s.size }
func (s *fakeSurface) Configured() bool { return s.configured }
func (s *fakeSurface) Format() wgpu.TextureFormat { return s.format }
func (s *fakeSurface) Config() wgpu.SurfaceConfiguration { return wgpu.SurfaceConfiguration{} }
func (s *fakeSurface) Release() { s.configured = false }

func (s *fakeSurface) RenderFrame(p pipeline.Pipeline) error {
	if !s.configured {
		return renderer.ErrSurfaceNotConfigured
	}
	if len(s.frameErrs) > 0 {
		err := s.frameErrs[0]
		s.frameErrs = s.frameErrs[1:]
		return err
	}
	s.presented++
	if p != nil {
		s.drew++
	}
	return nil
}

type fakeContext struct {
	surface  *fakeSurface
	built    []string
	buildErr error
	released int
}

var _ renderer.Context = &fakeContext{}

func newFakeContext() *fakeContext {
	return &fakeContext{surface: &fakeSurface{format: wgpu.TextureFormatBGRA8UnormSrgb}}
}

func (c *fakeContext) Info() renderer.AdapterInfo { return renderer.AdapterInfo{Name: "fake"} }
func (c *fakeContext) Device() *wgpu.Device { return nil }
func (c *fakeContext) Queue() *wgpu.Queue { return nil }
func (c *fakeContext) Release() { c.released++ }

func (c *fakeContext) CreateSurface(size common.Size, _ ...renderer.SurfaceOption) renderer.Surface {
	c.surface.Resize(size)
	return c.surface
}

func (c *fakeContext) BuildPipeline(p pipeline.Pipeline, _ wgpu.TextureFormat) error {
	if c.buildErr != nil {
		return c.buildErr
	}
	c.built = append(c.built, p.PipelineKey())
	return nil
}

// syncSpawner runs tasks inline.
func syncSpawner(task func()) {
	task()
}

// deferredSpawner holds tasks until run is called.
type deferredSpawner struct {
	tasks []func()
}

func (d *deferredSpawner) spawn(task func()) {
	d.tasks = append(d.tasks, task)
}

func (d *deferredSpawner) run() {
	tasks := d.tasks
	d.tasks = nil
	for _, t := range tasks {
		t()
	}
}

func factoryFor(ctx renderer.Context, err error) ContextFactory {
	return func(*wgpu.SurfaceDescriptor) (renderer.Context, error) {
		if err != nil {
			return nil, err
		}
		return ctx, nil
	}
}
