package renderer

import (
	"log/slog"
	"slices"

	"github.com/Carmen-Shannon/blorf/common"
	"github.com/Carmen-Shannon/blorf/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

// surfaceTarget is the presentable surface a surfaceState drives. The wgpu implementation lives
// in wgpu_surface_backend.go.
type surfaceTarget interface {
	capabilities() wgpu.SurfaceCapabilities
	configure(config *wgpu.SurfaceConfiguration)
	renderFrame(clear wgpu.Color, p pipeline.Pipeline) error
	release()
}

// surfaceState is the implementation of the Surface interface.
type surfaceState struct {
	target surfaceTarget
	logger *slog.Logger

	presentMode PresentMode
	clearColor  common.Color

	// size is the last non-zero size the surface was asked to take
	size       common.Size
	config     wgpu.SurfaceConfiguration
	configured bool
}

// Surface is the presentable surface bound to the window. It remembers the last non-zero
// size so it can be reconfigured after the platform reports the surface lost or outdated.
type Surface interface {
	// Resize stores a new size and reconfigures the surface. Sizes with a zero dimension
	// (a minimized window) are ignored and leave the configuration untouched.
	//
	// Parameters:
	//   - size: the new window size in physical pixels
	//
	// Returns:
	//   - bool: true if the surface was reconfigured
	Resize(size common.Size) bool

	// Reconfigure re-applies the configuration for the last valid size. It does nothing if
	// the surface has never had a non-zero size.
	//
	// Returns:
	//   - bool: true if the surface was reconfigured
	Reconfigure() bool

	// Size returns the last valid size.
	//
	// Returns:
	//   - common.Size: the last non-zero size, or the zero Size if none was seen
	Size() common.Size

	// Configured reports whether the surface has been configured at least once.
	//
	// Returns:
	//   - bool: true if frames may be rendered
	Configured() bool

	// Format returns the texture format the surface was configured with.
	//
	// Returns:
	//   - wgpu.TextureFormat: the preferred surface format reported by the adapter
	Format() wgpu.TextureFormat

	// Config returns a copy of the current surface configuration.
	//
	// Returns:
	//   - wgpu.SurfaceConfiguration: the last applied configuration
	Config() wgpu.SurfaceConfiguration

	// RenderFrame acquires the next frame, clears it to the clear color, draws p when it is
	// non-nil and built, submits, and presents.
	//
	// Parameters:
	//   - p: the pipeline to draw with, or nil to only clear
	//
	// Returns:
	//   - error: ErrSurfaceNotConfigured, a *FrameError when the frame could not be acquired,
	//     or another error if encoding failed
	RenderFrame(p pipeline.Pipeline) error

	// Release frees the underlying surface.
	Release()
}

var _ Surface = &surfaceState{}

func newSurfaceState(target surfaceTarget, size common.Size, opts ...SurfaceOption) *surfaceState {
	s := &surfaceState{
		target:      target,
		logger:      slog.Default(),
		presentMode: PresentModeVSync,
		clearColor:  common.DefaultClearColor,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Resize(size)
	return s
}

func (s *surfaceState) Resize(size common.Size) bool {
	if size.IsZero() {
		s.logger.Debug("ignoring zero-sized resize", "width", size.Width, "height", size.Height)
		return false
	}
	s.size = size
	return s.Reconfigure()
}

func (s *surfaceState) Reconfigure() bool {
	if s.size.IsZero() {
		return false
	}

	capabilities := s.target.capabilities()

	format := s.config.Format
	if !s.configured && len(capabilities.Formats) > 0 {
		format = capabilities.Formats[0]
	}

	s.config = wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      format,
		Width:       s.size.Width,
		Height:      s.size.Height,
		PresentMode: choosePresentMode(s.presentMode, capabilities.PresentModes),
	}
	if len(capabilities.AlphaModes) > 0 {
		s.config.AlphaMode = capabilities.AlphaModes[0]
	}

	s.target.configure(&s.config)
	s.configured = true

	s.logger.Debug("surface configured", "width", s.size.Width, "height", s.size.Height)
	return true
}

func (s *surfaceState) Size() common.Size {
	return s.size
}

func (s *surfaceState) Configured() bool {
	return s.configured
}

func (s *surfaceState) Format() wgpu.TextureFormat {
	return s.config.Format
}

func (s *surfaceState) Config() wgpu.SurfaceConfiguration {
	return s.config
}

func (s *surfaceState) RenderFrame(p pipeline.Pipeline) error {
	if !s.configured {
		return ErrSurfaceNotConfigured
	}
	if p != nil && !p.Built() {
		p = nil
	}
	return s.target.renderFrame(s.clearColor.WGPU(), p)
}

func (s *surfaceState) Release() {
	if s.target != nil {
		s.target.release()
		s.target = nil
	}
	s.configured = false
}

// choosePresentMode maps the requested mode to a wgpu present mode the surface supports,
// falling back to Fifo, which every surface must support.
func choosePresentMode(requested PresentMode, supported []wgpu.PresentMode) wgpu.PresentMode {
	want := wgpu.PresentModeFifo
	if requested == PresentModeUncapped {
		want = wgpu.PresentModeImmediate
	}
	if want == wgpu.PresentModeFifo || slices.Contains(supported, want) {
		return want
	}
	return wgpu.PresentModeFifo
}
