package renderer

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/blorf/common"
	"github.com/Carmen-Shannon/blorf/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTarget struct {
	caps       wgpu.SurfaceCapabilities
	configures []wgpu.SurfaceConfiguration
	frames     []wgpu.Color
	drew       []bool
	frameErr   error
	released   bool
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{
		caps: wgpu.SurfaceCapabilities{
			Formats:      []wgpu.TextureFormat{wgpu.TextureFormatBGRA8UnormSrgb, wgpu.TextureFormatRGBA8Unorm},
			PresentModes: []wgpu.PresentMode{wgpu.PresentModeFifo},
		},
	}
}

func (f *fakeTarget) capabilities() wgpu.SurfaceCapabilities {
	return f.caps
}

func (f *fakeTarget) configure(config *wgpu.SurfaceConfiguration) {
	f.configures = append(f.configures, *config)
}

func (f *fakeTarget) renderFrame(clear wgpu.Color, p pipeline.Pipeline) error {
	if f.frameErr != nil {
		return f.frameErr
	}
	f.frames = append(f.frames, clear)
	f.drew = append(f.drew, p != nil)
	return nil
}

func (f *fakeTarget) release() {
	f.released = true
}

func sizesOf(configs []wgpu.SurfaceConfiguration) []common.Size {
	out := make([]common.Size, 0, len(configs))
	for _, c := range configs {
		out = append(out, common.Size{Width: c.Width, Height: c.Height})
	}
	return out
}

func TestNewSurfaceWithZeroSizeStaysUnconfigured(t *testing.T) {
	target := newFakeTarget()
	s := newSurfaceState(target, common.Size{})

	assert.False(t, s.Configured())
	assert.Empty(t, target.configures)
	assert.ErrorIs(t, s.RenderFrame(nil), ErrSurfaceNotConfigured)
	assert.False(t, s.Reconfigure())
	assert.Empty(t, target.frames)
}

func TestResizeIgnoresZeroDimensions(t *testing.T) {
	target := newFakeTarget()
	s := newSurfaceState(target, common.Size{Width: 800, Height: 600})
	require.Len(t, target.configures, 1)
	before := s.Config()

	for _, size := range []common.Size{{Width: 0, Height: 600}, {Width: 800, Height: 0}, {}} {
		assert.False(t, s.Resize(size), "size %+v", size)
	}

	assert.Len(t, target.configures, 1)
	assert.Equal(t, common.Size{Width: 800, Height: 600}, s.Size())
	if diff := cmp.Diff(before, s.Config()); diff != "" {
		t.Errorf("configuration changed (-before +after):\n%s", diff)
	}
}

func TestResizeStoresExactDimensions(t *testing.T) {
	target := newFakeTarget()
	s := newSurfaceState(target, common.Size{})

	assert.True(t, s.Resize(common.Size{Width: 1024, Height: 768}))
	assert.True(t, s.Resize(common.Size{Width: 1, Height: 3}))

	assert.Equal(t, common.Size{Width: 1, Height: 3}, s.Size())
	want := []common.Size{{Width: 1024, Height: 768}, {Width: 1, Height: 3}}
	if diff := cmp.Diff(want, sizesOf(target.configures)); diff != "" {
		t.Errorf("configured sizes mismatch (-want +got):\n%s", diff)
	}

	cfg := s.Config()
	assert.Equal(t, wgpu.TextureUsageRenderAttachment, cfg.Usage)
	assert.Equal(t, wgpu.TextureFormatBGRA8UnormSrgb, cfg.Format)
	assert.Equal(t, wgpu.TextureFormatBGRA8UnormSrgb, s.Format())
	assert.Equal(t, wgpu.PresentModeFifo, cfg.PresentMode)
}

func TestReconfigureUsesLastValidSize(t *testing.T) {
	target := newFakeTarget()
	s := newSurfaceState(target, common.Size{Width: 640, Height: 480})
	s.Resize(common.Size{Width: 0, Height: 0})

	require.True(t, s.Reconfigure())

	want := []common.Size{{Width: 640, Height: 480}, {Width: 640, Height: 480}}
	if diff := cmp.Diff(want, sizesOf(target.configures)); diff != "" {
		t.Errorf("configured sizes mismatch (-want +got):\n%s", diff)
	}
}

func TestPresentModeFallsBackToFifo(t *testing.T) {
	target := newFakeTarget()
	s := newSurfaceState(target, common.Size{Width: 10, Height: 10}, WithPresentMode(PresentModeUncapped))
	assert.Equal(t, wgpu.PresentModeFifo, s.Config().PresentMode)

	target = newFakeTarget()
	target.caps.PresentModes = append(target.caps.PresentModes, wgpu.PresentModeImmediate)
	s = newSurfaceState(target, common.Size{Width: 10, Height: 10}, WithPresentMode(PresentModeUncapped))
	assert.Equal(t, wgpu.PresentModeImmediate, s.Config().PresentMode)
}

func TestRenderFrameClearsToConfiguredColor(t *testing.T) {
	target := newFakeTarget()
	s := newSurfaceState(target, common.Size{Width: 10, Height: 10})

	require.NoError(t, s.RenderFrame(nil))
	assert.Equal(t, []wgpu.Color{{R: 0.1, G: 0.2, B: 0.3, A: 1.0}}, target.frames)

	target = newFakeTarget()
	s = newSurfaceState(target, common.Size{Width: 10, Height: 10}, WithClearColor(common.Color{R: 1, A: 1}))
	require.NoError(t, s.RenderFrame(nil))
	assert.Equal(t, []wgpu.Color{{R: 1, A: 1}}, target.frames)
}

func TestRenderFrameSkipsUnbuiltPipeline(t *testing.T) {
	target := newFakeTarget()
	s := newSurfaceState(target, common.Size{Width: 10, Height: 10})

	require.NoError(t, s.RenderFrame(pipeline.Triangle()))
	assert.Equal(t, []bool{false}, target.drew)
}

func TestRenderFramePassesFrameErrors(t *testing.T) {
	target := newFakeTarget()
	target.frameErr = &FrameError{Status: FrameLost}
	s := newSurfaceState(target, common.Size{Width: 10, Height: 10})

	err := s.RenderFrame(nil)
	var frameErr *FrameError
	require.True(t, errors.As(err, &frameErr))
	assert.Equal(t, FrameLost, frameErr.Status)
}

func TestReleaseReleasesTarget(t *testing.T) {
	target := newFakeTarget()
	s := newSurfaceState(target, common.Size{Width: 10, Height: 10})
	s.Release()

	assert.True(t, target.released)
	assert.False(t, s.Configured())
	assert.ErrorIs(t, s.RenderFrame(nil), ErrSurfaceNotConfigured)
}
