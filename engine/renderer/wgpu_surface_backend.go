package renderer

import (
	"strings"

	"github.com/Carmen-Shannon/blorf/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

// wgpuSurfaceTarget drives a *wgpu.Surface with the device and queue of its Context.
type wgpuSurfaceTarget struct {
	surface *wgpu.Surface
	adapter *wgpu.Adapter
	device  *wgpu.Device
	queue   *wgpu.Queue
}

var _ surfaceTarget = &wgpuSurfaceTarget{}

func (t *wgpuSurfaceTarget) capabilities() wgpu.SurfaceCapabilities {
	return t.surface.GetCapabilities(t.adapter)
}

func (t *wgpuSurfaceTarget) configure(config *wgpu.SurfaceConfiguration) {
	t.surface.Configure(t.adapter, t.device, config)
}

func (t *wgpuSurfaceTarget) renderFrame(clear wgpu.Color, p pipeline.Pipeline) error {
	surfaceTexture, err := t.surface.GetCurrentTexture()
	if err != nil {
		return classifyAcquireError(err)
	}
	defer surfaceTexture.Release()

	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		return err
	}
	defer view.Release()

	encoder, err := t.device.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: clear,
			},
		},
	})
	if p != nil {
		pass.SetPipeline(p.RenderPipeline())
		pass.Draw(3, 1, 0, 0)
	}
	pass.End()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		return err
	}
	defer commandBuffer.Release()

	t.queue.Submit(commandBuffer)
	t.surface.Present()
	return nil
}

func (t *wgpuSurfaceTarget) release() {
	if t.surface != nil {
		t.surface.Release()
		t.surface = nil
	}
}

// classifyAcquireError maps a GetCurrentTexture failure onto a FrameStatus. wgpu reports the
// surface texture status only through the error text. Unrecognized failures are treated as an
// outdated surface so the loop reconfigures and retries instead of exiting.
func classifyAcquireError(err error) *FrameError {
	msg := strings.ToLower(err.Error())
	status := FrameOutdated
	switch {
	case strings.Contains(msg, "out of memory"), strings.Contains(msg, "outofmemory"):
		status = FrameOutOfMemory
	case strings.Contains(msg, "timeout"):
		status = FrameTimeout
	case strings.Contains(msg, "lost"):
		status = FrameLost
	case strings.Contains(msg, "outdated"):
		status = FrameOutdated
	}
	return &FrameError{Status: status, Err: err}
}
