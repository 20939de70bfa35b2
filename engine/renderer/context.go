package renderer

import (
	"fmt"
	"log/slog"

	"github.com/Carmen-Shannon/blorf/common"
	"github.com/Carmen-Shannon/blorf/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/blorf/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// createInstance is wgpu.CreateInstance, replaceable in tests. It returns nil when the platform
// has no WebGPU, as a browser without navigator.gpu does.
var createInstance = wgpu.CreateInstance

// renderContext is the implementation of the Context interface.
type renderContext struct {
	label                string
	forceFallbackAdapter bool
	limits               LimitsProfile
	logger               *slog.Logger

	instance *wgpu.Instance
	surface  *wgpu.Surface
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue
	info     AdapterInfo

	// bound is the single SurfaceState handed out for the window surface
	bound *surfaceState
}

// Context owns the GPU objects negotiated for one window: the instance, the window surface,
// the adapter, and the device/queue pair. A Context is created off the event loop by NewContext
// and afterwards used only from the loop thread.
type Context interface {
	// Info returns a description of the selected adapter.
	//
	// Returns:
	//   - AdapterInfo: the selected adapter's description
	Info() AdapterInfo

	// Device returns the logical device.
	//
	// Returns:
	//   - *wgpu.Device: the device created during bootstrap
	Device() *wgpu.Device

	// Queue returns the device queue.
	//
	// Returns:
	//   - *wgpu.Queue: the queue command buffers are submitted to
	Queue() *wgpu.Queue

	// CreateSurface binds the window surface created during bootstrap to a SurfaceState.
	// The surface is configured immediately when size is non-zero; otherwise it stays
	// unconfigured until the first non-zero Resize. Only one SurfaceState exists per Context;
	// a second call panics.
	//
	// Parameters:
	//   - size: the current window size
	//   - opts: SurfaceOption functions applied before the first configuration
	//
	// Returns:
	//   - Surface: the SurfaceState for the window
	CreateSurface(size common.Size, opts ...SurfaceOption) Surface

	// BuildPipeline creates the WebGPU render pipeline for p, targeting the given color format,
	// and attaches it to p. WGSL that fails offline validation is logged and still handed to
	// the driver, which has the final say.
	//
	// Parameters:
	//   - p: the pipeline to build
	//   - format: the surface texture format the pipeline renders into
	//
	// Returns:
	//   - error: an error if a shader module, the layout, or the pipeline could not be created
	BuildPipeline(p pipeline.Pipeline, format wgpu.TextureFormat) error

	// Release frees the surface, queue, device, adapter and instance, in that order.
	Release()
}

var _ Context = &renderContext{}

// NewContext runs the context bootstrap against the given window surface: it creates the instance,
// logs the available adapters (native only), creates the surface, requests a compatible adapter and
// then a device and queue. Any failure releases everything created so far.
//
// Parameters:
//   - desc: the surface descriptor of the window to render into
//   - opts: ContextOption functions to configure the bootstrap
//
// Returns:
//   - Context: the ready context
//   - error: an error wrapping ErrNoAdapter or ErrNoDevice on failure
func NewContext(desc *wgpu.SurfaceDescriptor, opts ...ContextOption) (Context, error) {
	c := &renderContext{
		label:  "blorf",
		limits: DefaultLimitsProfile,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.bootstrap(desc); err != nil {
		c.Release()
		return nil, err
	}
	return c, nil
}

func (c *renderContext) bootstrap(desc *wgpu.SurfaceDescriptor) error {
	c.instance = createInstance(nil)
	if c.instance == nil {
		return fmt.Errorf("%w: WebGPU not supported", ErrNoAdapter)
	}

	for _, info := range listAdapters(c.instance) {
		c.logger.Info("available adapter", "adapter", info)
	}

	c.surface = c.instance.CreateSurface(desc)

	adapter, err := c.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: c.forceFallbackAdapter,
		CompatibleSurface:    c.surface,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoAdapter, err)
	}
	if adapter == nil {
		return ErrNoAdapter
	}
	c.adapter = adapter
	c.info = adapterInfo(adapter)
	c.logger.Info("selected adapter", "adapter", c.info)

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: c.label + " device",
		RequiredLimits: &wgpu.RequiredLimits{
			Limits: limitsFor(c.limits),
		},
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoDevice, err)
	}
	if device == nil {
		return ErrNoDevice
	}
	c.device = device
	c.queue = device.GetQueue()

	c.logger.Debug("device ready", "limits", c.limits.String())
	return nil
}

func (c *renderContext) Info() AdapterInfo {
	return c.info
}

func (c *renderContext) Device() *wgpu.Device {
	return c.device
}

func (c *renderContext) Queue() *wgpu.Queue {
	return c.queue
}

func (c *renderContext) CreateSurface(size common.Size, opts ...SurfaceOption) Surface {
	if c.bound != nil {
		panic("renderer: window surface already bound")
	}
	target := &wgpuSurfaceTarget{
		surface: c.surface,
		adapter: c.adapter,
		device:  c.device,
		queue:   c.queue,
	}
	opts = append([]SurfaceOption{WithSurfaceLogger(c.logger)}, opts...)
	c.bound = newSurfaceState(target, size, opts...)
	return c.bound
}

func (c *renderContext) BuildPipeline(p pipeline.Pipeline, format wgpu.TextureFormat) error {
	vertexShader := p.Shader(shader.ShaderTypeVertex)
	fragmentShader := p.Shader(shader.ShaderTypeFragment)
	if vertexShader == nil || fragmentShader == nil {
		return fmt.Errorf("pipeline %s: vertex and fragment shaders must be set", p.PipelineKey())
	}

	for _, s := range []shader.Shader{vertexShader, fragmentShader} {
		if err := s.Validate(); err != nil {
			c.logger.Warn("offline shader validation failed", "shader", s.Key(), "error", err)
		}
	}

	vs, err := c.device.CreateShaderModule(vertexShader.Module())
	if err != nil {
		return fmt.Errorf("pipeline %s: vertex module: %w", p.PipelineKey(), err)
	}
	defer vs.Release()

	fs, err := c.device.CreateShaderModule(fragmentShader.Module())
	if err != nil {
		return fmt.Errorf("pipeline %s: fragment module: %w", p.PipelineKey(), err)
	}
	defer fs.Release()

	layout, err := c.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label: p.PipelineKey(),
	})
	if err != nil {
		return fmt.Errorf("pipeline %s: layout: %w", p.PipelineKey(), err)
	}
	defer layout.Release()

	created, err := c.device.CreateRenderPipeline(p.Descriptor(format, layout, vs, fs))
	if err != nil {
		return fmt.Errorf("pipeline %s: %w", p.PipelineKey(), err)
	}
	p.SetRenderPipeline(created)

	c.logger.Debug("pipeline built", "pipeline", p.PipelineKey(), "format", format)
	return nil
}

func (c *renderContext) Release() {
	if c.bound != nil {
		c.bound.Release()
		c.bound = nil
		c.surface = nil
	}
	if c.queue != nil {
		c.queue.Release()
		c.queue = nil
	}
	if c.device != nil {
		c.device.Release()
		c.device = nil
	}
	if c.adapter != nil {
		c.adapter.Release()
		c.adapter = nil
	}
	if c.surface != nil {
		c.surface.Release()
		c.surface = nil
	}
	if c.instance != nil {
		c.instance.Release()
		c.instance = nil
	}
}

// DescribeAdapters logs every adapter the platform exposes and the one a surfaceless request
// selects, then releases everything. It backs the adapter report command.
//
// Parameters:
//   - opts: ContextOption functions; only the fallback flag and the logger are used
//
// Returns:
//   - AdapterInfo: the selected adapter
//   - error: an error wrapping ErrNoAdapter if no adapter is available
func DescribeAdapters(opts ...ContextOption) (AdapterInfo, error) {
	c := &renderContext{logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}

	instance := createInstance(nil)
	if instance == nil {
		return AdapterInfo{}, fmt.Errorf("%w: WebGPU not supported", ErrNoAdapter)
	}
	defer instance.Release()

	for _, info := range listAdapters(instance) {
		c.logger.Info("available adapter", "adapter", info)
	}

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: c.forceFallbackAdapter,
	})
	if err != nil {
		return AdapterInfo{}, fmt.Errorf("%w: %w", ErrNoAdapter, err)
	}
	if adapter == nil {
		return AdapterInfo{}, ErrNoAdapter
	}
	defer adapter.Release()

	info := adapterInfo(adapter)
	c.logger.Info("selected adapter", "adapter", info)
	return info, nil
}
