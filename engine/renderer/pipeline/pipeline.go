package pipeline

import (
	"github.com/Carmen-Shannon/blorf/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

// pipeline is the implementation of the Pipeline interface.
// It holds the shader stages, the fixed-function state and, once built, the WebGPU render pipeline.
type pipeline struct {
	// pipelineKey is the unique identifier for this pipeline, used as the GPU object label
	pipelineKey string

	vertexShader, fragmentShader shader.Shader

	// renderPipeline is nil until the pipeline has been built on a device
	renderPipeline *wgpu.RenderPipeline

	cullMode   wgpu.CullMode
	topology   wgpu.PrimitiveTopology
	frontFace  wgpu.FrontFace
	writeMask  wgpu.ColorWriteMask
	blendState *wgpu.BlendState
}

// Pipeline defines a single render pipeline: one vertex and one fragment stage drawing into one
// color target, with no vertex buffers and no depth attachment. It is immutable after it is built.
type Pipeline interface {
	// PipelineKey returns the unique key associated with this pipeline.
	//
	// Returns:
	//   - string: the unique key for this pipeline
	PipelineKey() string

	// Shader retrieves the shader associated with the specified stage if it exists, nil otherwise.
	//
	// Parameters:
	//   - shaderType: the stage of shader to retrieve (vertex or fragment)
	//
	// Returns:
	//   - shader.Shader: the shader for the stage, or nil if not set
	Shader(shaderType shader.ShaderType) shader.Shader

	// RenderPipeline returns the underlying WebGPU render pipeline, or nil if it has not been built.
	//
	// Returns:
	//   - *wgpu.RenderPipeline: the built pipeline
	RenderPipeline() *wgpu.RenderPipeline

	// Built reports whether a WebGPU render pipeline has been attached.
	//
	// Returns:
	//   - bool: true once SetRenderPipeline has been called with a non-nil pipeline
	Built() bool

	// CullMode returns the cull mode configured for this pipeline.
	//
	// Returns:
	//   - wgpu.CullMode: the cull mode for this pipeline
	CullMode() wgpu.CullMode

	// Topology returns the primitive topology configured for this pipeline.
	//
	// Returns:
	//   - wgpu.PrimitiveTopology: the primitive topology for this pipeline
	Topology() wgpu.PrimitiveTopology

	// FrontFace returns the front face winding order configured for this pipeline.
	//
	// Returns:
	//   - wgpu.FrontFace: the front face winding order for this pipeline
	FrontFace() wgpu.FrontFace

	// WriteMask returns the color write mask configured for this pipeline.
	//
	// Returns:
	//   - wgpu.ColorWriteMask: the color write mask for this pipeline
	WriteMask() wgpu.ColorWriteMask

	// BlendState returns the blend state configured for this pipeline.
	//
	// Returns:
	//   - *wgpu.BlendState: the blend state, or nil to replace the target outright
	BlendState() *wgpu.BlendState

	// Descriptor assembles the WebGPU render pipeline descriptor for this pipeline.
	//
	// Parameters:
	//   - format: the texture format of the color target (the surface format)
	//   - layout: the pipeline layout to use
	//   - vs: the shader module holding the vertex entry point
	//   - fs: the shader module holding the fragment entry point
	//
	// Returns:
	//   - *wgpu.RenderPipelineDescriptor: the descriptor ready to pass to Device.CreateRenderPipeline
	Descriptor(format wgpu.TextureFormat, layout *wgpu.PipelineLayout, vs, fs *wgpu.ShaderModule) *wgpu.RenderPipelineDescriptor

	// SetRenderPipeline sets the render pipeline
	//
	// Parameters:
	//   - p: the WebGPU render pipeline to set
	SetRenderPipeline(p *wgpu.RenderPipeline)

	// Release frees the underlying WebGPU render pipeline, if any.
	Release()
}

var _ Pipeline = &pipeline{}

// NewPipeline is the entry point to create a new Pipeline interface.
//
// Parameters:
//   - pipelineKey: the unique key for this pipeline
//   - opts: a variadic list of PipelineBuilderOption functions to configure the pipeline
//
// Returns:
//   - Pipeline: a new Pipeline instance with the specified configuration
func NewPipeline(pipelineKey string, opts ...PipelineBuilderOption) Pipeline {
	p := &pipeline{
		pipelineKey: pipelineKey,
		cullMode:    wgpu.CullModeNone,
		topology:    wgpu.PrimitiveTopologyTriangleList,
		frontFace:   wgpu.FrontFaceCCW,
		writeMask:   wgpu.ColorWriteMaskAll,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Triangle creates the pipeline for the embedded hard-coded triangle.
//
// Returns:
//   - Pipeline: an unbuilt pipeline with the triangle's vertex and fragment stages
func Triangle() Pipeline {
	vs, fs := shader.Triangle()
	return NewPipeline("triangle",
		WithVertexShader(vs),
		WithFragmentShader(fs),
	)
}

func (p *pipeline) PipelineKey() string {
	return p.pipelineKey
}

func (p *pipeline) RenderPipeline() *wgpu.RenderPipeline {
	return p.renderPipeline
}

func (p *pipeline) Built() bool {
	return p.renderPipeline != nil
}

func (p *pipeline) CullMode() wgpu.CullMode {
	return p.cullMode
}

func (p *pipeline) Topology() wgpu.PrimitiveTopology {
	return p.topology
}

func (p *pipeline) FrontFace() wgpu.FrontFace {
	return p.frontFace
}

func (p *pipeline) WriteMask() wgpu.ColorWriteMask {
	return p.writeMask
}

func (p *pipeline) BlendState() *wgpu.BlendState {
	return p.blendState
}

func (p *pipeline) Shader(shaderType shader.ShaderType) shader.Shader {
	switch shaderType {
	case shader.ShaderTypeVertex:
		return p.vertexShader
	case shader.ShaderTypeFragment:
		return p.fragmentShader
	default:
		return nil
	}
}

func (p *pipeline) Descriptor(format wgpu.TextureFormat, layout *wgpu.PipelineLayout, vs, fs *wgpu.ShaderModule) *wgpu.RenderPipelineDescriptor {
	return &wgpu.RenderPipelineDescriptor{
		Label:  p.pipelineKey + " Render Pipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     vs,
			EntryPoint: p.vertexShader.EntryPoint(),
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  p.topology,
			FrontFace: p.frontFace,
			CullMode:  p.cullMode,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		Fragment: &wgpu.FragmentState{
			Module:     fs,
			EntryPoint: p.fragmentShader.EntryPoint(),
			Targets: []wgpu.ColorTargetState{{
				Format:    format,
				Blend:     p.blendState,
				WriteMask: p.writeMask,
			}},
		},
	}
}

func (p *pipeline) SetRenderPipeline(rp *wgpu.RenderPipeline) {
	p.renderPipeline = rp
}

func (p *pipeline) Release() {
	if p.renderPipeline != nil {
		p.renderPipeline.Release()
		p.renderPipeline = nil
	}
}
