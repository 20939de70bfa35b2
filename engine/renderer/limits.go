package renderer

import "github.com/cogentcore/webgpu/wgpu"

// limitsFor returns the device limits requested for the given profile.
//
// The downlevel profile is the WebGL2-class limit set wgpu publishes as
// downlevel_webgl2_defaults: every GPU that can run WebGL2 satisfies it, and compute and
// storage resources are zeroed. MaxInterStageShaderVariables has no value in that set and
// stays undefined.
func limitsFor(profile LimitsProfile) wgpu.Limits {
	limits := wgpu.DefaultLimits()
	if profile != LimitsDownlevel {
		return limits
	}
	return wgpu.Limits{
		MaxTextureDimension1D:                     2048,
		MaxTextureDimension2D:                     2048,
		MaxTextureDimension3D:                     256,
		MaxTextureArrayLayers:                     256,
		MaxBindGroups:                             4,
		MaxBindingsPerBindGroup:                   1000,
		MaxDynamicUniformBuffersPerPipelineLayout: 8,
		MaxDynamicStorageBuffersPerPipelineLayout: 0,
		MaxSampledTexturesPerShaderStage:          16,
		MaxSamplersPerShaderStage:                 16,
		MaxStorageBuffersPerShaderStage:           0,
		MaxStorageTexturesPerShaderStage:          0,
		MaxUniformBuffersPerShaderStage:           11,
		MaxUniformBufferBindingSize:               16 << 10,
		MaxStorageBufferBindingSize:               0,
		MinUniformBufferOffsetAlignment:           256,
		MinStorageBufferOffsetAlignment:           256,
		MaxVertexBuffers:                          8,
		MaxBufferSize:                             256 << 20,
		MaxVertexAttributes:                       16,
		MaxVertexBufferArrayStride:                255,
		MaxInterStageShaderComponents:             31,
		MaxInterStageShaderVariables:              limits.MaxInterStageShaderVariables,
		MaxColorAttachments:                       8,
		MaxColorAttachmentBytesPerSample:          32,
		MaxComputeWorkgroupStorageSize:            0,
		MaxComputeInvocationsPerWorkgroup:         0,
		MaxComputeWorkgroupSizeX:                  0,
		MaxComputeWorkgroupSizeY:                  0,
		MaxComputeWorkgroupSizeZ:                  0,
		MaxComputeWorkgroupsPerDimension:          0,
		MaxPushConstantSize:                       0,
	}
}
