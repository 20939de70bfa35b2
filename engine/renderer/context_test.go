package renderer

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withoutWebGPU(t *testing.T) {
	t.Helper()
	createInstance = func(*wgpu.InstanceDescriptor) *wgpu.Instance { return nil }
	t.Cleanup(func() { createInstance = wgpu.CreateInstance })
}

func TestNewContextWithoutWebGPUReturnsNoAdapter(t *testing.T) {
	withoutWebGPU(t)

	var (
		ctx Context
		err error
	)
	require.NotPanics(t, func() {
		ctx, err = NewContext(&wgpu.SurfaceDescriptor{})
	})
	assert.Nil(t, ctx)
	assert.ErrorIs(t, err, ErrNoAdapter)
	assert.ErrorContains(t, err, "WebGPU not supported")
}

func TestDescribeAdaptersWithoutWebGPUReturnsNoAdapter(t *testing.T) {
	withoutWebGPU(t)

	info, err := DescribeAdapters()

	assert.ErrorIs(t, err, ErrNoAdapter)
	assert.Empty(t, info.Name)
}
