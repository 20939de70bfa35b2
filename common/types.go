// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import "github.com/cogentcore/webgpu/wgpu"

// Size is a window or surface extent in physical pixels.
type Size struct {
	// Width is the horizontal extent in pixels.
	Width uint32
	// Height is the vertical extent in pixels.
	Height uint32
}

// NewSize builds a Size from signed window dimensions. Negative values are clamped to zero.
//
// Parameters:
//   - width: the width in pixels as reported by the window system
//   - height: the height in pixels as reported by the window system
//
// Returns:
//   - Size: the clamped size
func NewSize(width, height int) Size {
	return Size{Width: uint32(max(width, 0)), Height: uint32(max(height, 0))}
}

// IsZero reports whether either dimension is zero. A surface is never configured with a zero Size.
func (s Size) IsZero() bool {
	return s.Width == 0 || s.Height == 0
}

// Color is a linear RGBA color with channels in the [0, 1] range.
type Color struct {
	R, G, B, A float64
}

// DefaultClearColor is the color the frame loop clears every frame to.
var DefaultClearColor = Color{R: 0.1, G: 0.2, B: 0.3, A: 1.0}

// WGPU converts the color to the wgpu representation used by render pass clear values.
func (c Color) WGPU() wgpu.Color {
	return wgpu.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
