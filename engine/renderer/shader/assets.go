package shader

import _ "embed"

//go:embed assets/triangle.wgsl
var triangleSource string

// TriangleSource returns the embedded WGSL for the hard-coded triangle.
func TriangleSource() string {
	return triangleSource
}

// Triangle returns the vertex and fragment stages of the embedded triangle program.
//
// Returns:
//   - Shader: the vertex stage (vs_main)
//   - Shader: the fragment stage (fs_main)
func Triangle() (Shader, Shader) {
	return NewShader("triangle_vert", ShaderTypeVertex, triangleSource),
		NewShader("triangle_frag", ShaderTypeFragment, triangleSource)
}
