package shader

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/gogpu/naga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const spirvMagic = 0x07230203

func TestTriangleEntryPoints(t *testing.T) {
	vs, fs := Triangle()

	assert.Equal(t, "triangle_vert", vs.Key())
	assert.Equal(t, ShaderTypeVertex, vs.ShaderType())
	assert.Equal(t, "vs_main", vs.EntryPoint())

	assert.Equal(t, "triangle_frag", fs.Key())
	assert.Equal(t, ShaderTypeFragment, fs.ShaderType())
	assert.Equal(t, "fs_main", fs.EntryPoint())

	assert.Equal(t, TriangleSource(), vs.Source())
	require.NotNil(t, vs.Module().WGSLDescriptor)
	assert.Equal(t, "triangle_vert", vs.Module().Label)
	assert.Equal(t, TriangleSource(), vs.Module().WGSLDescriptor.Code)
}

func TestParseEntryPointIgnoresComments(t *testing.T) {
	src := `
// @vertex fn commented_out() {}
/* @fragment
   fn also_commented() {} /* nested */ still comment */
@vertex
fn real_vs(@builtin(vertex_index) i: u32) -> @builtin(position) vec4<f32> {
    return vec4<f32>(0.0);
}
@fragment fn real_fs() -> @location(0) vec4<f32> { return vec4<f32>(1.0); }
`
	assert.Equal(t, "real_vs", parseEntryPoint(src, ShaderTypeVertex))
	assert.Equal(t, "real_fs", parseEntryPoint(src, ShaderTypeFragment))
	assert.Equal(t, "", parseEntryPoint(src, ShaderType(7)))
}

func TestNewShaderPanicsWithoutEntryPoint(t *testing.T) {
	assert.Panics(t, func() {
		NewShader("broken", ShaderTypeFragment, "@vertex fn vs() -> @builtin(position) vec4<f32> { return vec4<f32>(0.0); }")
	})
}

func TestTriangleCompilesToSPIRV(t *testing.T) {
	spirv, err := naga.Compile(TriangleSource())
	if err != nil {
		skipUnsupported(t, err)
		t.Fatalf("compile triangle: %v", err)
	}
	require.GreaterOrEqual(t, len(spirv), 4)
	assert.Equal(t, uint32(spirvMagic), binary.LittleEndian.Uint32(spirv[:4]))

	vs, _ := Triangle()
	assert.NoError(t, vs.Validate())
}

func TestValidateRejectsBrokenSource(t *testing.T) {
	s := &shader{key: "broken", source: "@fragment fn fs_main( -> {"}
	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShaderInvalid)
}

func skipUnsupported(t *testing.T, err error) {
	t.Helper()
	msg := err.Error()
	if strings.Contains(msg, "not yet implemented") || strings.Contains(msg, "not supported") {
		t.Skipf("naga backend limitation: %v", err)
	}
}
