package shader

import (
	"errors"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gogpu/naga"
)

// ShaderType identifies the pipeline stage a shader entry point belongs to.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex shader type, used for vertex processing in render pipelines.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment shader type, used for fragment processing in pair with a vertex shader.
	ShaderTypeFragment
)

func (t ShaderType) String() string {
	switch t {
	case ShaderTypeVertex:
		return "vertex"
	case ShaderTypeFragment:
		return "fragment"
	default:
		return fmt.Sprintf("ShaderType(%d)", int(t))
	}
}

// ErrShaderInvalid is returned when WGSL source fails offline validation.
var ErrShaderInvalid = errors.New("shader: invalid WGSL")

// shader is the implementation of the Shader interface.
type shader struct {
	key        string
	source     string
	shaderType ShaderType
	entryPoint string
	module     *wgpu.ShaderModuleDescriptor
}

// Shader is one WGSL entry point of a fixed, build-time embedded program.
// Vertex and fragment stages may share the same source; each Shader resolves its own entry point.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used as the module label.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the WGSL shader source code.
	//
	// Returns:
	//   - string: the WGSL source code of the shader
	Source() string

	// EntryPoint returns the entry point name for this shader's stage.
	//
	// Returns:
	//   - string: the entry point name (e.g. "vs_main")
	EntryPoint() string

	// ShaderType returns the stage of the shader.
	//
	// Returns:
	//   - ShaderType: ShaderTypeVertex or ShaderTypeFragment
	ShaderType() ShaderType

	// Module returns the wgpu.ShaderModuleDescriptor for this shader.
	//
	// Returns:
	//   - *wgpu.ShaderModuleDescriptor: the descriptor containing the WGSL code and label
	Module() *wgpu.ShaderModuleDescriptor

	// Validate compiles the source offline to SPIR-V, catching WGSL errors before
	// the source reaches the GPU driver.
	//
	// Returns:
	//   - error: an error wrapping ErrShaderInvalid if compilation fails
	Validate() error
}

var _ Shader = &shader{}

// NewShader creates a Shader from WGSL source. The entry point is parsed from the source
// for the given stage; a source with no matching entry point panics, since shader sources
// are fixed at build time.
//
// Parameters:
//   - key: a unique identifier for the shader
//   - shaderType: the stage this shader is used for
//   - source: the WGSL source code
//
// Returns:
//   - Shader: the new Shader
func NewShader(key string, shaderType ShaderType, source string) Shader {
	entry := parseEntryPoint(source, shaderType)
	if entry == "" {
		panic(fmt.Sprintf("shader: %s has no @%s entry point", key, shaderType))
	}
	return &shader{
		key:        key,
		source:     source,
		shaderType: shaderType,
		entryPoint: entry,
		module: &wgpu.ShaderModuleDescriptor{
			Label: key,
			WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
				Code: source,
			},
		},
	}
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) EntryPoint() string {
	return s.entryPoint
}

func (s *shader) ShaderType() ShaderType {
	return s.shaderType
}

func (s *shader) Module() *wgpu.ShaderModuleDescriptor {
	return s.module
}

func (s *shader) Validate() error {
	spirv, err := naga.Compile(s.source)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrShaderInvalid, s.key, err)
	}
	if len(spirv) == 0 {
		return fmt.Errorf("%w: %s: empty SPIR-V output", ErrShaderInvalid, s.key)
	}
	return nil
}
