package shader

import (
	"regexp"
	"strings"
)

var (
	// vertexEntryRegex matches @vertex functions and captures the entry point name
	vertexEntryRegex = regexp.MustCompile(`(?s)@vertex\b.*?\bfn\s+(\w+)`)

	// fragmentEntryRegex matches @fragment functions and captures the entry point name
	fragmentEntryRegex = regexp.MustCompile(`(?s)@fragment\b.*?\bfn\s+(\w+)`)
)

// parseEntryPoint returns the name of the first entry point for the given stage,
// or an empty string if the source has none.
//
// Parameters:
//   - source: the raw WGSL source code string
//   - shaderType: the stage to look up
//
// Returns:
//   - string: the entry point name
func parseEntryPoint(source string, shaderType ShaderType) string {
	cleaned := stripComments(source)

	var re *regexp.Regexp
	switch shaderType {
	case ShaderTypeVertex:
		re = vertexEntryRegex
	case ShaderTypeFragment:
		re = fragmentEntryRegex
	default:
		return ""
	}

	if match := re.FindStringSubmatch(cleaned); match != nil {
		return match[1]
	}
	return ""
}

// stripComments removes all WGSL comments (line and block) from the source.
func stripComments(source string) string {
	return stripLineComments(stripBlockComments(source))
}

// stripLineComments removes single-line // comments.
func stripLineComments(source string) string {
	var sb strings.Builder
	for line := range strings.SplitSeq(source, "\n") {
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = line[:idx]
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// stripBlockComments removes /* ... */ comments, honoring nesting as WGSL does.
func stripBlockComments(source string) string {
	var sb strings.Builder
	sb.Grow(len(source))
	depth := 0
	for i := 0; i < len(source); i++ {
		if i+1 < len(source) {
			if source[i] == '/' && source[i+1] == '*' {
				depth++
				i++
				continue
			}
			if source[i] == '*' && source[i+1] == '/' && depth > 0 {
				depth--
				i++
				continue
			}
		}
		if depth == 0 {
			sb.WriteByte(source[i])
		}
	}
	return sb.String()
}
