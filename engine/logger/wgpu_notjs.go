//go:build !js

package logger

import (
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// SetWGPULogLevel forwards a level name to the wgpu-native logger.
// Empty or unknown names leave the library default untouched.
//
// Parameters:
//   - name: one of off, error, warn, info, debug, trace (case-insensitive)
//
// Returns:
//   - bool: true if the level was applied
func SetWGPULogLevel(name string) bool {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "OFF":
		wgpu.SetLogLevel(wgpu.LogLevelOff)
	case "ERROR":
		wgpu.SetLogLevel(wgpu.LogLevelError)
	case "WARN":
		wgpu.SetLogLevel(wgpu.LogLevelWarn)
	case "INFO":
		wgpu.SetLogLevel(wgpu.LogLevelInfo)
	case "DEBUG":
		wgpu.SetLogLevel(wgpu.LogLevelDebug)
	case "TRACE":
		wgpu.SetLogLevel(wgpu.LogLevelTrace)
	default:
		return false
	}
	return true
}
