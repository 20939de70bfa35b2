//go:build js

package logger

// SetWGPULogLevel is a no-op on the web; the browser owns WebGPU diagnostics.
func SetWGPULogLevel(name string) bool {
	return false
}
