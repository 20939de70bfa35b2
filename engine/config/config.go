// Package config reads runtime tuning from the environment. There are no config files and no flags.
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/Carmen-Shannon/blorf/engine/logger"
	"github.com/Carmen-Shannon/blorf/engine/renderer"
)

// Environment variable names.
const (
	EnvLogLevel             = "BLORF_LOG"
	EnvWGPULogLevel         = "WGPU_LOG_LEVEL"
	EnvForceFallbackAdapter = "WGPU_FORCE_FALLBACK_ADAPTER"
	EnvLimits               = "BLORF_LIMITS"
	EnvPresentMode          = "BLORF_PRESENT_MODE"
	EnvTriangle             = "BLORF_TRIANGLE"
	EnvProfile              = "BLORF_PROFILE"
)

// Config is the resolved runtime configuration.
type Config struct {
	LogLevel             slog.Level
	WGPULogLevel         string
	ForceFallbackAdapter bool
	Limits               renderer.LimitsProfile
	PresentMode          renderer.PresentMode
	Triangle             bool
	Profiling            bool
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		LogLevel:    slog.LevelInfo,
		Limits:      renderer.DefaultLimitsProfile,
		PresentMode: renderer.PresentModeVSync,
		Triangle:    true,
	}
}

// FromEnv resolves a Config from getenv, falling back to Default for unset or invalid values.
//
// Parameters:
//   - getenv: the lookup function, normally os.Getenv (nil uses os.Getenv)
//
// Returns:
//   - Config: the resolved configuration
func FromEnv(getenv func(string) string) Config {
	if getenv == nil {
		getenv = os.Getenv
	}
	c := Default()
	c.LogLevel = logger.ParseLevel(getenv(EnvLogLevel), c.LogLevel)
	c.WGPULogLevel = strings.TrimSpace(getenv(EnvWGPULogLevel))
	c.ForceFallbackAdapter = getenv(EnvForceFallbackAdapter) == "1"
	c.Triangle = parseSwitch(getenv(EnvTriangle), c.Triangle)
	c.Profiling = parseSwitch(getenv(EnvProfile), c.Profiling)

	switch strings.ToLower(strings.TrimSpace(getenv(EnvLimits))) {
	case "default":
		c.Limits = renderer.LimitsDefault
	case "downlevel":
		c.Limits = renderer.LimitsDownlevel
	}

	switch strings.ToLower(strings.TrimSpace(getenv(EnvPresentMode))) {
	case "vsync", "fifo":
		c.PresentMode = renderer.PresentModeVSync
	case "uncapped", "immediate":
		c.PresentMode = renderer.PresentModeUncapped
	}

	return c
}

// parseSwitch reads "1/0", "true/false", "on/off" style values.
func parseSwitch(v string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "on", "yes":
		return true
	case "0", "false", "off", "no":
		return false
	default:
		return fallback
	}
}
