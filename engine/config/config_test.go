package config

import (
	"log/slog"
	"testing"

	"github.com/Carmen-Shannon/blorf/engine/renderer"
	"github.com/google/go-cmp/cmp"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnvDefaults(t *testing.T) {
	got := FromEnv(envOf(nil))
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("FromEnv(empty) mismatch (-want +got):\n%s", diff)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	got := FromEnv(envOf(map[string]string{
		EnvLogLevel:             "debug",
		EnvWGPULogLevel:         " warn ",
		EnvForceFallbackAdapter: "1",
		EnvLimits:               "downlevel",
		EnvPresentMode:          "uncapped",
		EnvTriangle:             "0",
		EnvProfile:              "on",
	}))
	want := Config{
		LogLevel:             slog.LevelDebug,
		WGPULogLevel:         "warn",
		ForceFallbackAdapter: true,
		Limits:               renderer.LimitsDownlevel,
		PresentMode:          renderer.PresentModeUncapped,
		Triangle:             false,
		Profiling:            true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromEnv mismatch (-want +got):\n%s", diff)
	}
}

func TestFromEnvIgnoresGarbage(t *testing.T) {
	got := FromEnv(envOf(map[string]string{
		EnvLogLevel:             "shout",
		EnvForceFallbackAdapter: "yes please",
		EnvLimits:               "huge",
		EnvPresentMode:          "mailbox",
		EnvTriangle:             "maybe",
	}))
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Errorf("FromEnv(garbage) mismatch (-want +got):\n%s", diff)
	}
}
