// Command blorf opens a window, negotiates a WebGPU device and draws a triangle every frame.
// Tuning comes from the environment; see the config package.
package main

import (
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/Carmen-Shannon/blorf/engine"
	"github.com/Carmen-Shannon/blorf/engine/config"
	"github.com/Carmen-Shannon/blorf/engine/logger"
	"github.com/Carmen-Shannon/blorf/engine/window"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	cfg := config.FromEnv(os.Getenv)

	log := logger.New(logger.Options{Level: cfg.LogLevel})
	slog.SetDefault(log)
	if cfg.WGPULogLevel != "" && !logger.SetWGPULogLevel(cfg.WGPULogLevel) {
		log.Warn("ignoring wgpu log level", "value", cfg.WGPULogLevel)
	}

	log.Info("starting",
		"limits", cfg.Limits.String(),
		"present_mode", cfg.PresentMode.String(),
		"triangle", cfg.Triangle,
		"force_fallback_adapter", cfg.ForceFallbackAdapter,
	)

	w := window.NewWindow(window.WithTitle("blorf"))
	e := engine.NewEngine(
		engine.WithWindow(w),
		engine.WithConfig(cfg),
		engine.WithLogger(log),
	)
	err := e.Run()
	closeWindow(log, w)
	if err != nil {
		log.Error("exiting", "error", err)
		os.Exit(1)
	}
}

// closeWindow closes w, logging rather than returning a failure: the process is exiting.
func closeWindow(log *slog.Logger, w io.Closer) {
	if err := w.Close(); err != nil {
		log.Warn("closing window", "error", err)
	}
}
