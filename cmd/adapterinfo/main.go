// Command adapterinfo reports the GPU adapters WebGPU can see and the one it would select.
package main

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/Carmen-Shannon/blorf/engine/config"
	"github.com/Carmen-Shannon/blorf/engine/logger"
	"github.com/Carmen-Shannon/blorf/engine/renderer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	cfg := config.FromEnv(os.Getenv)
	log := logger.New(logger.Options{Level: cfg.LogLevel})
	slog.SetDefault(log)
	if cfg.WGPULogLevel != "" {
		logger.SetWGPULogLevel(cfg.WGPULogLevel)
	}

	info, err := renderer.DescribeAdapters(
		renderer.WithForceFallbackAdapter(cfg.ForceFallbackAdapter),
		renderer.WithLogger(log),
	)
	if err != nil {
		log.Error("no adapter", "error", err)
		os.Exit(1)
	}
	log.Info("done", "adapter", info.Name)
}
