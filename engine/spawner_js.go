//go:build js

package engine

import "log/slog"

// defaultSpawner runs tasks on a goroutine, which lets the browser resolve the WebGPU
// promises the task waits on while the loop goroutine is parked. There is nothing to stop.
func defaultSpawner(logger *slog.Logger) (Spawner, func()) {
	spawn := func(task func()) {
		logger.Debug("spawning background task")
		go task()
	}
	return spawn, func() {}
}
