//go:build !js

package engine

import (
	"log/slog"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
)

// defaultSpawner runs tasks on a single-worker dynamic pool. The worker lives until stop is
// called; a task already running finishes first.
func defaultSpawner(logger *slog.Logger) (Spawner, func()) {
	pool := worker.NewDynamicWorkerPool(1, 4, time.Second)
	taskID := 0
	spawn := func(task func()) {
		id := taskID
		taskID++
		logger.Debug("spawning background task", "task", id)
		pool.SubmitTask(worker.Task{
			ID: id,
			Do: func() (any, error) {
				task()
				return nil, nil
			},
		})
	}
	return spawn, pool.Stop
}
