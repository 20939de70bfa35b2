//go:build !js

package engine

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultSpawnerRunsTasksUntilStopped(t *testing.T) {
	spawn, stop := defaultSpawner(slog.Default())
	done := make(chan int, 2)

	spawn(func() { done <- 1 })
	spawn(func() { done <- 2 })

	for _, want := range []int{1, 2} {
		select {
		case got := <-done:
			require.Equal(t, want, got)
		case <-time.After(time.Second):
			t.Fatalf("task %d did not run", want)
		}
	}
	stop()
}
