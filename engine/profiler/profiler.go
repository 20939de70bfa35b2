package profiler

import (
	"log/slog"
	"runtime"
	"time"
)

// Profiler tracks frame outcomes and memory statistics for performance monitoring.
// It logs a summary at a configurable interval.
type Profiler struct {
	logger         *slog.Logger
	now            func() time.Time
	updateInterval time.Duration
	lastTime       time.Time
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64

	// counters since the last report
	presented    int
	skipped      int
	reconfigured int
}

// Option configures a Profiler.
type Option func(*Profiler)

// WithLogger sets the logger reports are written to.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Profiler) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithInterval sets the reporting interval. Non-positive values keep the default of one second.
func WithInterval(d time.Duration) Option {
	return func(p *Profiler) {
		if d > 0 {
			p.updateInterval = d
		}
	}
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(p *Profiler) {
		if now != nil {
			p.now = now
		}
	}
}

// NewProfiler creates a new Profiler. The update interval defaults to 1 second.
//
// Parameters:
//   - opts: Option functions to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(opts ...Option) *Profiler {
	p := &Profiler{
		logger:         slog.Default(),
		now:            time.Now,
		updateInterval: time.Second,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.lastTime = p.now()
	return p
}

// FramePresented records a frame that reached the screen.
//
// Returns:
//   - bool: true if stats were logged on this call
func (p *Profiler) FramePresented() bool {
	p.presented++
	return p.tick()
}

// FrameSkipped records a redraw that produced no frame (not ready, timeout, or lost surface).
//
// Returns:
//   - bool: true if stats were logged on this call
func (p *Profiler) FrameSkipped() bool {
	p.skipped++
	return p.tick()
}

// SurfaceReconfigured records a surface reconfiguration.
func (p *Profiler) SurfaceReconfigured() {
	p.reconfigured++
}

// Snapshot returns the counters accumulated since the last report.
//
// Returns:
//   - presented: frames presented
//   - skipped: redraws that produced no frame
//   - reconfigured: surface reconfigurations
func (p *Profiler) Snapshot() (presented, skipped, reconfigured int) {
	return p.presented, p.skipped, p.reconfigured
}

// tick logs performance statistics when the update interval has elapsed.
// Statistics include FPS, frame outcomes, heap usage, allocation rate, GC count/pause times, total memory.
func (p *Profiler) tick() bool {
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	fps := float64(p.presented) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	// Alloc: Bytes of allocated heap objects (live memory)
	// TotalAlloc: Cumulative bytes allocated for heap objects (increases forever, tracks churn)
	// Sys: Total bytes of memory obtained from the OS (actual process footprint)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	sysMB := float64(p.memStats.Sys) / 1024 / 1024
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	gcCount := p.memStats.NumGC
	var lastPauseUs, maxPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of last 256 GC pauses
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

		startIdx := p.lastGCCount
		if gcCount-startIdx > 256 {
			startIdx = gcCount - 256
		}
		for i := startIdx; i < gcCount; i++ {
			maxPauseUs = max(maxPauseUs, p.memStats.PauseNs[i%256]/1000)
		}
	}

	p.logger.Info("frame stats",
		slog.Float64("fps", fps),
		slog.Int("presented", p.presented),
		slog.Int("skipped", p.skipped),
		slog.Int("reconfigured", p.reconfigured),
		slog.Float64("heap_mb", allocMB),
		slog.Float64("alloc_rate_mb_s", allocRateMB),
		slog.Uint64("gc", uint64(gcCount)),
		slog.Uint64("gc_last_pause_us", lastPauseUs),
		slog.Uint64("gc_max_pause_us", maxPauseUs),
		slog.Float64("sys_mb", sysMB),
	)

	p.presented, p.skipped, p.reconfigured = 0, 0, 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
