package renderer

import (
	"errors"
	"fmt"
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing. Every surface supports it.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

func (m PresentMode) String() string {
	switch m {
	case PresentModeVSync:
		return "vsync"
	case PresentModeUncapped:
		return "uncapped"
	default:
		return fmt.Sprintf("PresentMode(%d)", int(m))
	}
}

// LimitsProfile selects the device limits requested during context bootstrap.
type LimitsProfile int

const (
	// LimitsDefault requests the WebGPU default limits.
	LimitsDefault LimitsProfile = iota

	// LimitsDownlevel requests the lowest common limits, for constrained targets such as
	// browsers backed by WebGL-class hardware.
	LimitsDownlevel
)

func (p LimitsProfile) String() string {
	switch p {
	case LimitsDefault:
		return "default"
	case LimitsDownlevel:
		return "downlevel"
	default:
		return fmt.Sprintf("LimitsProfile(%d)", int(p))
	}
}

// FrameStatus classifies a failure to acquire or present a frame.
type FrameStatus int

const (
	// FrameTimeout means no image became available in time. The frame is skipped.
	FrameTimeout FrameStatus = iota

	// FrameOutdated means the surface no longer matches the window and must be reconfigured.
	FrameOutdated

	// FrameLost means the surface was lost and must be reconfigured.
	FrameLost

	// FrameOutOfMemory means the GPU ran out of memory. The event loop terminates.
	FrameOutOfMemory
)

func (s FrameStatus) String() string {
	switch s {
	case FrameTimeout:
		return "timeout"
	case FrameOutdated:
		return "outdated"
	case FrameLost:
		return "lost"
	case FrameOutOfMemory:
		return "out of memory"
	default:
		return fmt.Sprintf("FrameStatus(%d)", int(s))
	}
}

// Retryable reports whether the next frame may succeed without terminating the loop.
func (s FrameStatus) Retryable() bool {
	return s != FrameOutOfMemory
}

// NeedsReconfigure reports whether the surface must be reconfigured before the next frame.
func (s FrameStatus) NeedsReconfigure() bool {
	return s == FrameOutdated || s == FrameLost
}

// FrameError is returned by Surface.RenderFrame when the next frame could not be acquired.
type FrameError struct {
	Status FrameStatus
	Err    error
}

func (e *FrameError) Error() string {
	if e.Err == nil {
		return "surface frame " + e.Status.String()
	}
	return fmt.Sprintf("surface frame %s: %v", e.Status, e.Err)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}

var (
	// ErrNoAdapter is returned when no GPU adapter satisfies the request.
	ErrNoAdapter = errors.New("renderer: no suitable GPU adapter")

	// ErrNoDevice is returned when the selected adapter refuses to create a device.
	ErrNoDevice = errors.New("renderer: failed to create GPU device")

	// ErrSurfaceNotConfigured is returned when a frame is requested from a surface that has
	// never been configured with a non-zero size.
	ErrSurfaceNotConfigured = errors.New("renderer: surface not configured")
)
