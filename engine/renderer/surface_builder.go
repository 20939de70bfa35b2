package renderer

import (
	"log/slog"

	"github.com/Carmen-Shannon/blorf/common"
)

// SurfaceOption is a functional option used to configure a Surface before its first configuration.
type SurfaceOption func(*surfaceState)

// WithPresentMode sets the requested present mode. Modes the surface does not report fall
// back to vsync.
//
// Parameters:
//   - mode: PresentModeVSync or PresentModeUncapped
//
// Returns:
//   - SurfaceOption: a function that sets the present mode
func WithPresentMode(mode PresentMode) SurfaceOption {
	return func(s *surfaceState) {
		s.presentMode = mode
	}
}

// WithClearColor sets the color every frame is cleared to.
//
// Parameters:
//   - c: the clear color
//
// Returns:
//   - SurfaceOption: a function that sets the clear color
func WithClearColor(c common.Color) SurfaceOption {
	return func(s *surfaceState) {
		s.clearColor = c
	}
}

// WithSurfaceLogger sets the logger used for configuration messages.
func WithSurfaceLogger(logger *slog.Logger) SurfaceOption {
	return func(s *surfaceState) {
		if logger != nil {
			s.logger = logger
		}
	}
}
