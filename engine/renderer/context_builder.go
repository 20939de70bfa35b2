package renderer

import "log/slog"

// ContextOption is a functional option used to configure the context bootstrap.
type ContextOption func(*renderContext)

// WithForceFallbackAdapter requests the software fallback adapter instead of a hardware one.
//
// Parameters:
//   - force: true to force the fallback adapter
//
// Returns:
//   - ContextOption: a function that sets the fallback adapter flag
func WithForceFallbackAdapter(force bool) ContextOption {
	return func(c *renderContext) {
		c.forceFallbackAdapter = force
	}
}

// WithLimits selects the device limits profile requested from the adapter.
//
// Parameters:
//   - profile: LimitsDefault or LimitsDownlevel
//
// Returns:
//   - ContextOption: a function that sets the limits profile
func WithLimits(profile LimitsProfile) ContextOption {
	return func(c *renderContext) {
		c.limits = profile
	}
}

// WithLogger sets the logger the bootstrap reports adapters and failures to.
func WithLogger(logger *slog.Logger) ContextOption {
	return func(c *renderContext) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLabel sets the label prefix of the GPU objects created by the context.
func WithLabel(label string) ContextOption {
	return func(c *renderContext) {
		c.label = label
	}
}
