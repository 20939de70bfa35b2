//go:build js

package renderer

// DefaultLimitsProfile is the profile used when none is configured. Browsers are treated as constrained.
const DefaultLimitsProfile = LimitsDownlevel
