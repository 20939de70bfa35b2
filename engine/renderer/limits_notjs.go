//go:build !js

package renderer

// DefaultLimitsProfile is the profile used when none is configured. Desktop adapters get the full defaults.
const DefaultLimitsProfile = LimitsDefault
