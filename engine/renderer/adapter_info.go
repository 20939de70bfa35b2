package renderer

import "log/slog"

// AdapterInfo describes a GPU adapter for logging and the adapter report.
type AdapterInfo struct {
	// Name is the adapter's human readable name, when the platform exposes one.
	Name string
	// Details is the platform's full adapter description.
	Details string
}

// LogValue implements slog.LogValuer.
func (i AdapterInfo) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", i.Name),
		slog.String("details", i.Details),
	)
}

func (i AdapterInfo) String() string {
	if i.Details == "" {
		return i.Name
	}
	return i.Name + " (" + i.Details + ")"
}
