package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// The web window translates KeyboardEvent.key names to the same values.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeySpace = 32  // Spacebar (ASCII)
	KeyQ     = 81  // Q key (ASCII)
	KeyEsc   = 256 // Escape key (GLFW)
	KeyEnter = 257 // Enter key (GLFW)
)

// webKeyCodes maps KeyboardEvent.key values to the GLFW-compatible codes above.
var webKeyCodes = map[string]uint32{
	" ":      KeySpace,
	"q":      KeyQ,
	"Q":      KeyQ,
	"Escape": KeyEsc,
	"Enter":  KeyEnter,
}

// KeyFromWebName translates a DOM KeyboardEvent.key value into a key code.
//
// Parameters:
//   - name: the KeyboardEvent.key string
//
// Returns:
//   - uint32: the matching key code
//   - bool: false if the key has no mapping
func KeyFromWebName(name string) (uint32, bool) {
	code, ok := webKeyCodes[name]
	return code, ok
}
