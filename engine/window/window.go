package window

import (
	"fmt"

	"github.com/Carmen-Shannon/blorf/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// Window provides the single platform window the renderer draws into: a GLFW window on desktop
// or a DOM canvas in the browser. Callbacks fire from PollEvents, on the event loop thread.
type Window interface {
	// SetResizeCallback sets the function called when the drawable size changes.
	//
	// Parameters:
	//   - callback: function receiving new width and height in physical pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback sets the callback for key press events.
	//
	// Parameters:
	//   - callback: function receiving the key code (see the common package key constants)
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetCloseCallback sets the callback invoked when the user asks to close the window.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetCloseCallback(callback func())

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if the window is closed
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// Show makes the window visible. Native windows start hidden so a failed bootstrap never
	// shows an empty window.
	Show()

	// Visible reports whether Show has been called.
	//
	// Returns:
	//   - bool: true once the window has been shown
	Visible() bool

	// PollEvents dispatches pending platform events to the registered callbacks. On the web
	// it also waits for the next animation frame.
	//
	// Returns:
	//   - bool: false once the platform window is gone
	PollEvents() bool

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// Size returns the current drawable size in physical pixels.
	//
	// Returns:
	//   - common.Size: the current size
	Size() common.Size

	// Title returns the window title.
	//
	// Returns:
	//   - string: the title
	Title() string
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, platform state, and event callbacks.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// width is the current drawable width in pixels.
	width int

	// height is the current drawable height in pixels.
	height int

	// visible is set by Show.
	visible bool

	// internalWindow holds the platform-specific window data (glfwWindow or canvasWindow).
	internalWindow any

	// onResize is called when the window is resized.
	onResize func(width, height int)

	// onKeyDown is called when a key is pressed.
	onKeyDown func(keyCode uint32)

	// onClose is called when the user asks to close the window.
	onClose func()
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options.
// Applies default values first, then each option in order. Failure to create the platform
// window panics.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window, hidden until Show
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		width:  defaultWidth,
		height: defaultHeight,
	}
	for _, opt := range options {
		opt(w)
	}
	w.title = common.Coalesce(w.title, DefaultTitle)
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetCloseCallback(callback func()) {
	w.onClose = callback
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) Show() {
	if w.visible {
		return
	}
	platformShowWindow(w)
	w.visible = true
}

func (w *engineWindow) Visible() bool {
	return w.visible
}

func (w *engineWindow) PollEvents() bool {
	return platformProcessMessages(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) Size() common.Size {
	return common.NewSize(w.width, w.height)
}

func (w *engineWindow) Title() string {
	return w.title
}

// resized records a new drawable size and forwards it to the resize callback.
func (w *engineWindow) resized(width, height int) {
	w.width = width
	w.height = height
	if w.onResize != nil {
		w.onResize(width, height)
	}
}

func (w *engineWindow) keyDown(keyCode uint32) {
	if w.onKeyDown != nil {
		w.onKeyDown(keyCode)
	}
}

func (w *engineWindow) closeRequested() {
	if w.onClose != nil {
		w.onClose()
	}
}
