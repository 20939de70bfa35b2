package engine

import (
	"github.com/Carmen-Shannon/blorf/common"
	"github.com/Carmen-Shannon/blorf/engine/renderer"
)

// WindowEvent is an event raised by the window and dispatched on the loop thread.
type WindowEvent interface {
	windowEvent()
}

// Resized reports a new drawable size in physical pixels. Either dimension may be zero
// while the window is minimized.
type Resized struct {
	Size common.Size
}

// RedrawRequested asks the handler to render a frame. It is raised at most once per loop
// iteration, after RequestRedraw.
type RedrawRequested struct{}

// CloseRequested reports that the user asked to close the window.
type CloseRequested struct{}

// KeyPressed reports a key press using the common key codes.
type KeyPressed struct {
	Key uint32
}

func (Resized) windowEvent()         {}
func (RedrawRequested) windowEvent() {}
func (CloseRequested) windowEvent()  {}
func (KeyPressed) windowEvent()      {}

// UserEvent is an application event sent through an EventLoopProxy, usually from another goroutine.
type UserEvent interface {
	userEvent()
}

// ContextReady carries the render context produced by a successful bootstrap.
type ContextReady struct {
	Context renderer.Context
}

// ContextFailed carries the error of a failed bootstrap.
type ContextFailed struct {
	Err error
}

func (ContextReady) userEvent()  {}
func (ContextFailed) userEvent() {}
