//go:build js

package window

import (
	"errors"
	"fmt"
	"strconv"
	"syscall/js"

	"github.com/Carmen-Shannon/blorf/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// canvasWindow holds the DOM state of the web window.
type canvasWindow struct {
	canvas  js.Value
	frames  chan struct{}
	onFrame js.Func
	onKey   js.Func
	running bool
}

// newPlatformWindow creates the canvas element, appends it to the document body and
// registers the keyboard listener. The canvas size is fixed; width and height options are
// replaced by CanvasWidth and CanvasHeight.
func newPlatformWindow(w *engineWindow) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to attach canvas: %v", r)
		}
	}()

	document := js.Global().Get("document")
	if document.IsUndefined() || document.IsNull() {
		return errors.New("no document")
	}
	body := document.Get("body")
	if body.IsUndefined() || body.IsNull() {
		return errors.New("document has no body")
	}

	canvas := document.Call("createElement", "canvas")
	canvas.Call("setAttribute", "id", CanvasID)
	canvas.Call("setAttribute", "width", strconv.Itoa(CanvasWidth))
	canvas.Call("setAttribute", "height", strconv.Itoa(CanvasHeight))
	canvas.Call("setAttribute", "style", CanvasStyle)
	body.Call("appendChild", canvas)

	document.Set("title", w.title)
	w.width = CanvasWidth
	w.height = CanvasHeight

	cw := &canvasWindow{
		canvas:  canvas,
		frames:  make(chan struct{}, 1),
		running: true,
	}
	cw.onFrame = js.FuncOf(func(this js.Value, args []js.Value) any {
		select {
		case cw.frames <- struct{}{}:
		default:
		}
		return nil
	})
	cw.onKey = js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		if code, ok := common.KeyFromWebName(args[0].Get("key").String()); ok {
			w.keyDown(code)
		}
		return nil
	})
	document.Call("addEventListener", "keydown", cw.onKey)

	w.internalWindow = cw
	return nil
}

// platformGetSurfaceDescriptor points the surface at the window's canvas element.
func platformGetSurfaceDescriptor(w *engineWindow) *wgpu.SurfaceDescriptor {
	if w.internalWindow == nil {
		return nil
	}
	return &wgpu.SurfaceDescriptor{
		Canvas: w.internalWindow.(*canvasWindow).canvas,
		Label:  w.title,
	}
}

// platformShowWindow is a no-op: the canvas is visible as soon as it is attached.
func platformShowWindow(*engineWindow) {}

func platformIsRunningCheck(w *engineWindow) bool {
	if w.internalWindow == nil {
		return false
	}
	return w.internalWindow.(*canvasWindow).running
}

// platformCloseWindow detaches the listeners and removes the canvas from the page.
func platformCloseWindow(w *engineWindow) error {
	if w.internalWindow == nil {
		return errors.New("window is not initialized")
	}
	cw := w.internalWindow.(*canvasWindow)
	w.internalWindow = nil
	cw.running = false
	js.Global().Get("document").Call("removeEventListener", "keydown", cw.onKey)
	cw.canvas.Call("remove")
	cw.onKey.Release()
	cw.onFrame.Release()
	return nil
}

// platformProcessMessages yields to the browser until the next animation frame. Keyboard
// callbacks run on the browser's event loop while this goroutine is parked.
func platformProcessMessages(w *engineWindow) bool {
	if !platformIsRunningCheck(w) {
		return false
	}
	cw := w.internalWindow.(*canvasWindow)
	js.Global().Call("requestAnimationFrame", cw.onFrame)
	<-cw.frames
	return cw.running
}
