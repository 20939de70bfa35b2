package engine

import (
	"log/slog"
	"time"

	"github.com/Carmen-Shannon/blorf/common"
	"github.com/Carmen-Shannon/blorf/engine/window"
)

// proxyBuffer is the capacity of the user event channel.
const proxyBuffer = 16

// defaultIdleWait bounds how long an idle loop iteration waits for a user event.
const defaultIdleWait = 10 * time.Millisecond

// Spawner runs a task off the event loop thread.
type Spawner func(task func())

// newDefaultSpawner builds the spawner used when no WithLoopSpawner option is given. The
// returned stop func is called once RunApp returns.
var newDefaultSpawner = defaultSpawner

// Handler receives the events of an EventLoop. All methods are called on the loop thread.
type Handler interface {
	// Resumed is called once, before the first loop iteration.
	Resumed(loop *EventLoop)

	// WindowEvent is called for every window event, including RedrawRequested.
	WindowEvent(loop *EventLoop, event WindowEvent)

	// UserEvent is called for every event sent through the loop's proxy.
	UserEvent(loop *EventLoop, event UserEvent)

	// AboutToWait is called at the end of every loop iteration that did not exit.
	AboutToWait(loop *EventLoop)

	// Exiting is called once after the loop stops, before RunApp returns.
	Exiting(loop *EventLoop)
}

// EventLoopProxy sends user events to an EventLoop from any goroutine.
type EventLoopProxy struct {
	events chan<- UserEvent
}

// Send queues a user event. It blocks only if the proxy buffer is full.
func (p EventLoopProxy) Send(event UserEvent) {
	p.events <- event
}

// EventLoop is a single-threaded cooperative event loop over one window. Each iteration polls
// the window, delivers queued user events, then the window events queued during the poll, then
// at most one RedrawRequested, then AboutToWait. Window callbacks only queue events.
type EventLoop struct {
	window   window.Window
	logger    *slog.Logger
	spawn     Spawner
	stopSpawn func()
	idleWait  time.Duration

	proxy   chan UserEvent
	pending []WindowEvent
	redraw  bool

	exiting bool
	err     error
}

// EventLoopOption configures an EventLoop.
type EventLoopOption func(*EventLoop)

// WithLoopSpawner sets how the loop runs tasks off its thread.
func WithLoopSpawner(s Spawner) EventLoopOption {
	return func(l *EventLoop) {
		if s != nil {
			l.spawn = s
		}
	}
}

// WithLoopLogger sets the loop's logger.
func WithLoopLogger(logger *slog.Logger) EventLoopOption {
	return func(l *EventLoop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithIdleWait sets how long an iteration with no pending redraw waits for a user event.
func WithIdleWait(d time.Duration) EventLoopOption {
	return func(l *EventLoop) {
		if d > 0 {
			l.idleWait = d
		}
	}
}

// NewEventLoop creates an event loop over w. The loop does not take ownership of w.
//
// Parameters:
//   - w: the window whose events drive the loop
//   - opts: EventLoopOption functions
//
// Returns:
//   - *EventLoop: the loop, ready for RunApp
func NewEventLoop(w window.Window, opts ...EventLoopOption) *EventLoop {
	l := &EventLoop{
		window:   w,
		logger:   slog.Default(),
		idleWait: defaultIdleWait,
		proxy:    make(chan UserEvent, proxyBuffer),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.spawn == nil {
		l.spawn, l.stopSpawn = newDefaultSpawner(l.logger)
	}
	return l
}

// RunApp runs the loop until the handler exits it or the window goes away.
//
// Parameters:
//   - h: the handler receiving the loop's events
//
// Returns:
//   - error: the error passed to ExitWithError, or nil
func (l *EventLoop) RunApp(h Handler) error {
	l.bindWindow()
	h.Resumed(l)

	for !l.exiting {
		if !l.window.PollEvents() && !l.exiting {
			l.pending = append(l.pending, CloseRequested{})
		}
		l.dispatchUserEvents(h)
		l.dispatchWindowEvents(h)

		if l.redraw && !l.exiting {
			l.redraw = false
			h.WindowEvent(l, RedrawRequested{})
		}
		if l.exiting {
			break
		}
		h.AboutToWait(l)
		if !l.redraw {
			l.waitForUserEvent(h)
		}
	}

	h.Exiting(l)
	if l.stopSpawn != nil {
		l.stopSpawn()
	}
	return l.err
}

// Window returns the window the loop runs over.
func (l *EventLoop) Window() window.Window {
	return l.window
}

// Proxy returns a handle other goroutines use to send user events to the loop.
func (l *EventLoop) Proxy() EventLoopProxy {
	return EventLoopProxy{events: l.proxy}
}

// Spawn runs task off the loop thread.
func (l *EventLoop) Spawn(task func()) {
	l.spawn(task)
}

// RequestRedraw schedules a RedrawRequested for the current or next iteration.
func (l *EventLoop) RequestRedraw() {
	l.redraw = true
}

// Exit stops the loop after the current event.
func (l *EventLoop) Exit() {
	l.exiting = true
}

// ExitWithError stops the loop and makes RunApp return err. Only the first error is kept.
func (l *EventLoop) ExitWithError(err error) {
	if l.err == nil {
		l.err = err
	}
	l.exiting = true
}

// Exiting reports whether the loop has been asked to stop.
func (l *EventLoop) Exiting() bool {
	return l.exiting
}

// NextUserEvent takes the next user event from the proxy, waiting up to timeout for one to
// arrive. It is meant for handlers that must collect a result after the loop has stopped.
//
// Parameters:
//   - timeout: how long to wait; zero or less only takes an already queued event
//
// Returns:
//   - UserEvent: the event, or nil
//   - bool: false if no event arrived in time
func (l *EventLoop) NextUserEvent(timeout time.Duration) (UserEvent, bool) {
	if timeout <= 0 {
		select {
		case ev := <-l.proxy:
			return ev, true
		default:
			return nil, false
		}
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case ev := <-l.proxy:
		return ev, true
	case <-timer.C:
		return nil, false
	}
}

// Err returns the error the loop will exit with, if any.
func (l *EventLoop) Err() error {
	return l.err
}

func (l *EventLoop) bindWindow() {
	l.window.SetResizeCallback(func(width, height int) {
		l.pending = append(l.pending, Resized{Size: common.NewSize(width, height)})
	})
	l.window.SetKeyDownCallback(func(keyCode uint32) {
		l.pending = append(l.pending, KeyPressed{Key: keyCode})
	})
	l.window.SetCloseCallback(func() {
		l.pending = append(l.pending, CloseRequested{})
	})
}

func (l *EventLoop) dispatchWindowEvents(h Handler) {
	events := l.pending
	l.pending = nil
	for _, ev := range events {
		if l.exiting {
			return
		}
		h.WindowEvent(l, ev)
	}
}

// dispatchUserEvents delivers every user event already queued on the proxy.
func (l *EventLoop) dispatchUserEvents(h Handler) {
	for !l.exiting {
		select {
		case ev := <-l.proxy:
			h.UserEvent(l, ev)
		default:
			return
		}
	}
}

// waitForUserEvent blocks up to idleWait for a user event so an idle loop does not spin.
func (l *EventLoop) waitForUserEvent(h Handler) {
	timer := time.NewTimer(l.idleWait)
	defer timer.Stop()
	select {
	case ev := <-l.proxy:
		h.UserEvent(l, ev)
	case <-timer.C:
	}
}
