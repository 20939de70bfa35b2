package engine

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Carmen-Shannon/blorf/common"
	"github.com/Carmen-Shannon/blorf/engine/renderer"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(w *fakeWindow, factory ContextFactory, opts ...EngineBuilderOption) Engine {
	base := []EngineBuilderOption{
		WithWindow(w),
		WithContextFactory(factory),
		WithSpawner(syncSpawner),
		WithEventLoopOptions(WithIdleWait(time.Millisecond)),
	}
	return NewEngine(append(base, opts...)...)
}

func TestRunWithoutAdapterNeverShowsWindow(t *testing.T) {
	w := newFakeWindow(common.Size{Width: 800, Height: 600})
	noAdapter := fmt.Errorf("%w: no backend", renderer.ErrNoAdapter)
	e := newTestEngine(w, factoryFor(nil, noAdapter))

	err := e.Run()

	require.Error(t, err)
	assert.ErrorIs(t, err, renderer.ErrNoAdapter)
	assert.Zero(t, w.shown)
	assert.Nil(t, e.Application().Surface())
	assert.Equal(t, PhaseRequesting, e.Application().Phase())
	assert.Zero(t, w.closed, "caller-provided windows are not closed by the engine")
}

func TestRunPresentsAndExitsOnClose(t *testing.T) {
	ctx := newFakeContext()
	w := newFakeWindow(common.Size{Width: 800, Height: 600}, nil, nil, nil)
	e := newTestEngine(w, factoryFor(ctx, nil))

	require.NoError(t, e.Run())

	assert.Equal(t, 1, w.shown)
	assert.Equal(t, PhaseReady, e.Application().Phase())
	assert.Equal(t, []string{"triangle"}, ctx.built)
	assert.Positive(t, ctx.surface.presented)
	assert.Equal(t, ctx.surface.presented, ctx.surface.drew)
	assert.Equal(t, 1, ctx.released)
}

func TestRunWithoutTriangleOnlyClears(t *testing.T) {
	ctx := newFakeContext()
	w := newFakeWindow(common.Size{Width: 800, Height: 600}, nil, nil)
	e := newTestEngine(w, factoryFor(ctx, nil), WithTriangle(false))

	require.NoError(t, e.Run())

	assert.Empty(t, ctx.built)
	assert.Positive(t, ctx.surface.presented)
	assert.Zero(t, ctx.surface.drew)
}

func TestRunExitsOnEscape(t *testing.T) {
	ctx := newFakeContext()
	w := newFakeWindow(common.Size{Width: 800, Height: 600},
		nil,
		[]func(*fakeWindow){press(common.KeyQ)},
		[]func(*fakeWindow){press(common.KeyEsc)},
		nil, nil, nil,
	)
	e := newTestEngine(w, factoryFor(ctx, nil))

	require.NoError(t, e.Run())
	assert.Equal(t, 3, w.polls, "loop stops in the iteration that saw Escape")
}

func TestRunPipelineFailureIsFatalBeforeShow(t *testing.T) {
	ctx := newFakeContext()
	ctx.buildErr = errors.New("bad shader")
	w := newFakeWindow(common.Size{Width: 800, Height: 600})
	e := newTestEngine(w, factoryFor(ctx, nil))

	err := e.Run()

	require.Error(t, err)
	assert.ErrorContains(t, err, "bad shader")
	assert.Zero(t, w.shown)
	assert.Equal(t, 1, ctx.released)
}

func TestRunOutOfMemoryTerminates(t *testing.T) {
	ctx := newFakeContext()
	ctx.surface.frameErrs = []error{&renderer.FrameError{Status: renderer.FrameOutOfMemory}}
	w := newFakeWindow(common.Size{Width: 800, Height: 600}, nil, nil, nil, nil, nil)
	e := newTestEngine(w, factoryFor(ctx, nil))

	err := e.Run()

	var frameErr *renderer.FrameError
	require.True(t, errors.As(err, &frameErr))
	assert.Equal(t, renderer.FrameOutOfMemory, frameErr.Status)
	assert.Zero(t, ctx.surface.presented)
}

func TestRunResizeSequence(t *testing.T) {
	ctx := newFakeContext()
	w := newFakeWindow(common.Size{Width: 800, Height: 600},
		nil,
		[]func(*fakeWindow){resize(0, 0)},
		[]func(*fakeWindow){resize(1024, 0)},
		[]func(*fakeWindow){resize(1024, 768)},
		nil,
	)
	e := newTestEngine(w, factoryFor(ctx, nil))

	require.NoError(t, e.Run())

	want := []common.Size{{Width: 800, Height: 600}, {Width: 1024, Height: 768}}
	if diff := cmp.Diff(want, ctx.surface.configures); diff != "" {
		t.Errorf("surface configurations mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, common.Size{Width: 1024, Height: 768}, e.Application().Size())
}
