package decor

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"gioui.org/app"
	"github.com/stretchr/testify/assert"
)

type fakeNative struct {
	maximized bool
	err       error
	calls     []string
	closed    bool
}

func (n *fakeNative) BeginResize(d Direction) error {
	n.calls = append(n.calls, "resize "+d.String())
	return n.err
}

func (n *fakeNative) BeginDrag() error {
	n.calls = append(n.calls, "drag")
	return n.err
}

func (n *fakeNative) Maximized() (bool, error) { return n.maximized, n.err }

func (n *fakeNative) SetMaximized(maximized bool) error {
	if maximized {
		n.calls = append(n.calls, "maximize")
	} else {
		n.calls = append(n.calls, "restore")
	}
	return n.err
}

func (n *fakeNative) CloseWindow() error {
	n.calls = append(n.calls, "close")
	return n.err
}

func (n *fakeNative) Close() error {
	n.closed = true
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWindow_SendsToNative(t *testing.T) {
	assert := assert.New(t)

	n := &fakeNative{}
	w := NewWindow(nil, discardLogger())
	w.attach(n)

	for _, cmd := range []Command{
		ResizeCommand(SouthEast),
		DragCommand(),
		MaximizeCommand(true),
		MaximizeCommand(false),
		CloseCommand(),
	} {
		w.Send(cmd)
	}
	assert.Equal([]string{"resize SouthEast", "drag", "maximize", "restore", "close"}, n.calls)

	// Failures are logged, never propagated.
	n.err = errors.New("no window manager")
	assert.NotPanics(func() { w.Send(DragCommand()) })
}

func TestWindow_TracksMaximizedState(t *testing.T) {
	assert := assert.New(t)

	w := NewWindow(nil, discardLogger())
	assert.False(w.Maximized())

	w.Update(app.ConfigEvent{Config: app.Config{Mode: app.Maximized}})
	assert.True(w.Maximized())

	w.Update(app.ConfigEvent{Config: app.Config{Mode: app.Windowed}})
	assert.False(w.Maximized())

	w.attach(&fakeNative{maximized: true})
	assert.True(w.Maximized(), "the native state is read on attach")
}

func TestWindow_DetachOnDestroy(t *testing.T) {
	assert := assert.New(t)

	first := &fakeNative{}
	w := NewWindow(nil, discardLogger())
	w.attach(first)

	second := &fakeNative{}
	w.attach(second)
	assert.True(first.closed, "a replaced backend is closed")

	w.Update(app.DestroyEvent{})
	assert.True(second.closed)
	assert.Nil(w.native)
}

func TestWindow_MoveAreaWithoutNative(t *testing.T) {
	assert := assert.New(t)

	w := NewWindow(nil, discardLogger())
	assert.True(w.MoveArea(), "the toolkit moves the window through the caption")
	assert.NotPanics(func() {
		w.Send(DragCommand())
		w.Send(ResizeCommand(East))
	}, "moves and resizes are dropped without touching the window")

	n := &fakeNative{}
	w.attach(n)
	assert.False(w.MoveArea())
	w.Send(DragCommand())
	assert.Equal([]string{"drag"}, n.calls)

	w.Update(app.DestroyEvent{})
	assert.True(w.MoveArea())
}
