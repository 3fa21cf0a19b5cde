//go:build ((linux && !android) || freebsd || openbsd) && !nox11

package decor

import (
	"gioui.org/app"
	"gioui.org/io/event"

	"github.com/esimov/decor/internal/x11"
)

// edges maps a resize direction to its _NET_WM_MOVERESIZE edge.
var edges = [...]x11.Edge{
	North:     x11.SizeTop,
	NorthEast: x11.SizeTopRight,
	East:      x11.SizeRight,
	SouthEast: x11.SizeBottomRight,
	South:     x11.SizeBottom,
	SouthWest: x11.SizeBottomLeft,
	West:      x11.SizeLeft,
	NorthWest: x11.SizeTopLeft,
}

type x11Window struct {
	conn *x11.Conn
}

func (w x11Window) BeginResize(d Direction) error {
	return w.conn.BeginMoveResize(edges[d])
}

func (w x11Window) BeginDrag() error {
	return w.conn.BeginMoveResize(x11.Move)
}

func (w x11Window) Maximized() (bool, error) {
	return w.conn.Maximized()
}

func (w x11Window) SetMaximized(maximized bool) error {
	return w.conn.SetMaximized(maximized)
}

func (w x11Window) CloseWindow() error {
	return w.conn.CloseWindow()
}

func (w x11Window) Close() error {
	return w.conn.Close()
}

func (w *Window) viewEvent(e event.Event) {
	ev, ok := e.(app.X11ViewEvent)
	if !ok {
		return
	}
	if ev.Window == 0 {
		w.detach()
		return
	}
	if n, ok := w.native.(x11Window); ok && n.conn.Window() == uint32(ev.Window) {
		return
	}
	conn, err := x11.Dial("", uint32(ev.Window))
	if err != nil {
		w.log.Warn("native window moves are unavailable", "error", err)
		return
	}
	w.log.Debug("attached to the X11 window", "window", ev.Window)
	w.attach(x11Window{conn: conn})
}
