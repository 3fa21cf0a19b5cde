package decor

import (
	"log/slog"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/system"
)

// native is implemented by platform backends talking to the window manager
// directly. Moves and resizes are handed over to the window manager until
// the pointer button is released.
type native interface {
	BeginResize(Direction) error
	BeginDrag() error
	Maximized() (bool, error)
	SetMaximized(bool) error
	CloseWindow() error
	Close() error
}

// Window adapts a Gio window to the Host interface. Feed every event
// received from the window to Update before handling it.
type Window struct {
	win    *app.Window
	mode   app.WindowMode
	native native
	log    *slog.Logger
}

// NewWindow wraps w. A nil logger uses slog.Default.
func NewWindow(w *app.Window, logger *slog.Logger) *Window {
	if logger == nil {
		logger = slog.Default()
	}
	return &Window{win: w, log: logger}
}

// Update tracks the window state carried by e.
func (w *Window) Update(e event.Event) {
	switch e := e.(type) {
	case app.ConfigEvent:
		if e.Config.Mode != w.mode {
			w.log.Debug("window mode changed", "from", w.mode, "to", e.Config.Mode)
		}
		w.mode = e.Config.Mode
	case app.DestroyEvent:
		w.detach()
	default:
		w.viewEvent(e)
	}
}

// Maximized implements Host.
func (w *Window) Maximized() bool {
	return w.mode == app.Maximized
}

// MoveArea implements MoveAreaHost. Without a native backend the window
// is moved by the toolkit through the caption move area.
func (w *Window) MoveArea() bool {
	return w.native == nil
}

// Send implements Host. Commands go to the native backend when there is
// one. Otherwise maximize and close use the toolkit actions, moves are left
// to the caption move area and resizes are logged and dropped.
func (w *Window) Send(cmd Command) {
	w.log.Debug("window command", "command", cmd)

	if w.native != nil {
		if err := w.perform(cmd); err != nil {
			w.log.Error("window command failed", "command", cmd, "error", err)
		}
		return
	}
	switch cmd.Kind {
	case SetMaximized:
		if cmd.Maximized {
			w.win.Perform(system.ActionMaximize)
		} else {
			w.win.Perform(system.ActionUnmaximize)
		}
	case Close:
		w.win.Perform(system.ActionClose)
	case BeginDrag:
		w.log.Debug("move left to the caption move area", "command", cmd)
	case BeginResize:
		w.log.Debug("command not supported by the window backend", "command", cmd)
	}
}

func (w *Window) perform(cmd Command) error {
	switch cmd.Kind {
	case BeginResize:
		return w.native.BeginResize(cmd.Direction)
	case BeginDrag:
		return w.native.BeginDrag()
	case SetMaximized:
		return w.native.SetMaximized(cmd.Maximized)
	case Close:
		return w.native.CloseWindow()
	}
	return nil
}

// attach installs a platform backend and synchronizes the maximized state.
func (w *Window) attach(n native) {
	w.detach()
	w.native = n
	if maximized, err := n.Maximized(); err != nil {
		w.log.Warn("unable to query the window state", "error", err)
	} else if maximized {
		w.mode = app.Maximized
	}
}

func (w *Window) detach() {
	if w.native == nil {
		return
	}
	if err := w.native.Close(); err != nil {
		w.log.Warn("unable to close the window backend", "error", err)
	}
	w.native = nil
}
