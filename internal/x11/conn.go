// Package x11 asks an EWMH compliant window manager to move, resize,
// maximize and close a client window.
package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/pkg/errors"
)

const (
	stateMaxHorz = "_NET_WM_STATE_MAXIMIZED_HORZ"
	stateMaxVert = "_NET_WM_STATE_MAXIMIZED_VERT"
)

// sourceApplication tells the window manager that the request comes from
// a regular application.
const sourceApplication = 1

// Conn is a connection to the X server acting on behalf of one window.
type Conn struct {
	xu  *xgbutil.XUtil
	win xproto.Window
}

// Dial connects to the X server named by display. An empty display uses
// the DISPLAY environment variable.
func Dial(display string, win uint32) (*Conn, error) {
	var (
		xu  *xgbutil.XUtil
		err error
	)
	if display == "" {
		xu, err = xgbutil.NewConn()
	} else {
		xu, err = xgbutil.NewConnDisplay(display)
	}
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to the X server")
	}
	return &Conn{xu: xu, win: xproto.Window(win)}, nil
}

// Window returns the id of the managed window.
func (c *Conn) Window() uint32 {
	return uint32(c.win)
}

// Maximized reports whether the window is maximized in both directions.
func (c *Conn) Maximized() (bool, error) {
	states, err := ewmh.WmStateGet(c.xu, c.win)
	if err != nil {
		return false, errors.Wrap(err, "cannot read _NET_WM_STATE")
	}
	return isMaximized(states), nil
}

// SetMaximized maximizes or restores the window.
func (c *Conn) SetMaximized(maximized bool) error {
	err := ewmh.WmStateReqExtra(c.xu, c.win, stateAction(maximized), stateMaxHorz, stateMaxVert, sourceApplication)
	return errors.Wrap(err, "cannot change the maximized state")
}

// BeginMoveResize hands the pointer over to the window manager, which then
// moves or resizes the window until the button is released.
//
// The implicit grab of the button press belongs to the toolkit connection,
// not to c. Window managers that insist on an active grab of their own may
// refuse the request until the button is released.
func (c *Conn) BeginMoveResize(edge Edge) error {
	if !edge.valid() {
		return errors.Errorf("invalid move/resize edge: %d", edge)
	}
	ptr, err := xproto.QueryPointer(c.xu.Conn(), c.xu.RootWin()).Reply()
	if err != nil {
		return errors.Wrap(err, "cannot query the pointer position")
	}
	err = ewmh.WmMoveresizeExtra(c.xu, c.win, int(edge),
		int(ptr.RootX), int(ptr.RootY), int(xproto.ButtonIndex1), sourceApplication)
	return errors.Wrapf(err, "cannot begin %s", edge)
}

// CloseWindow asks the window manager to close the window.
func (c *Conn) CloseWindow() error {
	err := ewmh.CloseWindowExtra(c.xu, c.win, xproto.TimeCurrentTime, sourceApplication)
	return errors.Wrap(err, "cannot close the window")
}

// Close disconnects from the X server.
func (c *Conn) Close() error {
	c.xu.Conn().Close()
	return nil
}

func stateAction(maximized bool) int {
	if maximized {
		return ewmh.StateAdd
	}
	return ewmh.StateRemove
}

func isMaximized(states []string) bool {
	var horz, vert bool
	for _, s := range states {
		switch s {
		case stateMaxHorz:
			horz = true
		case stateMaxVert:
			vert = true
		}
	}
	return horz && vert
}
