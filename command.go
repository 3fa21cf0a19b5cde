package decor

import "fmt"

// CommandKind identifies a window command.
type CommandKind uint8

const (
	// BeginResize asks the window system to start an interactive resize.
	BeginResize CommandKind = iota + 1
	// BeginDrag asks the window system to start an interactive move.
	BeginDrag
	// SetMaximized maximizes or restores the window.
	SetMaximized
	// Close closes the window.
	Close
)

// Command is a request sent to the window system. The frame only emits
// commands; performing them is up to the Host.
type Command struct {
	Kind CommandKind
	// Direction is set for BeginResize.
	Direction Direction
	// Maximized is set for SetMaximized.
	Maximized bool
}

// ResizeCommand returns a BeginResize command.
func ResizeCommand(d Direction) Command { return Command{Kind: BeginResize, Direction: d} }

// DragCommand returns a BeginDrag command.
func DragCommand() Command { return Command{Kind: BeginDrag} }

// MaximizeCommand returns a SetMaximized command.
func MaximizeCommand(maximized bool) Command { return Command{Kind: SetMaximized, Maximized: maximized} }

// CloseCommand returns a Close command.
func CloseCommand() Command { return Command{Kind: Close} }

func (c Command) String() string {
	switch c.Kind {
	case BeginResize:
		return fmt.Sprintf("BeginResize(%s)", c.Direction)
	case BeginDrag:
		return "BeginDrag"
	case SetMaximized:
		return fmt.Sprintf("SetMaximized(%t)", c.Maximized)
	case Close:
		return "Close"
	}
	return fmt.Sprintf("Command(%d)", c.Kind)
}

// Host is the window system the frame talks to.
type Host interface {
	// Maximized reports whether the window is currently maximized.
	Maximized() bool
	// Send queues a command. Commands are performed asynchronously.
	Send(Command)
}

// MoveAreaHost is implemented by hosts whose window system moves the window
// by itself when the caption is pressed. While MoveArea reports true the
// frame marks the caption with system.ActionMove.
type MoveAreaHost interface {
	Host
	MoveArea() bool
}
