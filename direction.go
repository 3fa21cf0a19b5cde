package decor

import (
	"gioui.org/f32"
	"gioui.org/io/pointer"
)

// Direction is one of the eight compass directions a window can be resized in.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Directions lists every resize direction, clockwise from North.
var Directions = [...]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case NorthEast:
		return "NorthEast"
	case East:
		return "East"
	case SouthEast:
		return "SouthEast"
	case South:
		return "South"
	case SouthWest:
		return "SouthWest"
	case West:
		return "West"
	case NorthWest:
		return "NorthWest"
	}
	return "Direction(?)"
}

// Cursor returns the pointer cursor hinting a resize in direction d.
func (d Direction) Cursor() pointer.Cursor {
	switch d {
	case North:
		return pointer.CursorNorthResize
	case NorthEast:
		return pointer.CursorNorthEastResize
	case East:
		return pointer.CursorEastResize
	case SouthEast:
		return pointer.CursorSouthEastResize
	case South:
		return pointer.CursorSouthResize
	case SouthWest:
		return pointer.CursorSouthWestResize
	case West:
		return pointer.CursorWestResize
	case NorthWest:
		return pointer.CursorNorthWestResize
	}
	return pointer.CursorDefault
}

// ResolveDirection classifies p against the edges of core. Positions on or
// inside core have no direction. NaN coordinates never match an edge and
// therefore resolve to no direction either.
func ResolveDirection(p f32.Point, core Rect) (Direction, bool) {
	left, right := p.X < core.Min.X, p.X > core.Max.X
	above, below := p.Y < core.Min.Y, p.Y > core.Max.Y

	switch {
	case left && above:
		return NorthWest, true
	case left && below:
		return SouthWest, true
	case left:
		return West, true
	case right && above:
		return NorthEast, true
	case right && below:
		return SouthEast, true
	case right:
		return East, true
	case above:
		return North, true
	case below:
		return South, true
	}
	return 0, false
}
