package x11

import (
	"fmt"

	"github.com/BurntSushi/xgbutil/ewmh"
)

// Edge is the _NET_WM_MOVERESIZE direction argument.
type Edge uint32

const (
	SizeTopLeft     Edge = ewmh.SizeTopLeft
	SizeTop         Edge = ewmh.SizeTop
	SizeTopRight    Edge = ewmh.SizeTopRight
	SizeRight       Edge = ewmh.SizeRight
	SizeBottomRight Edge = ewmh.SizeBottomRight
	SizeBottom      Edge = ewmh.SizeBottom
	SizeBottomLeft  Edge = ewmh.SizeBottomLeft
	SizeLeft        Edge = ewmh.SizeLeft
	Move            Edge = ewmh.Move
)

var edgeNames = [...]string{
	SizeTopLeft:     "resize top-left",
	SizeTop:         "resize top",
	SizeTopRight:    "resize top-right",
	SizeRight:       "resize right",
	SizeBottomRight: "resize bottom-right",
	SizeBottom:      "resize bottom",
	SizeBottomLeft:  "resize bottom-left",
	SizeLeft:        "resize left",
	Move:            "move",
}

func (e Edge) valid() bool {
	return e <= Move
}

func (e Edge) String() string {
	if !e.valid() {
		return fmt.Sprintf("Edge(%d)", uint32(e))
	}
	return edgeNames[e]
}
