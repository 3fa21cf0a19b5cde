package decor

import "gioui.org/f32"

// Geometry is the frame layout derived from a style for one frame.
type Geometry struct {
	// Chrome is false when the window is maximized. It gates the corner
	// rounding, the shadow and the resize border together.
	Chrome bool
	// ShadowWidth is the gutter reserved around the panel for the shadow.
	ShadowWidth float32
	// View is the panel area, excluding the shadow gutter.
	View Rect
	// Core is View minus the resize border.
	Core Rect
	// Caption is the draggable area, clipped to Core.
	Caption Rect
}

// Geometry computes the frame layout for a window of the given size.
// The style must already be expressed in pixels, see Scale.
func (s Style) Geometry(size f32.Point, maximized bool) Geometry {
	g := Geometry{Chrome: !maximized}
	if g.Chrome {
		g.ShadowWidth = s.shadow.Width()
	}
	g.View = RectFromSize(f32.Point{}, size).Shrink(g.ShadowWidth)
	g.Core = g.View.Inset(s.resizeMargin)
	g.Caption = s.caption.
		Add(f32.Pt(g.ShadowWidth, g.ShadowWidth)).
		Intersect(g.Core)
	return g
}

// Hit is the result of testing a pointer position against the frame.
type Hit struct {
	// Resize is set when the pointer is over the resize border.
	Resize bool
	// Direction is valid when HasDirection is set.
	Direction    Direction
	HasDirection bool
	// Caption is set when the pointer is over the caption.
	Caption bool
}

// HitTest maps a pointer position to the interaction zones. A missing
// pointer matches no zone.
func (g Geometry) HitTest(p f32.Point, ok bool) Hit {
	var h Hit
	if !ok {
		return h
	}
	if g.Chrome && g.View.Contains(p) && !g.Core.Contains(p) {
		h.Resize = true
		h.Direction, h.HasDirection = ResolveDirection(p, g.Core)
	}
	h.Caption = g.Caption.Contains(p)
	return h
}

// Gestures reports the pointer gestures observed in the current frame.
type Gestures struct {
	// ResizeStarted is set when a drag started in the resize border.
	ResizeStarted bool
	// CaptionDragStarted is set when a drag started in the caption.
	CaptionDragStarted bool
	// CaptionDoubleClicked is set on a double click in the caption.
	CaptionDoubleClicked bool
}

// Commands returns the window commands triggered by the gestures. At most
// one resize and one caption command are produced, resize first.
func (h Hit) Commands(gs Gestures, maximized bool) []Command {
	var cmds []Command
	if h.Resize && h.HasDirection && gs.ResizeStarted {
		cmds = append(cmds, ResizeCommand(h.Direction))
	}
	if h.Caption {
		switch {
		case gs.CaptionDragStarted:
			cmds = append(cmds, DragCommand())
		case gs.CaptionDoubleClicked:
			cmds = append(cmds, MaximizeCommand(!maximized))
		}
	}
	return cmds
}
