package decor

import (
	"image"
	"image/color"

	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// Panel is the visual description of the frame background.
type Panel struct {
	Fill   color.NRGBA
	Radius Corners
	// OuterMargin is reserved around the panel so that the shadow is painted
	// inside the window bounds.
	OuterMargin float32
	InnerMargin Margin
	Shadow      Shadow
}

// Panel returns the panel painted for the style. Without chrome (a maximized
// window) the corners are square and there is no shadow.
func (s Style) Panel(fill color.NRGBA, chrome bool) Panel {
	p := Panel{
		Fill:        fill,
		InnerMargin: s.innerMargin,
	}
	if chrome {
		p.Radius = s.cornerRadius
		p.OuterMargin = s.shadow.Width()
		p.Shadow = s.shadow
	}
	return p
}

// shape returns the rounded clip shape of the panel occupying view.
func (p Panel) shape(view Rect) clip.RRect {
	r := view.Image()
	limit := min(r.Dx(), r.Dy()) / 2
	corner := func(v float32) int {
		return max(0, min(int(v+0.5), limit))
	}
	return clip.RRect{
		Rect: r,
		NW:   corner(p.Radius.NW),
		NE:   corner(p.Radius.NE),
		SE:   corner(p.Radius.SE),
		SW:   corner(p.Radius.SW),
	}
}

// paint draws the shadow and the panel background.
func (p Panel) paint(ops *op.Ops, shadow *shadowCache, size image.Point, view Rect) {
	shadow.paint(ops, size, view, p.Radius, p.Shadow)
	paint.FillShape(ops, p.Fill, p.shape(view).Op(ops))
}
