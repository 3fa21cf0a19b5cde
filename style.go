package decor

import (
	"image/color"

	"gioui.org/f32"
)

// Margin is a four sided inset.
type Margin struct {
	Left, Right, Top, Bottom float32
}

// UniformMargin returns a margin with the same thickness on every side.
func UniformMargin(v float32) Margin {
	return Margin{Left: v, Right: v, Top: v, Bottom: v}
}

func (m Margin) scale(s float32) Margin {
	return Margin{Left: m.Left * s, Right: m.Right * s, Top: m.Top * s, Bottom: m.Bottom * s}
}

// Corners holds the rounding radius of each panel corner.
type Corners struct {
	NW, NE, SE, SW float32
}

// UniformCorners returns the same radius for all four corners.
func UniformCorners(r float32) Corners {
	return Corners{NW: r, NE: r, SE: r, SW: r}
}

func (c Corners) scale(s float32) Corners {
	return Corners{NW: c.NW * s, NE: c.NE * s, SE: c.SE * s, SW: c.SW * s}
}

// Shadow describes the drop shadow painted around the panel.
type Shadow struct {
	// Offset moves the shadow relative to the panel.
	Offset f32.Point
	// Blur is the blur radius.
	Blur float32
	// Spread grows the shadow shape before blurring.
	Spread float32
	Color  color.NRGBA
}

// NoShadow disables the drop shadow.
var NoShadow = Shadow{}

// Width returns the size of the gutter reserved around the panel for the shadow.
func (s Shadow) Width() float32 {
	return s.Blur + s.Spread
}

func (s Shadow) scale(f float32) Shadow {
	return Shadow{
		Offset: s.Offset.Mul(f),
		Blur:   s.Blur * f,
		Spread: s.Spread * f,
		Color:  s.Color,
	}
}

// Style holds the frame appearance. A Style is a value: the With methods
// return an updated copy and never modify the receiver.
//
// Lengths are expressed in device independent pixels (Dp).
type Style struct {
	resizeMargin Margin
	caption      Rect
	innerMargin  Margin
	cornerRadius Corners
	shadow       Shadow
}

// DefaultStyle returns a frame with a 4Dp resize border, a 40Dp caption strip
// along the top edge, rounded corners and a soft shadow.
func DefaultStyle() Style {
	return Style{
		resizeMargin: UniformMargin(4),
		caption: Rect{
			Min: f32.Pt(4, 4),
			Max: f32.Pt(Unbounded, 44),
		},
		innerMargin:  UniformMargin(10),
		cornerRadius: UniformCorners(10),
		shadow: Shadow{
			Blur:   18,
			Spread: 2,
			Color:  color.NRGBA{A: 0x20},
		},
	}
}

// WithResizeMargin changes the thickness of the resize border.
func (s Style) WithResizeMargin(m Margin) Style {
	s.resizeMargin = m
	return s
}

// WithCaption changes the draggable caption area. Use Unbounded edges to
// make the whole window draggable.
func (s Style) WithCaption(r Rect) Style {
	s.caption = r
	return s
}

// WithInnerMargin changes the padding applied to the content.
func (s Style) WithInnerMargin(m Margin) Style {
	s.innerMargin = m
	return s
}

// WithCornerRadius changes the corner rounding.
func (s Style) WithCornerRadius(c Corners) Style {
	s.cornerRadius = c
	return s
}

// WithShadow changes the drop shadow.
func (s Style) WithShadow(sh Shadow) Style {
	s.shadow = sh
	return s
}

func (s Style) ResizeMargin() Margin  { return s.resizeMargin }
func (s Style) Caption() Rect         { return s.caption }
func (s Style) InnerMargin() Margin   { return s.innerMargin }
func (s Style) CornerRadius() Corners { return s.cornerRadius }
func (s Style) Shadow() Shadow        { return s.shadow }

// Scale converts the style lengths with the given pixels per Dp factor.
// Unbounded caption edges stay unbounded.
func (s Style) Scale(pxPerDp float32) Style {
	if pxPerDp == 1 {
		return s
	}
	return Style{
		resizeMargin: s.resizeMargin.scale(pxPerDp),
		caption: Rect{
			Min: scalePoint(s.caption.Min, pxPerDp),
			Max: scalePoint(s.caption.Max, pxPerDp),
		},
		innerMargin:  s.innerMargin.scale(pxPerDp),
		cornerRadius: s.cornerRadius.scale(pxPerDp),
		shadow:       s.shadow.scale(pxPerDp),
	}
}

func scalePoint(p f32.Point, f float32) f32.Point {
	return f32.Pt(scaleCoord(p.X, f), scaleCoord(p.Y, f))
}

func scaleCoord(v, f float32) float32 {
	if v >= Unbounded || v <= -Unbounded {
		return v
	}
	return v * f
}
