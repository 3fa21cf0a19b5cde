package decor

import (
	"fmt"
	"image"
	"math"

	"gioui.org/f32"
	"github.com/esimov/decor/utils"
)

// Unbounded is used for rectangle edges which should extend as far as
// the window does, e.g. a caption spanning the whole window width.
const Unbounded = math.MaxFloat32

// Rect is an axis aligned rectangle in window local pixel coordinates.
// A Rect with Max smaller than Min on any axis is never produced by the
// methods below: degenerate results collapse to an empty rectangle.
type Rect struct {
	Min, Max f32.Point
}

// RectFromSize returns the rectangle with the given origin and size.
func RectFromSize(min, size f32.Point) Rect {
	return Rect{Min: min, Max: min.Add(size)}.canon()
}

// Dx returns the width of the rectangle.
func (r Rect) Dx() float32 { return r.Max.X - r.Min.X }

// Dy returns the height of the rectangle.
func (r Rect) Dy() float32 { return r.Max.Y - r.Min.Y }

// Size returns the rectangle dimensions.
func (r Rect) Size() f32.Point { return f32.Pt(r.Dx(), r.Dy()) }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return !(r.Min.X < r.Max.X && r.Min.Y < r.Max.Y)
}

// Contains reports whether p lies inside r. Edges are inclusive.
// An empty rectangle contains no point.
func (r Rect) Contains(p f32.Point) bool {
	if r.Empty() {
		return false
	}
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// ContainsRect reports whether s lies completely inside r.
func (r Rect) ContainsRect(s Rect) bool {
	if s.Empty() {
		return true
	}
	return r.Min.X <= s.Min.X && s.Max.X <= r.Max.X &&
		r.Min.Y <= s.Min.Y && s.Max.Y <= r.Max.Y
}

// Intersect returns the largest rectangle contained by both r and s.
// Disjoint rectangles produce an empty rectangle placed inside r.
func (r Rect) Intersect(s Rect) Rect {
	out := Rect{
		Min: f32.Pt(utils.Max(r.Min.X, s.Min.X), utils.Max(r.Min.Y, s.Min.Y)),
		Max: f32.Pt(utils.Min(r.Max.X, s.Max.X), utils.Min(r.Max.Y, s.Max.Y)),
	}
	if out.Min.X > out.Max.X || out.Min.Y > out.Max.Y {
		p := f32.Pt(
			utils.Clamp(out.Min.X, r.Min.X, r.Max.X),
			utils.Clamp(out.Min.Y, r.Min.Y, r.Max.Y),
		)
		return Rect{Min: p, Max: p}
	}
	return out
}

// Add translates the rectangle by p.
func (r Rect) Add(p f32.Point) Rect {
	return Rect{Min: r.Min.Add(p), Max: r.Max.Add(p)}
}

// Shrink moves every edge inwards by d.
func (r Rect) Shrink(d float32) Rect {
	return r.Inset(UniformMargin(d))
}

// Inset subtracts the margin from the corresponding edges.
func (r Rect) Inset(m Margin) Rect {
	return Rect{
		Min: f32.Pt(r.Min.X+m.Left, r.Min.Y+m.Top),
		Max: f32.Pt(r.Max.X-m.Right, r.Max.Y-m.Bottom),
	}.canon()
}

// Outset grows every edge outwards by the margin.
func (r Rect) Outset(m Margin) Rect {
	return Rect{
		Min: f32.Pt(r.Min.X-m.Left, r.Min.Y-m.Top),
		Max: f32.Pt(r.Max.X+m.Right, r.Max.Y+m.Bottom),
	}.canon()
}

// Image converts the rectangle to integer coordinates, rounding the
// edges to the nearest pixel. Unbounded edges are clamped to math.MaxInt32.
func (r Rect) Image() image.Rectangle {
	return image.Rectangle{
		Min: image.Pt(roundCoord(r.Min.X), roundCoord(r.Min.Y)),
		Max: image.Pt(roundCoord(r.Max.X), roundCoord(r.Max.Y)),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g)-(%g,%g)", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}

// canon collapses inverted axes onto their midpoint.
func (r Rect) canon() Rect {
	if r.Min.X > r.Max.X {
		mid := r.Min.X/2 + r.Max.X/2
		r.Min.X, r.Max.X = mid, mid
	}
	if r.Min.Y > r.Max.Y {
		mid := r.Min.Y/2 + r.Max.Y/2
		r.Min.Y, r.Max.Y = mid, mid
	}
	return r
}

func roundCoord(v float32) int {
	switch {
	case v >= math.MaxInt32:
		return math.MaxInt32
	case v <= math.MinInt32:
		return math.MinInt32
	}
	return int(math.Round(float64(v)))
}
