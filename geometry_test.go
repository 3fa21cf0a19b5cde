package decor

import (
	"image"
	"math"
	"testing"

	"gioui.org/f32"
	"github.com/stretchr/testify/assert"
)

func rect(x0, y0, x1, y1 float32) Rect {
	return Rect{Min: f32.Pt(x0, y0), Max: f32.Pt(x1, y1)}
}

func TestRect_Size(t *testing.T) {
	assert := assert.New(t)

	r := RectFromSize(f32.Pt(10, 20), f32.Pt(30, 40))
	assert.Equal(rect(10, 20, 40, 60), r)
	assert.Equal(float32(30), r.Dx())
	assert.Equal(float32(40), r.Dy())
	assert.Equal(f32.Pt(30, 40), r.Size())
	assert.False(r.Empty())

	assert.True(rect(5, 5, 5, 10).Empty())
	assert.True(RectFromSize(f32.Pt(0, 0), f32.Pt(-10, 5)).Empty())
}

func TestRect_Contains(t *testing.T) {
	assert := assert.New(t)

	r := rect(10, 10, 20, 20)
	assert.True(r.Contains(f32.Pt(15, 15)))
	assert.True(r.Contains(f32.Pt(10, 10)), "edges are inclusive")
	assert.True(r.Contains(f32.Pt(20, 20)), "edges are inclusive")
	assert.False(r.Contains(f32.Pt(9.9, 15)))
	assert.False(r.Contains(f32.Pt(15, 20.1)))
	assert.False(r.Contains(f32.Pt(float32(math.NaN()), 15)))

	empty := rect(10, 10, 10, 20)
	assert.False(empty.Contains(f32.Pt(10, 15)), "an empty rectangle contains nothing")
}

func TestRect_Intersect(t *testing.T) {
	assert := assert.New(t)

	r := rect(0, 0, 100, 50)
	assert.Equal(rect(20, 10, 100, 50), r.Intersect(rect(20, 10, Unbounded, Unbounded)))
	assert.Equal(r, r.Intersect(rect(-Unbounded, -Unbounded, Unbounded, Unbounded)))

	disjoint := r.Intersect(rect(200, 200, 300, 300))
	assert.True(disjoint.Empty())
	assert.True(r.ContainsRect(disjoint), "disjoint intersections collapse inside the receiver")
	assert.Equal(f32.Pt(100, 50), disjoint.Min)
}

func TestRect_InsetOutset(t *testing.T) {
	assert := assert.New(t)

	r := rect(0, 0, 100, 60)
	assert.Equal(rect(1, 3, 98, 56), r.Inset(Margin{Left: 1, Right: 2, Top: 3, Bottom: 4}))
	assert.Equal(rect(-1, -3, 102, 64), r.Outset(Margin{Left: 1, Right: 2, Top: 3, Bottom: 4}))
	assert.Equal(rect(10, 10, 90, 50), r.Shrink(10))

	// An inset larger than the rectangle collapses onto the midpoint.
	collapsed := rect(0, 0, 10, 10).Shrink(8)
	assert.True(collapsed.Empty())
	assert.Equal(rect(5, 5, 5, 5), collapsed)
}

func TestRect_Add(t *testing.T) {
	assert.Equal(t, rect(25, 25, 35, 45), rect(5, 5, 15, 25).Add(f32.Pt(20, 20)))
}

func TestRect_Image(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(image.Rect(10, 11, 20, 21), rect(10.4, 10.6, 19.6, 20.5).Image())

	r := rect(0, 0, Unbounded, Unbounded).Image()
	assert.Equal(math.MaxInt32, r.Max.X)
	assert.Equal(math.MaxInt32, r.Max.Y)
}

func TestRect_String(t *testing.T) {
	assert.Equal(t, "(1,2)-(3.5,4)", rect(1, 2, 3.5, 4).String())
}
