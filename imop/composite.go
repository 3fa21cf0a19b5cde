// Package imop implements the Porter-Duff composition operations
// used for mixing a graphic element with its backdrop.
//
// Source-in tints the blurred window shadow mask with the shadow color and
// destination-out cuts the panel shape out of it.
package imop

import (
	"image"
	"image/color"
)

const (
	SrcOver = "src_over"
	SrcIn   = "src_in"
	DstOut  = "dst_out"
)

// factors returns the Porter-Duff fractions of the source and of the backdrop
// contributing to the result, given the alpha of both.
type factors func(as, ab float64) (fa, fb float64)

var operators = map[string]factors{
	SrcOver: func(as, ab float64) (float64, float64) { return 1, 1 - as },
	SrcIn:   func(as, ab float64) (float64, float64) { return ab, 0 },
	DstOut:  func(as, ab float64) (float64, float64) { return 0, 1 - as },
}

// Bitmap holds the result of a composition.
type Bitmap struct {
	Img *image.NRGBA
}

// NewBitmap allocates a transparent bitmap.
func NewBitmap(rect image.Rectangle) *Bitmap {
	return &Bitmap{
		Img: image.NewNRGBA(rect),
	}
}

// Composite holds the currently active composition operation.
type Composite struct {
	current string
}

// InitOp returns a Composite using SrcOver, the operation image/draw calls Over.
func InitOp() *Composite {
	return &Composite{current: SrcOver}
}

// Set activates one of the supported operations. Unknown names are ignored.
func (op *Composite) Set(cop string) {
	if _, ok := operators[cop]; ok {
		op.current = cop
	}
}

// Get returns the currently active operation.
func (op *Composite) Get() string {
	return op.current
}

// Draw composites src with the backdrop dst and stores the result in bitmap.
// The three images are addressed with the bitmap bounds.
func (op *Composite) Draw(bitmap *Bitmap, src, dst image.Image) {
	fn := operators[op.current]
	b := bitmap.Img.Bounds()

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			s, d := nrgbaAt(src, x, y), nrgbaAt(dst, x, y)

			as := float64(s.A) / 255
			ab := float64(d.A) / 255
			fa, fb := fn(as, ab)

			// Porter-Duff works on premultiplied colors.
			sa, da := as*fa, ab*fb
			an := sa + da

			var c color.NRGBA
			if an > 0 {
				c = color.NRGBA{
					R: channel((sa*float64(s.R) + da*float64(d.R)) / an),
					G: channel((sa*float64(s.G) + da*float64(d.G)) / an),
					B: channel((sa*float64(s.B) + da*float64(d.B)) / an),
					A: channel(an * 255),
				}
			}
			i := bitmap.Img.PixOffset(x, y)
			p := bitmap.Img.Pix[i : i+4 : i+4]
			p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
		}
	}
}

// nrgbaAt reads a pixel, avoiding the color model conversion for the
// image types used by the shadow renderer.
func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	switch m := img.(type) {
	case *image.NRGBA:
		if !(image.Point{X: x, Y: y}.In(m.Rect)) {
			return color.NRGBA{}
		}
		i := m.PixOffset(x, y)
		return color.NRGBA{R: m.Pix[i], G: m.Pix[i+1], B: m.Pix[i+2], A: m.Pix[i+3]}
	case *image.Alpha:
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: m.AlphaAt(x, y).A}
	case *image.Uniform:
		return color.NRGBAModel.Convert(m.C).(color.NRGBA)
	}
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}
