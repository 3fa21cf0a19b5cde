package decor

import (
	"image"
	"math"

	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"github.com/esimov/decor/imop"
	"github.com/esimov/decor/utils"
	"golang.org/x/image/vector"
)

// kappa is the distance of the cubic Bézier control points approximating
// a quarter circle of radius 1.
const kappa = 0.5522847498

type shadowKey struct {
	size   image.Point
	view   Rect
	radius Corners
	shadow Shadow
}

// shadowCache keeps the rasterized shadow of the last frame. The image is
// rebuilt only when the window size or the style changes.
type shadowCache struct {
	key shadowKey
	img paint.ImageOp
	ok  bool
}

// paint draws the shadow image covering the whole window area.
func (c *shadowCache) paint(ops *op.Ops, size image.Point, view Rect, radius Corners, sh Shadow) {
	if sh.Color.A == 0 || size.X <= 0 || size.Y <= 0 {
		return
	}
	key := shadowKey{size: size, view: view, radius: radius, shadow: sh}
	if !c.ok || c.key != key {
		c.key = key
		c.img = paint.NewImageOp(renderShadow(size, view, radius, sh))
		c.ok = true
	}
	defer clip.Rect{Max: size}.Push(ops).Pop()
	c.img.Add(ops)
	paint.PaintOp{}.Add(ops)
}

// renderShadow rasterizes the drop shadow of the panel occupying view into
// an image of the given size. The panel area itself is left transparent.
func renderShadow(size image.Point, view Rect, radius Corners, sh Shadow) *image.NRGBA {
	bounds := image.Rectangle{Max: size}

	spread := UniformMargin(sh.Spread)
	mask := image.NewAlpha(bounds)
	fillRoundRect(mask, view.Outset(spread).Add(sh.Offset), Corners{
		NW: radius.NW + sh.Spread,
		NE: radius.NE + sh.Spread,
		SE: radius.SE + sh.Spread,
		SW: radius.SW + sh.Spread,
	})
	blurAlpha(mask, int(math.Round(float64(sh.Blur))))

	comp := imop.InitOp()
	tinted := imop.NewBitmap(bounds)
	comp.Set(imop.SrcIn)
	comp.Draw(tinted, image.NewUniform(sh.Color), mask)

	panel := image.NewAlpha(bounds)
	fillRoundRect(panel, view, radius)

	out := imop.NewBitmap(bounds)
	comp.Set(imop.DstOut)
	comp.Draw(out, panel, tinted.Img)

	return out.Img
}

// fillRoundRect rasterizes an anti-aliased rounded rectangle into dst.
// Radii larger than half the rectangle side are reduced to fit.
func fillRoundRect(dst *image.Alpha, r Rect, radius Corners) {
	b := dst.Bounds()
	if r.Empty() {
		return
	}
	limit := utils.Min(r.Dx(), r.Dy()) / 2
	nw := utils.Clamp(radius.NW, 0, limit)
	ne := utils.Clamp(radius.NE, 0, limit)
	se := utils.Clamp(radius.SE, 0, limit)
	sw := utils.Clamp(radius.SW, 0, limit)

	z := vector.NewRasterizer(b.Dx(), b.Dy())
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X, r.Max.Y

	z.MoveTo(x0+nw, y0)
	z.LineTo(x1-ne, y0)
	z.CubeTo(x1-ne+ne*kappa, y0, x1, y0+ne-ne*kappa, x1, y0+ne)
	z.LineTo(x1, y1-se)
	z.CubeTo(x1, y1-se+se*kappa, x1-se+se*kappa, y1, x1-se, y1)
	z.LineTo(x0+sw, y1)
	z.CubeTo(x0+sw-sw*kappa, y1, x0, y1-sw+sw*kappa, x0, y1-sw)
	z.LineTo(x0, y0+nw)
	z.CubeTo(x0, y0+nw-nw*kappa, x0+nw-nw*kappa, y0, x0+nw, y0)
	z.ClosePath()

	z.Draw(dst, b, image.Opaque, image.Point{})
}
