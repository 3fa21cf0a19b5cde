package decor

import (
	"image/color"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

var (
	viewColor    = color.NRGBA{R: 0xe9, G: 0x1e, B: 0x63, A: 0xff}
	coreColor    = color.NRGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0xff}
	captionColor = color.NRGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}
	activeColor  = color.NRGBA{R: 0xff, G: 0xc1, B: 0x07, A: 0x40}
)

// outline visualizes the interaction zones when the debug mode is activated.
// The zone under the pointer is highlighted.
func (g Geometry) outline(ops *op.Ops, hit Hit) {
	switch {
	case hit.Resize:
		fillRect(ops, g.View, activeColor)
	case hit.Caption:
		fillRect(ops, g.Caption, activeColor)
	}
	strokeRect(ops, g.View, viewColor, 1)
	strokeRect(ops, g.Core, coreColor, 1)
	strokeRect(ops, g.Caption, captionColor, 1)
}

// strokeRect draws the rectangle outline with the provided line thickness.
func strokeRect(ops *op.Ops, r Rect, col color.NRGBA, thickness float32) {
	if r.Empty() {
		return
	}
	var path clip.Path
	path.Begin(ops)
	path.MoveTo(r.Min)
	path.LineTo(f32.Pt(r.Max.X, r.Min.Y))
	path.LineTo(r.Max)
	path.LineTo(f32.Pt(r.Min.X, r.Max.Y))
	path.Close()

	paint.FillShape(ops, col, clip.Stroke{Path: path.End(), Width: thickness}.Op())
}

func fillRect(ops *op.Ops, r Rect, col color.NRGBA) {
	if r.Empty() {
		return
	}
	paint.FillShape(ops, col, clip.Rect(r.Image()).Op())
}
