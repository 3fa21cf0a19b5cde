package decor

import (
	"image/color"

	"gioui.org/f32"
	"gioui.org/gesture"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// touchSlop is the distance a pointer pressed in the caption travels before
// the press turns into a window move.
const touchSlop = unit.Dp(3)

var defaultFill = color.NRGBA{R: 0xf8, G: 0xf8, B: 0xf8, A: 0xff}

// Frame draws a client side window frame: a rounded, shadowed panel filling
// the window. Pointer gestures on the resize border and on the caption are
// turned into window commands sent to the Host.
//
// Frame keeps gesture state between frames and must not be copied after use.
type Frame struct {
	Style Style
	// Theme provides the panel fill color.
	Theme *material.Theme
	// Debug outlines the interaction zones.
	Debug bool

	pointer struct {
		pos f32.Point
		ok  bool
	}
	resize  gesture.Drag
	caption struct {
		click gesture.Click
		drag  gesture.Drag
		start f32.Point
		armed bool
	}
	shadow shadowCache
}

// NewFrame returns a frame drawn with the given style and theme.
func NewFrame(style Style, th *material.Theme) *Frame {
	return &Frame{Style: style, Theme: th}
}

// Layout lays out the frame over the maximum constraints and w inside the
// decorated area. The dimensions returned by w are returned unchanged.
func (f *Frame) Layout(gtx layout.Context, host Host, w layout.Widget) layout.Dimensions {
	return Show[layout.Dimensions](f, gtx, host, w)
}

// Show runs one frame: it paints the panel, resolves the pointer against the
// interaction zones, sends the resulting commands to host and finally calls
// content with a context positioned and clipped to the decorated interior.
// The result of content is returned verbatim.
func Show[R any](f *Frame, gtx layout.Context, host Host, content func(gtx layout.Context) R) R {
	maximized := host.Maximized()
	size := gtx.Constraints.Max
	style := f.Style.Scale(gtx.Metric.PxPerDp)
	geo := style.Geometry(layout.FPt(size), maximized)
	panel := style.Panel(f.fill(), geo.Chrome)

	hit, gs := f.update(gtx, geo)
	for _, cmd := range hit.Commands(gs, maximized) {
		host.Send(cmd)
	}

	area := clip.Rect{Max: size}.Push(gtx.Ops)
	panel.paint(gtx.Ops, &f.shadow, size, geo.View)
	f.register(gtx, geo, hit, moveArea(host))

	shape := panel.shape(geo.View).Push(gtx.Ops)
	inner := geo.View.Inset(panel.InnerMargin).Image()
	trans := op.Offset(inner.Min).Push(gtx.Ops)
	cgtx := gtx
	cgtx.Constraints = layout.Constraints{Max: inner.Size()}
	res := content(cgtx)
	trans.Pop()
	shape.Pop()

	if f.Debug {
		geo.outline(gtx.Ops, hit)
	}
	f.track(gtx)
	area.Pop()

	return res
}

// update consumes the pointer events received since the previous frame and
// tests the latest pointer position against the frame geometry.
func (f *Frame) update(gtx layout.Context, geo Geometry) (Hit, Gestures) {
	var gs Gestures

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: &f.pointer,
			Kinds:  pointer.Enter | pointer.Leave | pointer.Move | pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Kind {
		case pointer.Leave, pointer.Cancel:
			f.pointer.ok = false
		default:
			f.pointer.pos, f.pointer.ok = e.Position, true
		}
	}

	// The resize border has no click semantics: the press starts the resize.
	for {
		e, ok := f.resize.Update(gtx.Metric, gtx.Source, gesture.Both)
		if !ok {
			break
		}
		if e.Kind == pointer.Press {
			f.pointer.pos, f.pointer.ok = e.Position, true
			gs.ResizeStarted = true
		}
	}

	slop := float32(gtx.Dp(touchSlop))
	for {
		e, ok := f.caption.drag.Update(gtx.Metric, gtx.Source, gesture.Both)
		if !ok {
			break
		}
		switch e.Kind {
		case pointer.Press:
			f.caption.start, f.caption.armed = e.Position, true
		case pointer.Drag:
			d := e.Position.Sub(f.caption.start)
			if f.caption.armed && d.X*d.X+d.Y*d.Y > slop*slop {
				f.caption.armed = false
				gs.CaptionDragStarted = true
			}
		case pointer.Release, pointer.Cancel:
			f.caption.armed = false
		}
	}
	for {
		e, ok := f.caption.click.Update(gtx.Source)
		if !ok {
			break
		}
		if e.Kind == gesture.KindClick && e.NumClicks == 2 {
			gs.CaptionDoubleClicked = true
		}
	}

	hit := geo.HitTest(f.pointer.pos, f.pointer.ok)
	// A caption press keeps its region until release.
	if f.caption.drag.Pressed() {
		hit.Caption = true
	}
	return hit, gs
}

// register declares the input regions of the zones matched by hit.
func (f *Frame) register(gtx layout.Context, geo Geometry, hit Hit, move bool) {
	if hit.Caption {
		stack := clip.Rect(geo.Caption.Image()).Push(gtx.Ops)
		if move {
			system.ActionInputOp(system.ActionMove).Add(gtx.Ops)
		}
		f.caption.click.Add(gtx.Ops)
		f.caption.drag.Add(gtx.Ops)
		stack.Pop()
	}
	if hit.Resize {
		stack := clip.Rect(geo.View.Image()).Push(gtx.Ops)
		f.resize.Add(gtx.Ops)
		if hit.HasDirection {
			hit.Direction.Cursor().Add(gtx.Ops)
		}
		stack.Pop()
	}
}

// track follows the pointer over the whole window without stealing events
// from the content.
func (f *Frame) track(gtx layout.Context) {
	defer pointer.PassOp{}.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, &f.pointer)
}

func moveArea(host Host) bool {
	h, ok := host.(MoveAreaHost)
	return ok && h.MoveArea()
}

func (f *Frame) fill() color.NRGBA {
	if f.Theme != nil {
		return f.Theme.Palette.Bg
	}
	return defaultFill
}
