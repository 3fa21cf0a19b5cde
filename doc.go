/*
Package decor draws client side window decorations for Gio windows created
without native decorations: a rounded panel with a drop shadow, a resize
border and a draggable caption.

The frame does not move or resize the window by itself. Pointer gestures are
turned into commands sent to a Host, which hands them over to the window
system. Window adapts an *app.Window to the Host interface; on X11 the
interactive moves and resizes are delegated to the window manager.

A minimal event loop looks like this:

	package main

	import (
		"gioui.org/app"
		"gioui.org/layout"
		"gioui.org/op"
		"gioui.org/widget/material"

		"github.com/esimov/decor"
	)

	func main() {
		go func() {
			w := new(app.Window)
			w.Option(app.Decorated(false))

			host := decor.NewWindow(w, nil)
			frame := decor.NewFrame(decor.DefaultStyle(), material.NewTheme())

			var ops op.Ops
			for {
				e := w.Event()
				host.Update(e)
				switch e := e.(type) {
				case app.DestroyEvent:
					return
				case app.FrameEvent:
					gtx := app.NewContext(&ops, e)
					frame.Layout(gtx, host, func(gtx layout.Context) layout.Dimensions {
						return layout.Dimensions{Size: gtx.Constraints.Max}
					})
					e.Frame(gtx.Ops)
				}
			}
		}()
		app.Main()
	}

To check the options of the demo application type:

	$ decor --help
*/
package decor
