package main

import (
	"context"
	"image"
	"log/slog"
	"sync/atomic"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"github.com/esimov/decor"
	"github.com/esimov/decor/internal/config"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// maxImageSize bounds the preview image before it is uploaded to the GPU.
const maxImageSize = 1366

// demo is a borderless window decorated by a decor.Frame. The frame style
// follows the configuration file, which is watched for changes.
type demo struct {
	cfg      atomic.Pointer[config.Config]
	path     string
	log      *slog.Logger
	override func(*config.Config)

	theme *material.Theme
	frame *decor.Frame
	img   struct {
		src image.Image
		op  paint.ImageOp
	}
	close    widget.Clickable
	maximize widget.Clickable
}

func newDemo(cfg *config.Config, path string, logger *slog.Logger) *demo {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	d := &demo{
		path:  path,
		log:   logger,
		theme: th,
		frame: decor.NewFrame(cfg.Frame.Style(), th),
	}
	d.cfg.Store(cfg)
	return d
}

// loadImage reads the image shown in the window. An empty path shows a
// placeholder text instead.
func (d *demo) loadImage(path string) error {
	if path == "" {
		return nil
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return errors.Wrapf(err, "cannot open image %s", path)
	}
	b := img.Bounds()
	if b.Dx() > maxImageSize || b.Dy() > maxImageSize {
		img = imaging.Fit(img, maxImageSize, maxImageSize, imaging.Lanczos)
	}
	d.img.src = img
	d.img.op = paint.NewImageOp(img)
	return nil
}

// run is the Gio event loop. It returns when the window is closed.
func (d *demo) run() error {
	cfg := d.cfg.Load()
	width, height := cfg.Window.Width, cfg.Window.Height
	if def := config.Default().Window; width <= 0 || height <= 0 {
		width, height = def.Width, def.Height
	}

	w := new(app.Window)
	w.Option(
		app.Title(cfg.Window.Title),
		app.Size(unit.Dp(width), unit.Dp(height)),
		app.Decorated(false),
	)
	host := decor.NewWindow(w, d.log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.watch(ctx, w)

	var ops op.Ops
	for {
		e := w.Event()
		host.Update(e)

		switch e := e.(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			d.layout(gtx, host)
			e.Frame(gtx.Ops)
		}
	}
}

// watch applies configuration changes to the frame style.
func (d *demo) watch(ctx context.Context, w *app.Window) {
	ch, err := config.Watch(ctx, d.path, d.log)
	if err != nil {
		d.log.Warn("config changes will not be applied", "error", err)
		return
	}
	go func() {
		for cfg := range ch {
			if d.override != nil {
				d.override(cfg)
			}
			if err := cfg.Validate(); err != nil {
				d.log.Warn("config reload ignored", "error", err)
				continue
			}
			d.cfg.Store(cfg)
			w.Invalidate()
		}
	}()
}

func (d *demo) layout(gtx C, host decor.Host) D {
	cfg := d.cfg.Load()
	d.frame.Style = cfg.Frame.Style()
	d.frame.Debug = cfg.Debug

	for {
		e, ok := gtx.Event(key.Filter{Name: key.NameEscape})
		if !ok {
			break
		}
		if e, ok := e.(key.Event); ok && e.State == key.Press {
			host.Send(decor.CloseCommand())
		}
	}
	if d.close.Clicked(gtx) {
		host.Send(decor.CloseCommand())
	}
	if d.maximize.Clicked(gtx) {
		host.Send(decor.MaximizeCommand(!host.Maximized()))
	}

	return d.frame.Layout(gtx, host, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				return d.header(gtx, cfg.Window.Title, host.Maximized())
			}),
			layout.Flexed(1, d.body),
		)
	})
}

func (d *demo) header(gtx C, title string, maximized bool) D {
	label := "Maximize"
	if maximized {
		label = "Restore"
	}
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(1, func(gtx C) D {
			return material.H6(d.theme, title).Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			return layout.Inset{Left: unit.Dp(4)}.Layout(gtx, material.Button(d.theme, &d.maximize, label).Layout)
		}),
		layout.Rigid(func(gtx C) D {
			return layout.Inset{Left: unit.Dp(4)}.Layout(gtx, material.Button(d.theme, &d.close, "Close").Layout)
		}),
	)
}

func (d *demo) body(gtx C) D {
	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
		if d.img.src == nil {
			return layout.Center.Layout(gtx,
				material.Body1(d.theme, "Drag the title bar to move, the border to resize.").Layout,
			)
		}
		return widget.Image{
			Src:      d.img.op,
			Fit:      widget.Contain,
			Position: layout.Center,
		}.Layout(gtx)
	})
}
