// Package config loads the frame configuration from a YAML file.
package config

import (
	"image/color"
	"math"

	"gioui.org/f32"
	"github.com/pkg/errors"

	"github.com/esimov/decor"
)

// Config is the application configuration.
type Config struct {
	Frame  Frame  `yaml:",inline"`
	Window Window `yaml:"window"`
	Debug  bool   `yaml:"debug"`
}

// Window holds the initial window options.
type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Frame mirrors decor.Style. Lengths are in Dp.
type Frame struct {
	ResizeMargin Margin  `yaml:"resize_margin"`
	Caption      Caption `yaml:"caption"`
	InnerMargin  Margin  `yaml:"inner_margin"`
	CornerRadius Corners `yaml:"corner_radius"`
	Shadow       Shadow  `yaml:"shadow"`
}

// Margin accepts either a single thickness or a per side mapping.
type Margin struct {
	Left   float32 `yaml:"left"`
	Right  float32 `yaml:"right"`
	Top    float32 `yaml:"top"`
	Bottom float32 `yaml:"bottom"`
}

// Corners accepts either a single radius or a per corner mapping.
type Corners struct {
	NW float32 `yaml:"nw"`
	NE float32 `yaml:"ne"`
	SE float32 `yaml:"se"`
	SW float32 `yaml:"sw"`
}

// Caption is the draggable area. Max edges may be "inf".
type Caption struct {
	Min Point `yaml:"min"`
	Max Point `yaml:"max"`
}

// Point is a pair of coordinates.
type Point struct {
	X Length `yaml:"x"`
	Y Length `yaml:"y"`
}

// Length is a coordinate which may be unbounded.
type Length float32

// Shadow describes the drop shadow.
type Shadow struct {
	OffsetX float32 `yaml:"offset_x"`
	OffsetY float32 `yaml:"offset_y"`
	Blur    float32 `yaml:"blur"`
	Spread  float32 `yaml:"spread"`
	Color   Color   `yaml:"color"`
}

// Color is a hex encoded color.
type Color color.NRGBA

// Default returns the configuration matching decor.DefaultStyle.
func Default() *Config {
	return &Config{
		Frame: FromStyle(decor.DefaultStyle()),
		Window: Window{
			Title:  "Decor",
			Width:  640,
			Height: 420,
		},
	}
}

// FromStyle converts a style into its configuration form.
func FromStyle(s decor.Style) Frame {
	m, in, c, sh := s.ResizeMargin(), s.InnerMargin(), s.CornerRadius(), s.Shadow()
	caption := s.Caption()

	return Frame{
		ResizeMargin: Margin(m),
		Caption: Caption{
			Min: Point{X: Length(caption.Min.X), Y: Length(caption.Min.Y)},
			Max: Point{X: Length(caption.Max.X), Y: Length(caption.Max.Y)},
		},
		InnerMargin:  Margin(in),
		CornerRadius: Corners(c),
		Shadow: Shadow{
			OffsetX: sh.Offset.X,
			OffsetY: sh.Offset.Y,
			Blur:    sh.Blur,
			Spread:  sh.Spread,
			Color:   Color(sh.Color),
		},
	}
}

// Style converts the configuration into a frame style.
func (f Frame) Style() decor.Style {
	return decor.DefaultStyle().
		WithResizeMargin(decor.Margin(f.ResizeMargin)).
		WithCaption(decor.Rect{
			Min: f32.Pt(float32(f.Caption.Min.X), float32(f.Caption.Min.Y)),
			Max: f32.Pt(float32(f.Caption.Max.X), float32(f.Caption.Max.Y)),
		}).
		WithInnerMargin(decor.Margin(f.InnerMargin)).
		WithCornerRadius(decor.Corners(f.CornerRadius)).
		WithShadow(decor.Shadow{
			Offset: f32.Pt(f.Shadow.OffsetX, f.Shadow.OffsetY),
			Blur:   f.Shadow.Blur,
			Spread: f.Shadow.Spread,
			Color:  color.NRGBA(f.Shadow.Color),
		})
}

// Validate reports the first invalid value.
func (c *Config) Validate() error {
	f := c.Frame
	checks := []struct {
		name string
		v    float32
	}{
		{"resize_margin.left", f.ResizeMargin.Left},
		{"resize_margin.right", f.ResizeMargin.Right},
		{"resize_margin.top", f.ResizeMargin.Top},
		{"resize_margin.bottom", f.ResizeMargin.Bottom},
		{"inner_margin.left", f.InnerMargin.Left},
		{"inner_margin.right", f.InnerMargin.Right},
		{"inner_margin.top", f.InnerMargin.Top},
		{"inner_margin.bottom", f.InnerMargin.Bottom},
		{"corner_radius.nw", f.CornerRadius.NW},
		{"corner_radius.ne", f.CornerRadius.NE},
		{"corner_radius.se", f.CornerRadius.SE},
		{"corner_radius.sw", f.CornerRadius.SW},
		{"shadow.blur", f.Shadow.Blur},
		{"shadow.spread", f.Shadow.Spread},
	}
	for _, ch := range checks {
		if ch.v < 0 || math.IsNaN(float64(ch.v)) {
			return errors.Errorf("%s must be a non-negative number, got %v", ch.name, ch.v)
		}
	}
	if f.Caption.Max.X < f.Caption.Min.X || f.Caption.Max.Y < f.Caption.Min.Y {
		return errors.New("caption max must not be smaller than caption min")
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return errors.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}
