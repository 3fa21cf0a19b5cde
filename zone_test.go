package decor

import (
	"testing"

	"gioui.org/f32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioGeometry is a 320x120 window with a 4px resize border, a caption
// strip at (4,4)-(MAX,44) and a 20px shadow gutter.
func scenarioGeometry(maximized bool) Geometry {
	style := DefaultStyle().
		WithResizeMargin(UniformMargin(4)).
		WithCaption(rect(4, 4, Unbounded, 44)).
		WithShadow(Shadow{Blur: 18, Spread: 2})
	return style.Geometry(f32.Pt(320, 120), maximized)
}

func TestGeometry_Scenario(t *testing.T) {
	assert := assert.New(t)

	geo := scenarioGeometry(false)
	assert.True(geo.Chrome)
	assert.Equal(float32(20), geo.ShadowWidth)
	assert.Equal(rect(20, 20, 300, 100), geo.View)
	assert.Equal(rect(24, 24, 296, 96), geo.Core)
	assert.Equal(rect(24, 24, 296, 64), geo.Caption)

	// Far corner of the shadow gutter.
	assert.Equal(Hit{}, geo.HitTest(f32.Pt(1, 1), true))

	hit := geo.HitTest(f32.Pt(25, 25), true)
	assert.Equal(Hit{Caption: true}, hit)

	hit = geo.HitTest(f32.Pt(21, 60), true)
	assert.Equal(Hit{Resize: true, Direction: West, HasDirection: true}, hit)
	assert.Equal(West.Cursor(), hit.Direction.Cursor())
	assert.Equal([]Command{ResizeCommand(West)}, hit.Commands(Gestures{ResizeStarted: true}, false))
}

func TestGeometry_Maximized(t *testing.T) {
	assert := assert.New(t)

	geo := scenarioGeometry(true)
	assert.False(geo.Chrome)
	assert.Equal(float32(0), geo.ShadowWidth)
	assert.Equal(rect(0, 0, 320, 120), geo.View)
	assert.Equal(rect(4, 4, 316, 116), geo.Core)
	assert.Equal(rect(4, 4, 316, 44), geo.Caption)

	for _, p := range []f32.Point{{X: 1, Y: 1}, {X: 1, Y: 60}, {X: 319, Y: 119}, {X: 160, Y: 118}} {
		hit := geo.HitTest(p, true)
		assert.False(hit.Resize, "no resize region while maximized at %v", p)
		assert.False(hit.HasDirection)
		assert.Empty(hit.Commands(Gestures{ResizeStarted: true}, true))
	}
}

func TestGeometry_CaptionInsideCore(t *testing.T) {
	styles := []Style{
		DefaultStyle(),
		DefaultStyle().WithCaption(rect(-Unbounded, -Unbounded, Unbounded, Unbounded)),
		DefaultStyle().WithCaption(rect(0, 0, 1000, 1000)).WithResizeMargin(UniformMargin(12)),
		DefaultStyle().WithCaption(rect(500, 500, 600, 600)),
		DefaultStyle().WithShadow(NoShadow),
	}
	for _, s := range styles {
		for _, maximized := range []bool{false, true} {
			geo := s.Geometry(f32.Pt(320, 120), maximized)
			assert.True(t, geo.Core.ContainsRect(geo.Caption), "caption %v outside core %v", geo.Caption, geo.Core)
		}
	}
}

func TestGeometry_CaptionTranslatedByShadow(t *testing.T) {
	geo := DefaultStyle().
		WithCaption(rect(10, 10, 50, 30)).
		Geometry(f32.Pt(400, 300), false)
	assert.Equal(t, rect(30, 30, 70, 50), geo.Caption)
}

func TestHitTest(t *testing.T) {
	geo := scenarioGeometry(false)

	tests := []struct {
		name string
		p    f32.Point
		ok   bool
		want Hit
	}{
		{"no pointer", f32.Pt(21, 60), false, Hit{}},
		{"outside the window", f32.Pt(-5, -5), true, Hit{}},
		{"shadow gutter", f32.Pt(310, 60), true, Hit{}},
		{"core below the caption", f32.Pt(160, 80), true, Hit{}},
		{"caption", f32.Pt(160, 40), true, Hit{Caption: true}},
		{"north edge", f32.Pt(160, 21), true, Hit{Resize: true, Direction: North, HasDirection: true}},
		{"south east corner", f32.Pt(298, 98), true, Hit{Resize: true, Direction: SouthEast, HasDirection: true}},
		{"east edge", f32.Pt(299, 60), true, Hit{Resize: true, Direction: East, HasDirection: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, geo.HitTest(tt.p, tt.ok))
		})
	}
}

func TestHit_Commands(t *testing.T) {
	west := Hit{Resize: true, Direction: West, HasDirection: true}
	caption := Hit{Caption: true}

	tests := []struct {
		name      string
		hit       Hit
		gs        Gestures
		maximized bool
		want      []Command
	}{
		{"idle", west, Gestures{}, false, nil},
		{"resize", west, Gestures{ResizeStarted: true}, false, []Command{ResizeCommand(West)}},
		{"resize without direction", Hit{Resize: true}, Gestures{ResizeStarted: true}, false, nil},
		{"resize gesture elsewhere", caption, Gestures{ResizeStarted: true}, false, nil},
		{"drag", caption, Gestures{CaptionDragStarted: true}, false, []Command{DragCommand()}},
		{"maximize", caption, Gestures{CaptionDoubleClicked: true}, false, []Command{MaximizeCommand(true)}},
		{"restore", caption, Gestures{CaptionDoubleClicked: true}, true, []Command{MaximizeCommand(false)}},
		{"one caption command", caption, Gestures{CaptionDragStarted: true, CaptionDoubleClicked: true}, false, []Command{DragCommand()}},
		{"caption gesture elsewhere", Hit{}, Gestures{CaptionDragStarted: true, CaptionDoubleClicked: true}, false, nil},
		{
			"resize first",
			Hit{Resize: true, Direction: North, HasDirection: true, Caption: true},
			Gestures{ResizeStarted: true, CaptionDragStarted: true},
			false,
			[]Command{ResizeCommand(North), DragCommand()},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.hit.Commands(tt.gs, tt.maximized))
		})
	}
}

func TestCommand_String(t *testing.T) {
	require.Equal(t, "BeginResize(NorthWest)", ResizeCommand(NorthWest).String())
	require.Equal(t, "BeginDrag", DragCommand().String())
	require.Equal(t, "SetMaximized(true)", MaximizeCommand(true).String())
	require.Equal(t, "Close", CloseCommand().String())
	require.Equal(t, "Command(0)", Command{}.String())
}
