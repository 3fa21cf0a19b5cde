package x11

import (
	"testing"

	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/stretchr/testify/assert"
)

func TestEdge_Values(t *testing.T) {
	assert := assert.New(t)

	// Values are fixed by the EWMH _NET_WM_MOVERESIZE message.
	assert.EqualValues(0, SizeTopLeft)
	assert.EqualValues(1, SizeTop)
	assert.EqualValues(2, SizeTopRight)
	assert.EqualValues(3, SizeRight)
	assert.EqualValues(4, SizeBottomRight)
	assert.EqualValues(5, SizeBottom)
	assert.EqualValues(6, SizeBottomLeft)
	assert.EqualValues(7, SizeLeft)
	assert.EqualValues(8, Move)
	assert.EqualValues(ewmh.Move, Move)
}

func TestStateAction(t *testing.T) {
	assert.Equal(t, ewmh.StateAdd, stateAction(true))
	assert.Equal(t, ewmh.StateRemove, stateAction(false))
	assert.Equal(t, 1, stateAction(true), "_NET_WM_STATE_ADD")
	assert.Equal(t, 0, stateAction(false), "_NET_WM_STATE_REMOVE")
}

func TestEdge_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("move", Move.String())
	assert.Equal("resize top-left", SizeTopLeft.String())
	assert.True(SizeLeft.valid())
	assert.False(Edge(9).valid())
	assert.Equal("Edge(9)", Edge(9).String())
}

func TestIsMaximized(t *testing.T) {
	tests := []struct {
		name   string
		states []string
		want   bool
	}{
		{"none", nil, false},
		{"horizontal only", []string{stateMaxHorz}, false},
		{"vertical only", []string{"_NET_WM_STATE_FOCUSED", stateMaxVert}, false},
		{"both", []string{stateMaxVert, "_NET_WM_STATE_FOCUSED", stateMaxHorz}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isMaximized(tt.states))
		})
	}
}
