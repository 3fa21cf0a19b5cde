package utils

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMath_MinMax(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, Min(2, 5))
	assert.Equal(2, Min(5, 2))
	assert.Equal(5, Max(2, 5))
	assert.Equal(float32(1.5), Max(float32(-1), 1.5))
	assert.Equal(3.0, Abs(-3.0))
	assert.Equal(0, Clamp(-4, 0, 10))
	assert.Equal(10, Clamp(14, 0, 10))
	assert.Equal(7, Clamp(7, 0, 10))
}

func TestColor_HexToRGBA(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#000000", color.NRGBA{A: 0xff}},
		{"#00000020", color.NRGBA{A: 0x20}},
		{"fff", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{" #2196f3 ", color.NRGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0xff}},
	}
	for _, tt := range tests {
		got, err := HexToRGBA(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "#12", "#1234567", "#zzzzzz"} {
		_, err := HexToRGBA(bad)
		assert.Error(t, err, bad)
	}
}

func TestColor_RoundTrip(t *testing.T) {
	c := color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	got, err := HexToRGBA(RGBAToHex(c))
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestFormat_DecorateText(t *testing.T) {
	assert.Equal(t, "plain", DecorateText("plain", ErrorMessage, false))
	assert.Equal(t, ErrorColor+"boom"+DefaultColor, DecorateText("boom", ErrorMessage, true))
}
