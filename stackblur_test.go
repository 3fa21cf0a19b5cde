package decor

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func uniformAlpha(w, h int, v uint8) *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

func TestBlurAlpha_Uniform(t *testing.T) {
	for _, radius := range []int{1, 3, 10, 254} {
		img := uniformAlpha(24, 12, 200)
		blurAlpha(img, radius)
		for i, v := range img.Pix {
			if !assert.InDelta(t, 200, int(v), 1, "radius %d, pixel %d", radius, i) {
				return
			}
		}
	}
}

func TestBlurAlpha_ZeroRadius(t *testing.T) {
	img := uniformAlpha(8, 8, 0)
	img.Pix[27] = 255
	want := append([]uint8(nil), img.Pix...)

	blurAlpha(img, 0)
	assert.Equal(t, want, img.Pix)

	blurAlpha(img, -4)
	assert.Equal(t, want, img.Pix)
}

func TestBlurAlpha_Spreads(t *testing.T) {
	assert := assert.New(t)

	img := uniformAlpha(21, 21, 0)
	img.Pix[10*img.Stride+10] = 255
	blurAlpha(img, 2)

	at := func(x, y int) int { return int(img.Pix[y*img.Stride+x]) }

	assert.Less(at(10, 10), 255)
	assert.Greater(at(10, 10), 0)
	assert.Greater(at(11, 10), 0)
	// The kernel is symmetric.
	assert.Equal(at(9, 10), at(11, 10))
	assert.Equal(at(10, 9), at(10, 11))
	assert.Equal(at(9, 9), at(11, 11))
	// Pixels beyond the radius are not reached.
	assert.Equal(0, at(13, 10))
	assert.Equal(0, at(0, 0))
}
