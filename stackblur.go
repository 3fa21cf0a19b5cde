// Single channel variant of the StackBlur algorithm described here:
// http://incubator.quasimondo.com/processing/fast_blur_deluxe.php

package decor

import (
	"image"

	"github.com/esimov/decor/utils"
)

// maxBlurRadius is the largest radius covered by the lookup tables.
const maxBlurRadius = 254

var mulTable = [...]uint32{
	512, 512, 456, 512, 328, 456, 335, 512, 405, 328, 271, 456, 388, 335, 292, 512,
	454, 405, 364, 328, 298, 271, 496, 456, 420, 388, 360, 335, 312, 292, 273, 512,
	482, 454, 428, 405, 383, 364, 345, 328, 312, 298, 284, 271, 259, 496, 475, 456,
	437, 420, 404, 388, 374, 360, 347, 335, 323, 312, 302, 292, 282, 273, 265, 512,
	497, 482, 468, 454, 441, 428, 417, 405, 394, 383, 373, 364, 354, 345, 337, 328,
	320, 312, 305, 298, 291, 284, 278, 271, 265, 259, 507, 496, 485, 475, 465, 456,
	446, 437, 428, 420, 412, 404, 396, 388, 381, 374, 367, 360, 354, 347, 341, 335,
	329, 323, 318, 312, 307, 302, 297, 292, 287, 282, 278, 273, 269, 265, 261, 512,
	505, 497, 489, 482, 475, 468, 461, 454, 447, 441, 435, 428, 422, 417, 411, 405,
	399, 394, 389, 383, 378, 373, 368, 364, 359, 354, 350, 345, 341, 337, 332, 328,
	324, 320, 316, 312, 309, 305, 301, 298, 294, 291, 287, 284, 281, 278, 274, 271,
	268, 265, 262, 259, 257, 507, 501, 496, 491, 485, 480, 475, 470, 465, 460, 456,
	451, 446, 442, 437, 433, 428, 424, 420, 416, 412, 408, 404, 400, 396, 392, 388,
	385, 381, 377, 374, 370, 367, 363, 360, 357, 354, 350, 347, 344, 341, 338, 335,
	332, 329, 326, 323, 320, 318, 315, 312, 310, 307, 304, 302, 299, 297, 294, 292,
	289, 287, 285, 282, 280, 278, 275, 273, 271, 269, 267, 265, 263, 261, 259,
}

var shgTable = [...]uint32{
	9, 11, 12, 13, 13, 14, 14, 15, 15, 15, 15, 16, 16, 16, 16, 17,
	17, 17, 17, 17, 17, 17, 18, 18, 18, 18, 18, 18, 18, 18, 18, 19,
	19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 20, 20, 20,
	20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 21,
	21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 21,
	21, 21, 21, 21, 21, 21, 21, 21, 21, 21, 22, 22, 22, 22, 22, 22,
	22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22,
	22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 22, 23,
	23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23,
	23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23,
	23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23, 23,
	23, 23, 23, 23, 23, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24,
	24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24,
	24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24,
	24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24,
	24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24, 24,
}

// blurAlpha blurs the mask in place. Radii above maxBlurRadius are clamped.
func blurAlpha(img *image.Alpha, radius int) {
	radius = utils.Clamp(radius, 0, maxBlurRadius)
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if radius == 0 || w == 0 || h == 0 {
		return
	}

	line := make([]uint32, utils.Max(w, h))
	stack := make([]uint32, 2*radius+1)

	for y := 0; y < h; y++ {
		off := y * img.Stride
		for x := 0; x < w; x++ {
			line[x] = uint32(img.Pix[off+x])
		}
		blurLine(line[:w], stack, radius, func(i int, v uint8) {
			img.Pix[off+i] = v
		})
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			line[y] = uint32(img.Pix[y*img.Stride+x])
		}
		blurLine(line[:h], stack, radius, func(i int, v uint8) {
			img.Pix[i*img.Stride+x] = v
		})
	}
}

// blurLine runs one stack blur pass over src and hands every output
// sample to set. The stack is a ring buffer of 2*radius+1 samples.
func blurLine(src, stack []uint32, radius int, set func(int, uint8)) {
	n, last, div := len(src), len(src)-1, len(stack)
	mul, shg := uint64(mulTable[radius]), shgTable[radius]

	var sum, sumIn, sumOut uint64

	first := src[0]
	for i := 0; i <= radius; i++ {
		stack[i] = first
		sum += uint64(first) * uint64(i+1)
		sumOut += uint64(first)
	}
	for i := 1; i <= radius; i++ {
		p := src[utils.Min(i, last)]
		stack[i+radius] = p
		sum += uint64(p) * uint64(radius+1-i)
		sumIn += uint64(p)
	}

	sp := radius
	for i := 0; i < n; i++ {
		set(i, uint8((sum*mul)>>shg))

		sum -= sumOut
		start := sp + div - radius
		if start >= div {
			start -= div
		}
		sumOut -= uint64(stack[start])

		p := src[utils.Min(i+radius+1, last)]
		stack[start] = p
		sumIn += uint64(p)
		sum += sumIn

		sp++
		if sp >= div {
			sp = 0
		}
		sumOut += uint64(stack[sp])
		sumIn -= uint64(stack[sp])
	}
}
