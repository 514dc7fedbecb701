package carver

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrayscale(t *testing.T) {
	img := newUniformImage(imgWidth, imgHeight, color.NRGBA{R: 177, G: 177, B: 177, A: 255})
	gray := Grayscale(img)

	assert.Equal(t, imgWidth, gray.Width)
	assert.Equal(t, imgHeight, gray.Height)
	for _, v := range gray.Pix {
		// 0.9999 * 177 = 176.98, truncated.
		assert.Equal(t, uint8(176), v)
	}
}

func TestGrayscale_ShouldFloorLuma(t *testing.T) {
	testCases := []struct {
		col  color.NRGBA
		want uint8
	}{
		{col: color.NRGBA{A: 255}, want: 0},
		{col: color.NRGBA{R: 255, G: 255, B: 255, A: 255}, want: 254},
		{col: color.NRGBA{R: 100, A: 255}, want: 29},
		{col: color.NRGBA{G: 100, A: 255}, want: 58},
		{col: color.NRGBA{B: 10, A: 255}, want: 1},
		{col: color.NRGBA{R: 10, G: 20, B: 30, A: 255}, want: 18},
	}

	for _, tc := range testCases {
		img := newUniformImage(1, 1, tc.col)
		assert.Equal(t, tc.want, Grayscale(img).At(0, 0), "color %v", tc.col)
	}
}

func TestGrayscale_LumaMatchesIntegerWeights(t *testing.T) {
	// Weights scaled by 10000: 2989, 5870 and 1140.
	for v := 0; v < 256; v++ {
		c := uint8(v)
		assert.Equal(t, uint8(2989*v/10000), luma(c, 0, 0), "red %d", v)
		assert.Equal(t, uint8(5870*v/10000), luma(0, c, 0), "green %d", v)
		assert.Equal(t, uint8(1140*v/10000), luma(0, 0, c), "blue %d", v)
		assert.Equal(t, uint8(9999*v/10000), luma(c, c, c), "gray %d", v)
	}
}
