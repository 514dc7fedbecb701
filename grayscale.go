package carver

import (
	"image"
	"math"
)

// Luma weights applied to the red, green and blue channels.
const (
	lumaR = 0.2989
	lumaG = 0.5870
	lumaB = 0.1140
)

// Grayscale converts the image to a single channel intensity grid.
// The luma value is truncated (floored), not rounded.
func Grayscale(src *image.NRGBA) *Grid[uint8] {
	bounds := src.Bounds()
	dx, dy := bounds.Dx(), bounds.Dy()
	gray := NewGrid[uint8](dx, dy)

	for y := 0; y < dy; y++ {
		off := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		row := gray.Row(y)
		for x := range row {
			r, g, b := src.Pix[off], src.Pix[off+1], src.Pix[off+2]
			row[x] = luma(r, g, b)
			off += 4
		}
	}
	return gray
}

// luma rounds every product explicitly so the sum is never fused into
// FMA instructions, which could move the result across an integer.
func luma(r, g, b uint8) uint8 {
	return uint8(math.Floor(float64(lumaR*float64(r)) + float64(lumaG*float64(g)) + float64(lumaB*float64(b))))
}
