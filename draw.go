package carver

import (
	"image"
	"image/color"

	"github.com/seamcarving/carver/utils"
)

// DefaultSeamColor is the highlight used by MarkSeam when no color is configured.
var DefaultSeamColor = color.NRGBA{R: 0xff, A: 0xff}

// seamThickness is the stroke width, in pixels, of a marked seam.
const seamThickness = 2

// MarkSeam returns a copy of the image with the lowest energy vertical seam drawn over it.
// On every row the seam pixel and its right neighbour are painted with col; when the seam
// touches the right edge the left neighbour is painted instead. Nothing is removed.
func MarkSeam(img *image.NRGBA, energy *EnergyMap, col color.NRGBA) (*image.NRGBA, error) {
	seam, _, err := FindVerticalSeam(img, energy)
	if err != nil {
		return nil, err
	}
	dst := cloneImage(img)
	dx := dst.Bounds().Dx()

	for y, x := range seam {
		start := x
		if start+seamThickness > dx {
			start = utils.Max(dx-seamThickness, 0)
		}
		for px := start; px < start+seamThickness && px < dx; px++ {
			dst.SetNRGBA(px, y, col)
		}
	}
	return dst, nil
}
