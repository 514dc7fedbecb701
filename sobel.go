package carver

import (
	"fmt"
	"image"
	"runtime"

	"github.com/seamcarving/carver/utils"
	"golang.org/x/sync/errgroup"
)

type kernel [3][3]int32

var (
	kernelX = kernel{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}

	kernelY = kernel{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// borderResponse is the value a convolution leaves on the cells it does not compute.
// A zero there would make the image frame the cheapest place to cut.
const borderResponse = 255

// BorderEnergy is the energy of every cell on the outer one pixel frame
// of an energy map: the sum of the border response of both kernels.
const BorderEnergy = 2 * borderResponse

// minRowsPerBand keeps small images on a single goroutine.
const minRowsPerBand = 32

// EstimateEnergy converts the image into an energy map using the Sobel operator.
// The energy of an interior pixel is |Gx| + |Gy| computed over the grayscale image;
// the outermost rows and columns are set to BorderEnergy.
// See https://en.wikipedia.org/wiki/Sobel_operator
func EstimateEnergy(img *image.NRGBA) (*EnergyMap, error) {
	if err := checkImage(img); err != nil {
		return nil, err
	}
	gray := Grayscale(img)
	workers := runtime.GOMAXPROCS(0)

	gx := convolve(gray, kernelX, workers)
	gy := convolve(gray, kernelY, workers)

	energy := NewGrid[float64](gray.Width, gray.Height)
	for i := range energy.Pix {
		energy.Pix[i] = float64(utils.Abs(gx.Pix[i]) + utils.Abs(gy.Pix[i]))
	}
	return energy, nil
}

// convolve applies the kernel over every position where the 3x3 window fits
// inside the grid. The result of the window whose top left corner is (x, y)
// is stored at (x+1, y+1). Rows are independent, so they are split into bands
// processed concurrently by up to workers goroutines.
func convolve(gray *Grid[uint8], k kernel, workers int) *Grid[int32] {
	out := NewGrid[int32](gray.Width, gray.Height)
	out.Fill(borderResponse)

	rows := gray.Height - 2
	if rows <= 0 || gray.Width < 3 {
		return out
	}
	workers = utils.Max(workers, 1)
	band := utils.Max(minRowsPerBand, (rows+workers-1)/workers)

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < rows; start += band {
		start, end := start, utils.Min(start+band, rows)
		g.Go(func() error {
			for y := start; y < end; y++ {
				convolveRow(gray, out, k, y)
			}
			return nil
		})
	}
	// The row workers never fail.
	_ = g.Wait()

	return out
}

// convolveRow computes output row y+1. Each kernel row is reduced first,
// then the three partial sums are added in order.
func convolveRow(gray *Grid[uint8], out *Grid[int32], k kernel, y int) {
	dst := out.Row(y + 1)
	for x := 0; x < gray.Width-2; x++ {
		var sum int32
		for ky := 0; ky < 3; ky++ {
			src := gray.Row(y + ky)
			var rowSum int32
			for kx := 0; kx < 3; kx++ {
				rowSum += int32(src[x+kx]) * k[ky][kx]
			}
			sum += rowSum
		}
		dst[x+1] = sum
	}
}

// checkImage rejects nil and zero sized images.
func checkImage(img *image.NRGBA) error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrEmptyInput)
	}
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrEmptyInput, b.Dx(), b.Dy())
	}
	return nil
}
