package carver

import (
	"fmt"
	"image"

	"github.com/seamcarving/carver/utils"
)

// Seam is a connected top to bottom path through an image.
// Seam[y] is the column the path crosses on row y.
type Seam []int

// Carver computes the cumulative minimum energy table of an energy map
// and extracts the lowest energy vertical seam from it.
// A Carver is used for a single seam search and then discarded.
type Carver struct {
	Width  int
	Height int
	Points []float64
}

// NewCarver returns an initialized Carver.
func NewCarver(width, height int) *Carver {
	return &Carver{
		Width:  width,
		Height: height,
		Points: make([]float64, width*height),
	}
}

// Get energy pixel value.
func (c *Carver) get(x, y int) float64 {
	return c.Points[x+y*c.Width]
}

// Set energy pixel value.
func (c *Carver) set(x, y int, px float64) {
	c.Points[x+y*c.Width] = px
}

// ComputeSeams computes the cumulative minimum energy M for all possible
// connected seams, based on the following logic:
//   - the first row is a copy of the energy map's first row;
//   - every other entry (x, y) is the pixel energy summed with the smallest
//     cumulative value among (x-1, y-1), (x, y-1) and (x+1, y-1),
//     neighbours outside the image being ignored.
//
// The returned table shares its storage with the Carver.
func (c *Carver) ComputeSeams(energy *EnergyMap) *CumulativeEnergy {
	copy(c.Points[:c.Width], energy.Row(0))

	for y := 1; y < c.Height; y++ {
		row := energy.Row(y)
		for x := 0; x < c.Width; x++ {
			px := c.minNeighbour(x, y-1)
			c.set(x, y, row[x]+c.get(px, y-1))
		}
	}

	return &CumulativeEnergy{
		Width:  c.Width,
		Height: c.Height,
		Pix:    c.Points,
	}
}

// FindLowestEnergySeam backtracks the lowest energy vertical seam.
// It starts from the smallest entry of the bottom row, then walks up the table,
// choosing each time the upper neighbour with the lowest cumulative energy.
// Ties are always resolved towards the leftmost column.
func (c *Carver) FindLowestEnergySeam() Seam {
	seam := make(Seam, c.Height)
	if c.Height == 0 || c.Width == 0 {
		return seam
	}

	// Find the lowest seam from the bottom row.
	var px int
	bottom := c.Height - 1
	for x := 1; x < c.Width; x++ {
		if c.get(x, bottom) < c.get(px, bottom) {
			px = x
		}
	}
	seam[bottom] = px

	for y := bottom - 1; y >= 0; y-- {
		px = c.minNeighbour(px, y)
		seam[y] = px
	}
	return seam
}

// minNeighbour returns the column among x-1, x and x+1 on row y holding
// the smallest cumulative energy. Columns outside the table are skipped and
// the leftmost column wins on ties.
func (c *Carver) minNeighbour(x, y int) int {
	lo, hi := utils.Max(x-1, 0), utils.Min(x+1, c.Width-1)
	best := lo
	for i := lo + 1; i <= hi; i++ {
		if c.get(i, y) < c.get(best, y) {
			best = i
		}
	}
	return best
}

// FindVerticalSeam returns the lowest energy vertical seam of the image
// together with the cumulative energy table it was extracted from.
func FindVerticalSeam(img *image.NRGBA, energy *EnergyMap) (Seam, *CumulativeEnergy, error) {
	if err := checkPair(img, energy); err != nil {
		return nil, nil, err
	}
	c := NewCarver(energy.Width, energy.Height)
	table := c.ComputeSeams(energy)
	seam := c.FindLowestEnergySeam()

	if err := seam.Validate(energy.Width, energy.Height); err != nil {
		return nil, nil, err
	}
	return seam, table, nil
}

// Validate checks that the seam crosses every row of a width x height grid
// exactly once, stays inside it and moves at most one column between rows.
func (s Seam) Validate(width, height int) error {
	if len(s) != height {
		return fmt.Errorf("%w: length %d, want %d", ErrDegenerateSeam, len(s), height)
	}
	for y, x := range s {
		if x < 0 || x >= width {
			return fmt.Errorf("%w: column %d out of range at row %d", ErrDegenerateSeam, x, y)
		}
		if y > 0 {
			if d := x - s[y-1]; d < -1 || d > 1 {
				return fmt.Errorf("%w: rows %d and %d are not adjacent", ErrDegenerateSeam, y-1, y)
			}
		}
	}
	return nil
}

// checkPair verifies that the energy map covers the image exactly.
func checkPair(img *image.NRGBA, energy *EnergyMap) error {
	if err := checkImage(img); err != nil {
		return err
	}
	if energy == nil {
		return fmt.Errorf("%w: nil energy map", ErrShapeMismatch)
	}
	dx, dy := img.Bounds().Dx(), img.Bounds().Dy()
	if energy.Width != dx || energy.Height != dy || len(energy.Pix) != dx*dy {
		return fmt.Errorf("%w: image %dx%d, energy %dx%d",
			ErrShapeMismatch, dx, dy, energy.Width, energy.Height)
	}
	return nil
}
