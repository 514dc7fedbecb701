package carver

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of element types a Grid can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Grid is a row-major, two dimensional array of scalar values.
// Pix holds Width*Height elements; the value of cell (x, y) is Pix[y*Width+x].
type Grid[T Scalar] struct {
	Width  int
	Height int
	Pix    []T
}

// EnergyMap holds the local edge strength of every pixel of an image.
type EnergyMap = Grid[float64]

// CumulativeEnergy holds, for every cell, the minimum total energy of
// a connected path starting anywhere on the top row and ending in that cell.
type CumulativeEnergy = Grid[float64]

// NewGrid allocates a zero filled grid.
func NewGrid[T Scalar](width, height int) *Grid[T] {
	return &Grid[T]{
		Width:  width,
		Height: height,
		Pix:    make([]T, width*height),
	}
}

// At returns the value stored at column x, row y.
func (g *Grid[T]) At(x, y int) T {
	return g.Pix[y*g.Width+x]
}

// Set stores v at column x, row y.
func (g *Grid[T]) Set(x, y int, v T) {
	g.Pix[y*g.Width+x] = v
}

// Row returns the backing slice of row y.
func (g *Grid[T]) Row(y int) []T {
	return g.Pix[y*g.Width : (y+1)*g.Width]
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.Pix {
		g.Pix[i] = v
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{
		Width:  g.Width,
		Height: g.Height,
		Pix:    slices.Clone(g.Pix),
	}
}

// Equal reports whether both grids have the same shape and values.
func (g *Grid[T]) Equal(o *Grid[T]) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.Width == o.Width && g.Height == o.Height && slices.Equal(g.Pix, o.Pix)
}

// Rotate90 returns the grid rotated by 90 degree counter clockwise.
// It uses the same orientation as rotateImage90, so an image and
// its energy map stay aligned when rotated together.
func (g *Grid[T]) Rotate90() *Grid[T] {
	dst := NewGrid[T](g.Height, g.Width)
	for dstY := 0; dstY < dst.Height; dstY++ {
		srcX := g.Width - dstY - 1
		row := dst.Row(dstY)
		for dstX := range row {
			row[dstX] = g.Pix[dstX*g.Width+srcX]
		}
	}
	return dst
}

// Rotate270 returns the grid rotated by 270 degree counter clockwise.
// It is the inverse of Rotate90.
func (g *Grid[T]) Rotate270() *Grid[T] {
	dst := NewGrid[T](g.Height, g.Width)
	for dstY := 0; dstY < dst.Height; dstY++ {
		row := dst.Row(dstY)
		for dstX := range row {
			srcY := g.Height - dstX - 1
			row[dstX] = g.Pix[srcY*g.Width+dstY]
		}
	}
	return dst
}

// RemoveSeam returns a new grid, one column narrower, without the cells
// the seam passes through. The receiver is left untouched.
// The seam must be valid for the grid, see Seam.Validate.
func (g *Grid[T]) RemoveSeam(seam Seam) *Grid[T] {
	dst := NewGrid[T](g.Width-1, g.Height)
	for y := 0; y < g.Height; y++ {
		src := g.Row(y)
		x := seam[y]
		row := dst.Row(y)
		copy(row[:x], src[:x])
		copy(row[x:], src[x+1:])
	}
	return dst
}
