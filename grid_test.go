package carver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newSequenceGrid(width, height int) *Grid[int32] {
	g := NewGrid[int32](width, height)
	for i := range g.Pix {
		g.Pix[i] = int32(i)
	}
	return g
}

func TestGrid_Rotate90(t *testing.T) {
	g := newSequenceGrid(3, 2)
	// 0 1 2
	// 3 4 5
	r := g.Rotate90()

	assert.Equal(t, 2, r.Width)
	assert.Equal(t, 3, r.Height)
	assert.Equal(t, []int32{
		2, 5,
		1, 4,
		0, 3,
	}, r.Pix)

	assert.Equal(t, []int32{
		3, 0,
		4, 1,
		5, 2,
	}, g.Rotate270().Pix)
}

func TestGrid_RotationRoundTrip(t *testing.T) {
	orig := newSequenceGrid(5, 3)
	snapshot := orig.Clone()

	for k := 1; k <= 4; k++ {
		g := orig
		for i := 0; i < k; i++ {
			g = g.Rotate90()
		}
		for i := 0; i < k; i++ {
			g = g.Rotate270()
		}
		assert.True(t, g.Equal(orig), "%d quarter turns forth and back", k)
	}

	g := orig
	for i := 0; i < 4; i++ {
		g = g.Rotate90()
	}
	assert.True(t, g.Equal(orig))
	assert.True(t, orig.Equal(snapshot), "rotation must not modify the source grid")
}

func TestGrid_RemoveSeam(t *testing.T) {
	g := newSequenceGrid(3, 3)
	// 0 1 2
	// 3 4 5
	// 6 7 8
	r := g.RemoveSeam(Seam{0, 1, 2})

	assert.Equal(t, 2, r.Width)
	assert.Equal(t, 3, r.Height)
	assert.Equal(t, []int32{1, 2, 3, 5, 6, 7}, r.Pix)
	assert.True(t, g.Equal(newSequenceGrid(3, 3)))
}

func TestGrid_Equal(t *testing.T) {
	g := newSequenceGrid(2, 2)
	c := g.Clone()
	assert.True(t, g.Equal(c))

	c.Set(1, 1, 42)
	assert.False(t, g.Equal(c))
	assert.Equal(t, int32(3), g.At(1, 1))

	assert.False(t, g.Equal(newSequenceGrid(4, 1)))
	assert.False(t, g.Equal(nil))
}
