package carver

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImage_RotationRoundTrip(t *testing.T) {
	img := newRandomImage(7, 4, 13)
	orig := cloneImage(img)

	for k := 1; k <= 4; k++ {
		res := img
		for i := 0; i < k; i++ {
			res = rotateImage90(res)
		}
		for i := 0; i < k; i++ {
			res = rotateImage270(res)
		}
		assert.Equal(t, orig.Bounds(), res.Bounds())
		assert.Equal(t, orig.Pix, res.Pix, "%d quarter turns forth and back", k)
	}

	res := img
	for i := 0; i < 4; i++ {
		res = rotateImage90(res)
	}
	assert.Equal(t, orig.Pix, res.Pix)
	assert.Equal(t, orig.Pix, img.Pix)
}

func TestImage_ToNRGBA(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(-2, -2, 3, 4))
	for y := -2; y < 4; y++ {
		for x := -2; x < 3; x++ {
			rgba.Set(x, y, color.RGBA{R: uint8(x + 2), G: uint8(y + 2), B: 7, A: 0xff})
		}
	}

	img := toNRGBA(rgba)
	assert.Equal(t, image.Rect(0, 0, 5, 6), img.Bounds())
	assert.Equal(t, color.NRGBA{R: 4, G: 5, B: 7, A: 0xff}, img.NRGBAAt(4, 5))

	nrgba := newRandomImage(3, 3, 1)
	assert.Same(t, nrgba, toNRGBA(nrgba))
}

func TestImage_EncodeByExtension(t *testing.T) {
	img := newRandomImage(6, 5, 2)
	dir := t.TempDir()

	for _, ext := range []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".PNG"} {
		t.Run(ext, func(t *testing.T) {
			f, err := os.Create(filepath.Join(dir, "out"+ext))
			require.NoError(t, err)
			require.NoError(t, encodeImg(f, img))
			require.NoError(t, f.Close())

			f, err = os.Open(f.Name())
			require.NoError(t, err)
			defer f.Close()

			res, err := decodeImg(f)
			require.NoError(t, err)
			assert.Equal(t, img.Bounds(), res.Bounds())
		})
	}

	f, err := os.Create(filepath.Join(dir, "out.tiff"))
	require.NoError(t, err)
	defer f.Close()
	assert.ErrorIs(t, encodeImg(f, img), ErrUnsupportedFormat)
}

func TestImage_EncodeLosslessPNG(t *testing.T) {
	img := newRandomImage(6, 5, 3)
	dir := t.TempDir()

	f, err := os.Create(filepath.Join(dir, "out.png"))
	require.NoError(t, err)
	require.NoError(t, encodeImg(f, img))
	require.NoError(t, f.Close())

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	res, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, img.Pix, toNRGBA(res).Pix)
}

func TestImage_DecodeInvalidData(t *testing.T) {
	_, err := decodeImg(bytes.NewBufferString("not an image"))
	assert.Error(t, err)
}
