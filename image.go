package carver

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
)

// ErrUnsupportedFormat is returned when the output file extension has no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// decodeImg decodes the source into an NRGBA image, honouring the EXIF orientation.
func decodeImg(r io.Reader) (*image.NRGBA, error) {
	src, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("could not decode the source image: %w", err)
	}
	return toNRGBA(src), nil
}

// encodeImg encodes an image to a destination of type io.Writer.
// Files are encoded according to their extension; any other writer receives a JPEG.
func encodeImg(w io.Writer, img image.Image) error {
	ext := ""
	if f, ok := w.(*os.File); ok && f != os.Stdout {
		ext = strings.ToLower(filepath.Ext(f.Name()))
	}

	switch ext {
	case "", ".jpg", ".jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".gif":
		return gif.Encode(w, img, nil)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// toNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
func toNRGBA(img image.Image) *image.NRGBA {
	if src, ok := img.(*image.NRGBA); ok && src.Bounds().Min == (image.Point{}) {
		return src
	}
	return imaging.Clone(img)
}

// cloneImage returns a copy of the image that shares no memory with it.
func cloneImage(img *image.NRGBA) *image.NRGBA {
	return imaging.Clone(img)
}

// rotateImage90 rotates the image by 90 degree counter clockwise.
func rotateImage90(src *image.NRGBA) *image.NRGBA {
	return imaging.Rotate90(src)
}

// rotateImage270 rotates the image by 270 degree counter clockwise.
func rotateImage270(src *image.NRGBA) *image.NRGBA {
	return imaging.Rotate270(src)
}
