package carver

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/seamcarving/carver/utils"
)

// SeamCarver is the interface the Processor implements to resize an image.
// It takes the decoded source image and returns the resized one.
type SeamCarver interface {
	Resize(*image.NRGBA) (image.Image, error)
}

var _ SeamCarver = (*Processor)(nil)

// Processor options
type Processor struct {
	// NewWidth and NewHeight are the target dimensions. A zero value keeps
	// the source dimension. With Percentage set they are read as the
	// percentage of the source dimension to remove.
	NewWidth   int
	NewHeight  int
	Percentage bool

	// Scale resizes the image uniformly instead of carving seams.
	Scale bool

	// Mark returns the source image with its lowest energy vertical seam
	// highlighted in SeamColor (a hex color such as "#ff0000"), without resizing.
	Mark      bool
	SeamColor string

	Logger *log.Logger
}

// Resize is the main entry point for the image resize operation.
func (p *Processor) Resize(img *image.NRGBA) (image.Image, error) {
	if err := checkImage(img); err != nil {
		return nil, err
	}
	logger := p.logger()
	dx, dy := img.Bounds().Dx(), img.Bounds().Dy()

	if p.Mark {
		col, err := p.seamColor()
		if err != nil {
			return nil, err
		}
		energy, err := EstimateEnergy(img)
		if err != nil {
			return nil, err
		}
		logger.Debug("marking seam", "width", dx, "height", dy, "color", col)
		marked, err := MarkSeam(img, energy, col)
		if err != nil {
			return nil, err
		}
		return marked, nil
	}

	seamsX, seamsY, err := p.seamCount(dx, dy)
	if err != nil {
		return nil, err
	}
	if err := checkSeamCount(img, seamsX, seamsY); err != nil {
		return nil, err
	}

	if p.Scale {
		logger.Debug("scaling", "from", fmt.Sprintf("%dx%d", dx, dy),
			"to", fmt.Sprintf("%dx%d", dx-seamsX, dy-seamsY))
		return imaging.Resize(img, dx-seamsX, dy-seamsY, imaging.Lanczos), nil
	}

	start := time.Now()
	logger.Debug("carving", "width", dx, "height", dy, "seams_x", seamsX, "seams_y", seamsY)
	res, err := Resize(img, seamsX, seamsY)
	if err != nil {
		return nil, err
	}
	logger.Debug("carved",
		"size", fmt.Sprintf("%dx%d", res.Bounds().Dx(), res.Bounds().Dy()),
		"elapsed", utils.FormatTime(time.Since(start)))

	return res, nil
}

// Process decodes the source image, resizes it and encodes the result into w.
// We are using the io package, since we can provide different input and output types,
// as long as they implement the io.Reader and io.Writer interface.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	img, err := decodeImg(r)
	if err != nil {
		return err
	}
	res, err := p.Resize(img)
	if err != nil {
		return err
	}
	return encodeImg(w, res)
}

// seamCount converts the target dimensions into the number of seams to remove on each axis.
func (p *Processor) seamCount(dx, dy int) (int, int, error) {
	if p.Percentage {
		if p.NewWidth < 0 || p.NewWidth >= 100 || p.NewHeight < 0 || p.NewHeight >= 100 {
			return 0, 0, fmt.Errorf("%w: percentage must be between 0 and 99, got (%d, %d)",
				ErrInvalidDimension, p.NewWidth, p.NewHeight)
		}
		return dx * p.NewWidth / 100, dy * p.NewHeight / 100, nil
	}

	seams := func(size, target int, axis string) (int, error) {
		switch {
		case target == 0:
			return 0, nil
		case target < 0:
			return 0, fmt.Errorf("%w: negative %s %d", ErrInvalidDimension, axis, target)
		case target > size:
			return 0, fmt.Errorf("%w: new %s %d exceeds the image %s %d, enlargement is not supported",
				ErrInvalidDimension, axis, target, axis, size)
		}
		return size - target, nil
	}

	seamsX, err := seams(dx, p.NewWidth, "width")
	if err != nil {
		return 0, 0, err
	}
	seamsY, err := seams(dy, p.NewHeight, "height")
	if err != nil {
		return 0, 0, err
	}
	return seamsX, seamsY, nil
}

func (p *Processor) seamColor() (color.NRGBA, error) {
	if p.SeamColor == "" {
		return DefaultSeamColor, nil
	}
	col, err := utils.HexToRGBA(p.SeamColor)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid seam color: %w", err)
	}
	return col, nil
}

func (p *Processor) logger() *log.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return log.Default()
}
