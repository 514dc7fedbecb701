package carver

import (
	"fmt"
	"image"
)

// RemoveSeam returns a copy of the image, one pixel narrower,
// without the pixels the seam passes through.
func RemoveSeam(img *image.NRGBA, seam Seam) *image.NRGBA {
	bounds := img.Bounds()
	dx, dy := bounds.Dx(), bounds.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, dx-1, dy))

	for y := 0; y < dy; y++ {
		src := img.Pix[img.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
		row := dst.Pix[dst.PixOffset(0, y):]
		cut := seam[y] * 4

		copy(row[:cut], src[:cut])
		copy(row[cut:(dx-1)*4], src[cut+4:dx*4])
	}
	return dst
}

// RemoveVerticalSeam finds the lowest energy vertical seam and removes it from
// both the image and its energy map. The energy of the remaining pixels is
// carried over unchanged; the inputs are not modified.
func RemoveVerticalSeam(img *image.NRGBA, energy *EnergyMap) (*image.NRGBA, *EnergyMap, error) {
	seam, _, err := FindVerticalSeam(img, energy)
	if err != nil {
		return nil, nil, err
	}
	if img.Bounds().Dx() < 2 {
		return nil, nil, fmt.Errorf("%w: cannot remove the last column", ErrInvalidDimension)
	}
	return RemoveSeam(img, seam), energy.RemoveSeam(seam), nil
}

// RemoveHorizontalSeam removes the lowest energy horizontal seam. The image and the
// energy map are rotated by a quarter turn, a vertical seam is removed, and both are
// rotated back by the inverse quarter turn.
func RemoveHorizontalSeam(img *image.NRGBA, energy *EnergyMap) (*image.NRGBA, *EnergyMap, error) {
	if err := checkPair(img, energy); err != nil {
		return nil, nil, err
	}
	img, energy, err := RemoveVerticalSeam(rotateImage90(img), energy.Rotate90())
	if err != nil {
		return nil, nil, err
	}
	return rotateImage270(img), energy.Rotate270(), nil
}

// Resize shrinks the image by removing seamsX vertical and then seamsY horizontal seams.
// The energy map is estimated once and then updated alongside the image after every
// removal. Requests which would leave a zero sized image are rejected upfront.
func Resize(img *image.NRGBA, seamsX, seamsY int) (*image.NRGBA, error) {
	if err := checkImage(img); err != nil {
		return nil, err
	}
	if err := checkSeamCount(img, seamsX, seamsY); err != nil {
		return nil, err
	}
	if seamsX == 0 && seamsY == 0 {
		return cloneImage(img), nil
	}

	energy, err := EstimateEnergy(img)
	if err != nil {
		return nil, err
	}
	for i := 0; i < seamsX; i++ {
		if img, energy, err = RemoveVerticalSeam(img, energy); err != nil {
			return nil, err
		}
	}
	for i := 0; i < seamsY; i++ {
		if img, energy, err = RemoveHorizontalSeam(img, energy); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// checkSeamCount validates the number of seams requested on each axis.
func checkSeamCount(img *image.NRGBA, seamsX, seamsY int) error {
	dx, dy := img.Bounds().Dx(), img.Bounds().Dy()

	switch {
	case seamsX < 0 || seamsY < 0:
		return fmt.Errorf("%w: negative seam count (%d, %d)", ErrInvalidDimension, seamsX, seamsY)
	case seamsX >= dx:
		return fmt.Errorf("%w: cannot remove %d columns from an image %d pixels wide",
			ErrInvalidDimension, seamsX, dx)
	case seamsY >= dy:
		return fmt.Errorf("%w: cannot remove %d rows from an image %d pixels high",
			ErrInvalidDimension, seamsY, dy)
	}
	return nil
}
