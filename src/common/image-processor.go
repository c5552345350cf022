package common

// Image processor for favicon generation
//
// Responsibilities:
// 1. Decode the source logo (PNG, JPEG, GIF, BMP, TIFF, WebP)
// 2. Normalize it to non-premultiplied RGBA
// 3. Resample square copies with a Lanczos filter
// 4. Encode PNG and ICO outputs

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"
	_ "golang.org/x/image/webp"
)

// ErrSourceNotFound is returned when the source logo does not exist
var ErrSourceNotFound = errors.New("source image not found")

// LoadImage decodes the image at path
func LoadImage(path string) (image.Image, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, ErrSourceNotFound)
		}
		return nil, fmt.Errorf("failed to stat source image: %w", err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return img, nil
}

// Normalize returns img as *image.NRGBA. An image already in that mode is
// returned as-is; anything else is copied with an opaque alpha channel
// synthesized where the source has none.
func Normalize(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba
	}
	return imaging.Clone(img)
}

// ResizeSquare returns a size×size Lanczos resample of img. img is not modified.
func ResizeSquare(img image.Image, size int) *image.NRGBA {
	return imaging.Resize(img, size, size, imaging.Lanczos)
}

// SavePNG writes img to path in PNG format, replacing any existing file
func SavePNG(img image.Image, path string) error {
	return writeImage(path, func(w io.Writer) error {
		return imaging.Encode(w, img, imaging.PNG)
	})
}

// SaveICO writes img to path as a single-image ICO, replacing any existing file
func SaveICO(img image.Image, path string) error {
	return writeImage(path, func(w io.Writer) error {
		return ico.Encode(w, img)
	})
}

func writeImage(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
