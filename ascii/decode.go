package ascii

import (
	"fmt"
	"image"

	// Formats beyond the standard library's PNG, JPEG and GIF.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/disintegration/imaging"
)

// Decode opens and decodes the image at path. EXIF orientation is applied so
// photos render the way viewers show them.
func Decode(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return img, nil
}
