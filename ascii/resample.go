package ascii

import (
	"image"

	"golang.org/x/image/draw"
)

// Resample scales img to exactly width x height pixels using nearest-neighbor
// selection. Each destination pixel copies the source pixel under its center;
// nothing is blended. A non-positive width or height yields an empty image.
func Resample(img image.Image, width, height int) *image.NRGBA {
	if width <= 0 || height <= 0 {
		return image.NewNRGBA(image.Rectangle{})
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))

	src := img.Bounds()
	if src.Empty() {
		return dst
	}

	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)

	return dst
}
