package ascii_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	black = color.NRGBA{A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// newImage builds an image from rows of pixels.
func newImage(rows ...[]color.NRGBA) *image.NRGBA {
	h := len(rows)

	w := 0
	if h > 0 {
		w = len(rows[0])
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y, row := range rows {
		for x, c := range row {
			img.SetNRGBA(x, y, c)
		}
	}

	return img
}

// checkerboard returns the 2x2 image black, white / white, black.
func checkerboard() *image.NRGBA {
	return newImage(
		[]color.NRGBA{black, white},
		[]color.NRGBA{white, black},
	)
}

// writePNG encodes img into dir/name and returns the path.
func writePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()

	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	require.NoError(t, err)

	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	return path
}
