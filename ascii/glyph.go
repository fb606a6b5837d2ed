package ascii

import "image/color"

// Ramp is the ordered glyph set, from visually densest to sparsest.
// Index 0 is "$" and the last index is a space.
const Ramp = "$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. "

// unit is the luminance span covered by one glyph.
const unit = 257.0 / float64(len(Ramp))

// Luminance returns the integer Rec. 709 luminance of an RGB triple.
func Luminance(r, g, b uint8) int {
	// Each product is rounded on its own so the result does not depend on
	// whether the platform fuses multiply-add.
	l := float64(0.2126*float64(r)) + float64(0.7152*float64(g)) + float64(0.0722*float64(b))

	return int(l)
}

// Index returns the [Ramp] index for a luminance value. Values outside 0-255
// are clamped.
func Index(lum int) int {
	lum = max(lum, 0)
	lum = min(lum, 255)

	return min(int(float64(lum)/unit), len(Ramp)-1)
}

// Glyph maps one pixel to a glyph from [Ramp]. A zero alpha always yields a
// space; sources without transparency should pass 255.
func Glyph(r, g, b, a uint8) byte {
	if a == 0 {
		return ' '
	}

	return Ramp[Index(Luminance(r, g, b))]
}

// GlyphOf maps any [color.Color] to a glyph by reading it as non-premultiplied
// RGBA.
func GlyphOf(c color.Color) byte {
	n, _ := color.NRGBAModel.Convert(c).(color.NRGBA)

	return Glyph(n.R, n.G, n.B, n.A)
}
