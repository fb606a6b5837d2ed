// Package ascii renders raster images as ASCII art.
//
// A conversion samples the source image onto a character grid with
// nearest-neighbor selection, maps the luminance of every sampled pixel to a
// glyph from [Ramp], and writes the rows to a text file named [OutputFile].
//
// The simplest entry point takes a [Request]:
//
//	err := ascii.Convert(ascii.Request{
//	    Source:    "photo.png",
//	    OutputDir: "out",
//	    Width:     80,
//	    Height:    40,
//	})
//
// Interactive front ends that collect raw text fields use
// [ValidateAndConvert], which parses the width and height before any image
// work is done.
//
// # Glyph mapping
//
// [Glyph] computes the Rec. 709 luminance of a pixel, truncates it to an
// integer, and divides it into 70 buckets of width 257/70. Index 0 is the
// densest glyph ("$") and index 69 is a space. Fully transparent pixels always
// render as a space. Because the weighted sum for pure white is slightly below
// 255 in floating point, white lands in the last bucket as well.
//
// # Errors
//
// Errors wrap one of the sentinel values below and can be tested with
// [errors.Is]:
//
//   - [ErrInvalidSize]: width or height is missing, not a number, or not
//     positive. Reported before the image is opened.
//   - [ErrMissingSource]: no source image path was given.
//   - [ErrDecode]: the source could not be opened or decoded.
//   - [ErrWriteOutput]: the output file could not be written.
//
// No output file is created when validation or decoding fails.
package ascii
