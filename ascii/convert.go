package ascii

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// OutputFile is the name of the file written inside the output folder.
const OutputFile = "output.txt"

// LineEnding selects the separator written after every row.
type LineEnding string

const (
	// LineEndingLF terminates rows with "\n".
	LineEndingLF LineEnding = "lf"
	// LineEndingCRLF terminates rows with "\r\n".
	LineEndingCRLF LineEnding = "crlf"
)

// GetAllLineEndingStrings returns the accepted line ending names.
func GetAllLineEndingStrings() []string {
	return []string{string(LineEndingLF), string(LineEndingCRLF)}
}

// ParseLineEnding parses a case-insensitive line ending name.
func ParseLineEnding(s string) (LineEnding, error) {
	le := LineEnding(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains([]LineEnding{LineEndingLF, LineEndingCRLF}, le) {
		return le, nil
	}

	return "", fmt.Errorf("%w: unknown line ending %q", ErrInvalidOption, s)
}

func (l LineEnding) separator() string {
	if l == LineEndingCRLF {
		return "\r\n"
	}

	return "\n"
}

// Converter turns images into ASCII art.
//
// Create instances with [NewConverter]. A Converter holds no per-conversion
// state; concurrent conversions into the same folder race on [OutputFile].
type Converter struct {
	logger     *slog.Logger
	lineEnding LineEnding
}

// Option configures a [Converter].
type Option func(*Converter)

// NewConverter creates a [Converter] with the given options. By default rows
// end with LF and logs go to [slog.Default].
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		logger:     slog.Default(),
		lineEnding: LineEndingLF,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithLogger sets the logger used for progress messages.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLineEnding sets the row terminator.
func WithLineEnding(le LineEnding) Option {
	return func(c *Converter) {
		c.lineEnding = le
	}
}

// Convert runs req with a default [Converter].
func Convert(req Request) error {
	return NewConverter().Convert(req)
}

// ValidateAndConvert parses raw form fields and runs the conversion. Size
// errors are returned before the image is opened.
func ValidateAndConvert(source, outputDir, width, height string) error {
	req, err := ParseRequest(source, outputDir, width, height)
	if err != nil {
		return err
	}

	return Convert(req)
}

// OutputPath returns the file a request writes to.
func (r Request) OutputPath() string {
	return filepath.Join(r.OutputDir, OutputFile)
}

// Convert validates req, decodes the source, and writes [OutputFile] into
// req.OutputDir, replacing any previous file.
func (c *Converter) Convert(req Request) error {
	err := req.Validate()
	if err != nil {
		return err
	}

	img, err := Decode(req.Source)
	if err != nil {
		return err
	}

	c.logger.Debug("decoded image",
		slog.String("source", req.Source),
		slog.Int("width", img.Bounds().Dx()),
		slog.Int("height", img.Bounds().Dy()),
	)

	var buf bytes.Buffer

	err = c.Render(&buf, img, req.Width, req.Height)
	if err != nil {
		return err
	}

	out := req.OutputPath()

	err = writeOutput(out, buf.Bytes())
	if err != nil {
		return err
	}

	c.logger.Info("wrote ascii art",
		slog.String("path", out),
		slog.Int("columns", req.Width),
		slog.Int("rows", req.Height),
	)

	return nil
}

// Render resamples img to width x height and writes the glyph grid to w, one
// terminated row per line. Non-positive sizes write nothing.
func (c *Converter) Render(w io.Writer, img image.Image, width, height int) error {
	grid := Resample(img, width, height)
	bounds := grid.Bounds()

	c.logger.Debug("resampled image",
		slog.Int("columns", bounds.Dx()),
		slog.Int("rows", bounds.Dy()),
	)

	bw := bufio.NewWriter(w)
	sep := c.lineEnding.separator()
	row := make([]byte, 0, bounds.Dx()+len(sep))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		row = row[:0]

		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := grid.NRGBAAt(x, y)
			row = append(row, Glyph(px.R, px.G, px.B, px.A))
		}

		row = append(row, sep...)

		_, err := bw.Write(row)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}
	}

	err := bw.Flush()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}

func writeOutput(path string, data []byte) error {
	dir := filepath.Dir(path)

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrWriteOutput, dir)
	}

	//nolint:gosec // Output folder is chosen by the user.
	err = os.WriteFile(path, data, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}
