package ascii

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors returned by request validation and conversion.
var (
	ErrInvalidSize   = errors.New("invalid width or height")
	ErrMissingSource = errors.New("missing source image")
	ErrDecode        = errors.New("decode image")
	ErrWriteOutput   = errors.New("write output")
	ErrInvalidOption = errors.New("invalid option")
)

// Request describes a single conversion.
type Request struct {
	// Source is the path of the image to convert.
	Source string
	// OutputDir is the folder that receives [OutputFile]. Empty means the
	// current directory.
	OutputDir string
	// Width and Height are the size of the character grid.
	Width  int
	Height int
}

// ParseRequest builds a [Request] from raw text fields, as collected by a
// form. Width and height must be base-10 positive integers; surrounding
// whitespace is ignored.
func ParseRequest(source, outputDir, width, height string) (Request, error) {
	w, err := parseSize("width", width)
	if err != nil {
		return Request{}, err
	}

	h, err := parseSize("height", height)
	if err != nil {
		return Request{}, err
	}

	req := Request{
		Source:    strings.TrimSpace(source),
		OutputDir: strings.TrimSpace(outputDir),
		Width:     w,
		Height:    h,
	}

	err = req.Validate()
	if err != nil {
		return Request{}, err
	}

	return req, nil
}

// Validate checks the request without touching the filesystem.
func (r Request) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, r.Width, r.Height)
	}

	if r.Source == "" {
		return ErrMissingSource
	}

	return nil
}

func parseSize(name, s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: %s is empty", ErrInvalidSize, name)
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalidSize, name, s)
	}

	if n <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidSize, name, n)
	}

	return n, nil
}
