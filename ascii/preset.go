package ascii

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"
)

// ErrInvalidPreset indicates a preset file that cannot be read or parsed.
var ErrInvalidPreset = errors.New("invalid preset")

// Preset holds conversion defaults loaded from a YAML file. Zero values mean
// "not set".
type Preset struct {
	OutputDir  string `json:"outputDir,omitempty"  jsonschema:"folder that receives output.txt"       yaml:"outputDir,omitempty"`
	LineEnding string `json:"lineEnding,omitempty" jsonschema:"row terminator, one of lf or crlf"     yaml:"lineEnding,omitempty"`
	Width      int    `json:"width,omitempty"      jsonschema:"number of glyphs per row"              yaml:"width,omitempty"`
	Height     int    `json:"height,omitempty"     jsonschema:"number of rows"                        yaml:"height,omitempty"`
}

// LoadPreset reads and validates the YAML preset at path. Unknown keys are
// rejected.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Preset path from CLI flag is expected.
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPreset, err)
	}

	return ParsePreset(data)
}

// ParsePreset decodes and validates YAML preset content.
func ParsePreset(data []byte) (*Preset, error) {
	p := &Preset{}

	err := yaml.UnmarshalWithOptions(data, p, yaml.DisallowUnknownField())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPreset, err)
	}

	err = p.Validate()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks field ranges and the line ending name.
func (p *Preset) Validate() error {
	if p.Width < 0 || p.Height < 0 {
		return fmt.Errorf("%w: %w: %dx%d", ErrInvalidPreset, ErrInvalidSize, p.Width, p.Height)
	}

	if p.LineEnding != "" {
		_, err := ParseLineEnding(p.LineEnding)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidPreset, err)
		}
	}

	return nil
}

// PresetSchema returns the JSON Schema describing preset files.
func PresetSchema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[Preset](nil)
	if err != nil {
		return nil, fmt.Errorf("generating preset schema: %w", err)
	}

	schema.Schema = "http://json-schema.org/draft-07/schema#"
	schema.Title = "img2txt preset"

	minSize := 1.0
	for _, name := range []string{"width", "height"} {
		if prop, ok := schema.Properties[name]; ok {
			prop.Minimum = &minSize
		}
	}

	if prop, ok := schema.Properties["lineEnding"]; ok {
		for _, le := range GetAllLineEndingStrings() {
			prop.Enum = append(prop.Enum, le)
		}
	}

	return schema, nil
}
