package ascii

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for conversion configuration, allowing callers
// to customize flag names while keeping sensible defaults via [NewConfig].
type Flags struct {
	OutputDir  string
	Width      string
	Height     string
	LineEnding string
	Preset     string
	Stdout     string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds CLI flag values for a conversion.
//
// Width and Height are kept as text so that parsing errors surface as
// [ErrInvalidSize] together with every other front end.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Call [Config.ApplyPreset] after parsing, then
// [Config.NewRequest] and [Config.NewConverter].
type Config struct {
	Flags      Flags
	OutputDir  string
	Width      string
	Height     string
	LineEnding string
	Preset     string
	Stdout     bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		OutputDir:  "output-dir",
		Width:      "width",
		Height:     "height",
		LineEnding: "line-ending",
		Preset:     "config",
		Stdout:     "stdout",
	}

	return f.NewConfig()
}

// RegisterFlags adds conversion flags to the given [*pflag.FlagSet]. The
// stdout flag is skipped when its name is empty.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.OutputDir, c.Flags.OutputDir, "o", ".",
		"folder that receives "+OutputFile)
	flags.StringVarP(&c.Width, c.Flags.Width, "W", "",
		"number of glyphs per row")
	flags.StringVarP(&c.Height, c.Flags.Height, "H", "",
		"number of rows")
	flags.StringVar(&c.LineEnding, c.Flags.LineEnding, string(LineEndingLF),
		fmt.Sprintf("row terminator, one of: %s", GetAllLineEndingStrings()))
	flags.StringVarP(&c.Preset, c.Flags.Preset, "c", "",
		"YAML preset file supplying defaults")

	if c.Flags.Stdout != "" {
		flags.BoolVar(&c.Stdout, c.Flags.Stdout, false,
			"print the result instead of writing "+OutputFile)
	}
}

// RegisterCompletions registers shell completions for conversion flags on
// cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.LineEnding,
		cobra.FixedCompletions(GetAllLineEndingStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.LineEnding, err)
	}

	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	for _, flag := range []string{c.Flags.Width, c.Flags.Height} {
		regErr := cmd.RegisterFlagCompletionFunc(flag, noFileComp)
		if regErr != nil {
			return fmt.Errorf("registering %s completion: %w", flag, regErr)
		}
	}

	err = cmd.MarkFlagDirname(c.Flags.OutputDir)
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.OutputDir, err)
	}

	err = cmd.MarkFlagFilename(c.Flags.Preset, "yaml", "yml")
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Preset, err)
	}

	return nil
}

// ApplyPreset loads the preset file named by the preset flag, if any, and
// fills every field whose flag was not set explicitly on flags.
func (c *Config) ApplyPreset(flags *pflag.FlagSet) error {
	if c.Preset == "" {
		return nil
	}

	p, err := LoadPreset(c.Preset)
	if err != nil {
		return err
	}

	unset := func(name string) bool {
		f := flags.Lookup(name)

		return f == nil || !f.Changed
	}

	if p.OutputDir != "" && unset(c.Flags.OutputDir) {
		c.OutputDir = p.OutputDir
	}

	if p.Width > 0 && unset(c.Flags.Width) {
		c.Width = strconv.Itoa(p.Width)
	}

	if p.Height > 0 && unset(c.Flags.Height) {
		c.Height = strconv.Itoa(p.Height)
	}

	if p.LineEnding != "" && unset(c.Flags.LineEnding) {
		c.LineEnding = p.LineEnding
	}

	return nil
}

// NewRequest builds a validated [Request] for source from the configured
// values.
func (c *Config) NewRequest(source string) (Request, error) {
	return ParseRequest(source, c.OutputDir, c.Width, c.Height)
}

// NewConverter creates a [Converter] using this [Config].
func (c *Config) NewConverter(logger *slog.Logger) (*Converter, error) {
	opts := []Option{WithLogger(logger)}

	if c.LineEnding != "" {
		le, err := ParseLineEnding(c.LineEnding)
		if err != nil {
			return nil, err
		}

		opts = append(opts, WithLineEnding(le))
	}

	return NewConverter(opts...), nil
}
