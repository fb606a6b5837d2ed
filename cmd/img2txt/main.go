// Command img2txt converts raster images into ASCII art.
//
// The image is sampled onto a width x height character grid and every cell
// is replaced with a glyph chosen by luminance. The result is written to
// output.txt inside the output folder, or printed with --stdout.
//
// # Usage
//
//	img2txt [flags] <image>
//	img2txt form [flags] [image]
//	img2txt schema
//	img2txt version
//
// The form command opens an interactive terminal form that collects the same
// fields as the flags. The schema command prints the JSON Schema of the YAML
// preset file accepted by --config.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/img2txt/ascii"
	"go.jacobcolvin.com/img2txt/log"
	"go.jacobcolvin.com/img2txt/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return 1
	}

	return 0
}

// app carries the writers and logger shared by all subcommands.
type app struct {
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdout: stdout,
		stderr: stderr,
		logger: slog.New(slog.DiscardHandler),
	}

	logCfg := log.NewConfig()
	cfg := ascii.NewConfig()

	rootCmd := &cobra.Command{
		Use:   "img2txt [flags] <image>",
		Short: "Convert an image into ASCII art",
		Long: `img2txt samples an image onto a character grid with nearest-neighbor
selection and maps each cell's luminance to one of 70 glyphs, from "$" for
the darkest pixels to a space for the brightest and fully transparent ones.
The result is written to ` + ascii.OutputFile + ` inside the output folder.`,
		Example: `  img2txt -W 80 -H 40 -o out photo.png
  img2txt -W 60 -H 20 --stdout logo.png
  img2txt -c preset.yaml photo.jpg`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logger, err := logCfg.NewLogger(a.stderr)
			if err != nil {
				return err
			}

			a.logger = logger

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(cmd, cfg, args[0])
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	cfg.RegisterFlags(rootCmd.Flags())

	rootCmd.AddCommand(
		a.newFormCmd(),
		a.newSchemaCmd(),
		a.newVersionCmd(),
	)

	for _, register := range []func(*cobra.Command) error{
		logCfg.RegisterCompletions,
		cfg.RegisterCompletions,
	} {
		err := register(rootCmd)
		if err != nil {
			fmt.Fprintf(stderr, "register completions: %v\n", err)
		}
	}

	return rootCmd
}

func (a *app) convert(cmd *cobra.Command, cfg *ascii.Config, source string) error {
	err := cfg.ApplyPreset(cmd.Flags())
	if err != nil {
		return err
	}

	req, err := cfg.NewRequest(source)
	if err != nil {
		return err
	}

	conv, err := cfg.NewConverter(a.logger)
	if err != nil {
		return err
	}

	if !cfg.Stdout {
		return conv.Convert(req)
	}

	img, err := ascii.Decode(req.Source)
	if err != nil {
		return err
	}

	return conv.Render(a.stdout, img, req.Width, req.Height)
}

func (a *app) newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the --config preset file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			schema, err := ascii.PresetSchema()
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("%w: %w", ascii.ErrWriteOutput, err)
			}

			out = append(out, '\n')

			_, err = a.stdout.Write(out)
			if err != nil {
				return fmt.Errorf("%w: %w", ascii.ErrWriteOutput, err)
			}

			return nil
		},
	}
}

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := io.WriteString(a.stdout, version.String())

			return err
		},
	}
}
