package ascii_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/img2txt/ascii"
)

func TestParseRequest(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		source, outputDir string
		width, height     string
		want              ascii.Request
		err               error
	}{
		"valid": {
			source: "in.png", outputDir: "out", width: "80", height: "40",
			want: ascii.Request{Source: "in.png", OutputDir: "out", Width: 80, Height: 40},
		},
		"trims whitespace": {
			source: " in.png ", outputDir: " out ", width: " 8\n", height: "\t4",
			want: ascii.Request{Source: "in.png", OutputDir: "out", Width: 8, Height: 4},
		},
		"empty output dir": {
			source: "in.png", width: "1", height: "1",
			want: ascii.Request{Source: "in.png", Width: 1, Height: 1},
		},
		"empty width":          {source: "in.png", width: "", height: "4", err: ascii.ErrInvalidSize},
		"empty height":         {source: "in.png", width: "4", height: " ", err: ascii.ErrInvalidSize},
		"non-numeric width":    {source: "in.png", width: "abc", height: "4", err: ascii.ErrInvalidSize},
		"fractional height":    {source: "in.png", width: "4", height: "2.5", err: ascii.ErrInvalidSize},
		"zero width":           {source: "in.png", width: "0", height: "4", err: ascii.ErrInvalidSize},
		"negative height":      {source: "in.png", width: "4", height: "-4", err: ascii.ErrInvalidSize},
		"missing source":       {source: "", width: "4", height: "4", err: ascii.ErrMissingSource},
		"size checked first":   {source: "", width: "x", height: "4", err: ascii.ErrInvalidSize},
		"hex is not a number":  {source: "in.png", width: "0x10", height: "4", err: ascii.ErrInvalidSize},
		"leading plus allowed": {source: "in.png", width: "+4", height: "4", want: ascii.Request{Source: "in.png", Width: 4, Height: 4}},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := ascii.ParseRequest(tc.source, tc.outputDir, tc.width, tc.height)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				assert.Equal(t, ascii.Request{}, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRequestOutputPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "output.txt", ascii.Request{}.OutputPath())
	assert.Equal(t, filepath.Join("out", "output.txt"), ascii.Request{OutputDir: "out"}.OutputPath())
}
