package render

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/matzehuels/graphloom/pkg/errors"
)

// ConverterCmd is the librsvg binary used for PDF and PNG output.
var ConverterCmd = "rsvg-convert"

// ToPDF converts SVG bytes to PDF.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return convert(ctx, svg, "pdf")
}

// ToPNG converts SVG bytes to PNG. A scale of 2 doubles the resolution;
// values <= 0 are treated as 1.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 1
	}
	return convert(ctx, svg, "png", "--zoom", fmt.Sprintf("%g", scale))
}

func convert(ctx context.Context, svg []byte, format string, extra ...string) ([]byte, error) {
	args := append([]string{"--format", format}, extra...)
	cmd := exec.CommandContext(ctx, ConverterCmd, args...)
	cmd.Stdin = bytes.NewReader(svg)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderrors.Is(err, exec.ErrNotFound) {
			return nil, errors.Wrap(errors.ErrCodeUnsupported, err,
				"%s output needs %s (brew install librsvg, apt install librsvg2-bin)", format, ConverterCmd)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err,
			"%s conversion failed: %s", format, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
