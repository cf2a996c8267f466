package converter

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// PotraceConverter implements Converter using potrace. Potrace only reads
// bitmap formats, so the PNG is first rendered to an intermediate PBM
// using ImageMagick.
type PotraceConverter struct{}

// NewPotraceConverter creates a new potrace converter
func NewPotraceConverter() *PotraceConverter {
	return &PotraceConverter{}
}

// Name returns the name of this converter
func (c *PotraceConverter) Name() string {
	return "potrace"
}

// IsAvailable checks if both potrace and ImageMagick are available in PATH
func (c *PotraceConverter) IsAvailable() bool {
	if _, err := exec.LookPath("potrace"); err != nil {
		return false
	}
	return c.magickBinary() != ""
}

// magickBinary returns the ImageMagick convert binary to use, preferring
// the v7 "magick" entry point over the legacy "convert"
func (c *PotraceConverter) magickBinary() string {
	for _, name := range []string{"magick", "convert"} {
		if _, err := exec.LookPath(name); err == nil {
			return name
		}
	}
	return ""
}

// Convert converts a PNG file to SVG by rendering it to a temporary PBM
// and tracing that with potrace. The intermediate file is removed on
// every exit path, success or failure.
func (c *PotraceConverter) Convert(ctx context.Context, inputPath, outputPath string, options *Options) error {
	magick := c.magickBinary()
	if magick == "" {
		return NewConverterError(c.Name(), "convert", fmt.Errorf("ImageMagick (magick or convert) not found in PATH"))
	}
	if _, err := exec.LookPath("potrace"); err != nil {
		return NewConverterError(c.Name(), "convert", fmt.Errorf("potrace not found in PATH"))
	}

	tmp, err := os.CreateTemp("", "png2svg-*.pbm")
	if err != nil {
		return NewConverterError(c.Name(), "create intermediate bitmap", err)
	}
	pbmPath := tmp.Name()
	tmp.Close()
	defer os.Remove(pbmPath)

	cmd := exec.CommandContext(ctx, magick, inputPath, pbmPath)
	if output, err := cmd.CombinedOutput(); err != nil {
		return NewConverterError(c.Name(), "render bitmap", fmt.Errorf("command failed: %w, output: %s", err, string(output)))
	}

	tokens, err := options.Tokens()
	if err != nil {
		return NewConverterError(c.Name(), "parse options", err)
	}

	args := tokens
	if len(args) == 0 {
		args = []string{"-s", "--svg"}
	}
	args = append(args, "-o", outputPath, pbmPath)

	cmd = exec.CommandContext(ctx, "potrace", args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return NewConverterError(c.Name(), "convert", fmt.Errorf("command failed: %w, output: %s", err, string(output)))
	}

	return nil
}
