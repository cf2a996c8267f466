package converter

import (
	"context"
	"fmt"
	"os/exec"
)

// AutotraceConverter implements Converter using autotrace
type AutotraceConverter struct{}

// NewAutotraceConverter creates a new autotrace converter
func NewAutotraceConverter() *AutotraceConverter {
	return &AutotraceConverter{}
}

// Name returns the name of this converter
func (c *AutotraceConverter) Name() string {
	return "autotrace"
}

// IsAvailable checks if autotrace is available in PATH
func (c *AutotraceConverter) IsAvailable() bool {
	_, err := exec.LookPath("autotrace")
	return err == nil
}

// Convert converts a PNG file to SVG using autotrace
func (c *AutotraceConverter) Convert(ctx context.Context, inputPath, outputPath string, options *Options) error {
	if !c.IsAvailable() {
		return NewConverterError(c.Name(), "convert", fmt.Errorf("autotrace not found in PATH"))
	}

	tokens, err := options.Tokens()
	if err != nil {
		return NewConverterError(c.Name(), "parse options", err)
	}

	args := tokens
	if len(args) == 0 {
		args = []string{"--output-format", "svg"}
	}
	args = append(args, "--output-file", outputPath, inputPath)

	cmd := exec.CommandContext(ctx, "autotrace", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return NewConverterError(c.Name(), "convert", fmt.Errorf("command failed: %w, output: %s", err, string(output)))
	}

	return nil
}
