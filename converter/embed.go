package converter

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/png"
	"os"

	"github.com/ajstarks/svgo"
	"github.com/h2non/filetype"
)

// EmbedConverter implements Converter by wrapping the raw PNG payload in a
// minimal SVG document as an inline base64 image. No vectorization takes
// place; this is the always-available fallback when every real backend is
// missing.
type EmbedConverter struct{}

// NewEmbedConverter creates a new embed converter
func NewEmbedConverter() *EmbedConverter {
	return &EmbedConverter{}
}

// Name returns the name of this converter
func (c *EmbedConverter) Name() string {
	return "embed"
}

// IsAvailable always returns true, the embed converter has no external
// dependencies
func (c *EmbedConverter) IsAvailable() bool {
	return true
}

// Convert wraps the PNG into an SVG <image> element sized to the raster
func (c *EmbedConverter) Convert(ctx context.Context, inputPath, outputPath string, options *Options) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return NewConverterError(c.Name(), "read input", err)
	}

	if !filetype.Is(data, "png") {
		return NewConverterError(c.Name(), "read input", fmt.Errorf("%s is not a PNG image", inputPath))
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return NewConverterError(c.Name(), "decode image", err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return NewConverterError(c.Name(), "create output", err)
	}
	defer out.Close()

	canvas := svg.New(out)
	canvas.Start(cfg.Width, cfg.Height)
	canvas.Image(0, 0, cfg.Width, cfg.Height,
		"data:image/png;base64,"+base64.StdEncoding.EncodeToString(data))
	canvas.End()

	if err := out.Close(); err != nil {
		return NewConverterError(c.Name(), "write output", err)
	}

	return nil
}
