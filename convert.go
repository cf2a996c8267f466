package png2svg

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/flanksource/commons/logger"

	"github.com/flanksource/png2svg/converter"
)

// ErrOutputExists is returned when the output file already exists and
// overwrite was not requested
var ErrOutputExists = errors.New("output file already exists")

// ConvertRequest describes a single-file conversion
type ConvertRequest struct {
	Input     string
	Output    string
	Method    converter.Method
	Options   string
	Overwrite bool
}

// ConvertFile converts a single PNG file to SVG. It is the error boundary
// for one file: validation failures and backend failures are logged and
// returned, never panicked, and the batch driver only sees the error.
func ConvertFile(ctx context.Context, manager *converter.Manager, req ConvertRequest) error {
	if err := validateRequest(req); err != nil {
		logger.Errorf("Error during conversion: %v", err)
		return err
	}

	if err := ensureDirectory(req.Output); err != nil {
		logger.Errorf("Error during conversion: %v", err)
		return err
	}

	backend, err := manager.Resolve(req.Method)
	if err != nil {
		logger.Errorf("Error during conversion: %v", err)
		return err
	}

	opts := &converter.Options{Args: req.Options}
	if err := backend.Convert(ctx, req.Input, req.Output, opts); err != nil {
		logger.Errorf("Error during conversion: %v", err)
		return err
	}

	logger.Infof("Conversion successful! SVG saved at: %s", req.Output)
	return nil
}

// validateRequest enforces input existence and overwrite semantics.
// Unexpected extensions on either side are warnings only.
func validateRequest(req ConvertRequest) error {
	if _, err := os.Stat(req.Input); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("input file not found: %s: %w", req.Input, fs.ErrNotExist)
		}
		return fmt.Errorf("cannot read input file %s: %w", req.Input, err)
	}

	if !strings.EqualFold(filepath.Ext(req.Input), ".png") {
		logger.Warnf("Input file %s does not have the expected .png extension", req.Input)
	}

	if _, err := os.Stat(req.Output); err == nil && !req.Overwrite {
		return fmt.Errorf("%w: %s, use --overwrite to overwrite", ErrOutputExists, req.Output)
	}

	if !strings.EqualFold(filepath.Ext(req.Output), ".svg") {
		logger.Warnf("Output file %s does not have the expected .svg extension", req.Output)
	}

	return nil
}

// ensureDirectory creates the parent directory of the output file
func ensureDirectory(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
		logger.Infof("Created directory: %s", dir)
	}
	return nil
}
