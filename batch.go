package png2svg

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/flanksource/commons/logger"

	"github.com/flanksource/png2svg/converter"
)

// BatchRequest describes a directory-level conversion
type BatchRequest struct {
	InputDir  string
	OutputDir string
	Method    converter.Method
	Options   string
	Overwrite bool
	Recursive bool
}

// BatchResult reports per-batch conversion counts
type BatchResult struct {
	Total     int
	Converted int
}

// Failed returns the number of files that did not convert
func (r BatchResult) Failed() int {
	return r.Total - r.Converted
}

// OK reports whether the batch succeeded, i.e. at least one file converted
func (r BatchResult) OK() bool {
	return r.Converted > 0
}

// ConvertDir converts every PNG file in a directory sequentially. A failed
// file is logged and skipped; the batch fails only when no file converts.
// In recursive mode the output tree mirrors the input's relative paths.
func ConvertDir(ctx context.Context, manager *converter.Manager, req BatchRequest) (BatchResult, error) {
	info, err := os.Stat(req.InputDir)
	if err != nil || !info.IsDir() {
		return BatchResult{}, fmt.Errorf("input path is not a directory: %s", req.InputDir)
	}

	files, err := findPNGs(req.InputDir, req.Recursive)
	if err != nil {
		return BatchResult{}, err
	}

	if len(files) == 0 {
		logger.Warnf("No PNG files found in %s", req.InputDir)
		return BatchResult{}, fmt.Errorf("no PNG files found in %s", req.InputDir)
	}

	logger.Infof("Found %d PNG files to convert", len(files))

	result := BatchResult{Total: len(files)}
	for _, file := range files {
		output, err := outputPath(req, file)
		if err != nil {
			logger.Errorf("Skipping %s: %v", file, err)
			continue
		}

		logger.Infof("Converting %s to %s", file, output)

		if err := ConvertFile(ctx, manager, ConvertRequest{
			Input:     file,
			Output:    output,
			Method:    req.Method,
			Options:   req.Options,
			Overwrite: req.Overwrite,
		}); err == nil {
			result.Converted++
		}
	}

	logger.Infof("Conversion completed: %d of %d files converted successfully", result.Converted, result.Total)

	if !result.OK() {
		return result, fmt.Errorf("no files converted in %s", req.InputDir)
	}
	return result, nil
}

// findPNGs enumerates *.png files, flat or recursively. Flat mode ignores
// subdirectories entirely.
func findPNGs(dir string, recursive bool) ([]string, error) {
	if !recursive {
		return filepath.Glob(filepath.Join(dir, "*.png"))
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".png" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// outputPath maps an input file to its .svg sibling under the output
// directory, preserving the relative path in recursive mode
func outputPath(req BatchRequest, file string) (string, error) {
	rel := filepath.Base(file)
	if req.Recursive {
		var err error
		if rel, err = filepath.Rel(req.InputDir, file); err != nil {
			return "", err
		}
	}
	return filepath.Join(req.OutputDir, strings.TrimSuffix(rel, filepath.Ext(rel))+".svg"), nil
}
