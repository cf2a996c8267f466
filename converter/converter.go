package converter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-shellwords"
)

// Converter defines the interface for converting a PNG file to SVG
type Converter interface {
	// Name returns the name of the converter
	Name() string

	// IsAvailable checks if the converter is available on the system.
	// It is consulted before dispatch; an unavailable converter is
	// substituted with the embed fallback rather than invoked.
	IsAvailable() bool

	// Convert converts a PNG file to SVG at outputPath
	Convert(ctx context.Context, inputPath, outputPath string, options *Options) error
}

// Method identifies a conversion backend
type Method string

const (
	MethodAutotrace  Method = "autotrace"
	MethodPotrace    Method = "potrace"
	MethodEmbed      Method = "embed"
	MethodAspose     Method = "aspose"
	MethodConvertAPI Method = "convertapi"
)

// ErrUnknownMethod is returned for method names outside the known set
var ErrUnknownMethod = errors.New("unknown conversion method")

// Methods returns all known methods in registration order
func Methods() []Method {
	return []Method{MethodAutotrace, MethodPotrace, MethodEmbed, MethodAspose, MethodConvertAPI}
}

// ParseMethod maps a user-supplied method name to a Method
func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(s))) {
	case MethodAutotrace:
		return MethodAutotrace, nil
	case MethodPotrace:
		return MethodPotrace, nil
	case MethodEmbed:
		return MethodEmbed, nil
	case MethodAspose:
		return MethodAspose, nil
	case MethodConvertAPI:
		return MethodConvertAPI, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Options holds options for a single conversion
type Options struct {
	// Args is a raw option string passed verbatim to the external tool,
	// e.g. "--filter-iterations 4 --dpi 300". When empty each backend
	// applies its own defaults.
	Args string
}

// Tokens splits Args shell-style into argv tokens
func (o *Options) Tokens() ([]string, error) {
	if o == nil || strings.TrimSpace(o.Args) == "" {
		return nil, nil
	}
	tokens, err := shellwords.Parse(o.Args)
	if err != nil {
		return nil, fmt.Errorf("invalid converter options %q: %w", o.Args, err)
	}
	return tokens, nil
}

// ConverterError represents an error from a converter
type ConverterError struct {
	Converter string
	Operation string
	Err       error
}

func (e *ConverterError) Error() string {
	return fmt.Sprintf("%s converter %s failed: %v", e.Converter, e.Operation, e.Err)
}

func (e *ConverterError) Unwrap() error {
	return e.Err
}

// NewConverterError creates a new converter error
func NewConverterError(converter, operation string, err error) error {
	return &ConverterError{
		Converter: converter,
		Operation: operation,
		Err:       err,
	}
}
