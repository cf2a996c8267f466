package converter

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const convertAPIBase = "https://v2.convertapi.com"

// ConvertAPIConverter implements Converter using the convertapi.com REST
// service. The API key comes from the CONVERTAPI_KEY environment variable.
type ConvertAPIConverter struct {
	client  *http.Client
	baseURL string
}

// NewConvertAPIConverter creates a new ConvertAPI converter
func NewConvertAPIConverter() *ConvertAPIConverter {
	return &ConvertAPIConverter{
		client:  &http.Client{Timeout: 120 * time.Second},
		baseURL: convertAPIBase,
	}
}

// Name returns the name of this converter
func (c *ConvertAPIConverter) Name() string {
	return "convertapi"
}

// IsAvailable checks if a ConvertAPI key is configured
func (c *ConvertAPIConverter) IsAvailable() bool {
	return os.Getenv("CONVERTAPI_KEY") != ""
}

// Convert uploads the PNG to convertapi.com and writes the returned SVG
func (c *ConvertAPIConverter) Convert(ctx context.Context, inputPath, outputPath string, options *Options) error {
	if !c.IsAvailable() {
		return NewConverterError(c.Name(), "convert",
			fmt.Errorf("CONVERTAPI_KEY environment variable is not set"))
	}

	input, err := os.Open(inputPath)
	if err != nil {
		return NewConverterError(c.Name(), "read input", err)
	}
	defer input.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("File", filepath.Base(inputPath))
	if err != nil {
		return NewConverterError(c.Name(), "convert", err)
	}
	if _, err := io.Copy(part, input); err != nil {
		return NewConverterError(c.Name(), "convert", err)
	}
	if err := writer.Close(); err != nil {
		return NewConverterError(c.Name(), "convert", err)
	}

	endpoint := fmt.Sprintf("%s/convert/png/to/svg?Secret=%s&StoreFile=false",
		c.baseURL, os.Getenv("CONVERTAPI_KEY"))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return NewConverterError(c.Name(), "convert", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return NewConverterError(c.Name(), "convert", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return NewConverterError(c.Name(), "convert",
			fmt.Errorf("unexpected status %s: %s", resp.Status, strings.TrimSpace(string(msg))))
	}

	var payload struct {
		Files []struct {
			FileName string `json:"FileName"`
			FileData string `json:"FileData"`
		} `json:"Files"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return NewConverterError(c.Name(), "convert", fmt.Errorf("decoding response: %w", err))
	}
	if len(payload.Files) == 0 {
		return NewConverterError(c.Name(), "convert", fmt.Errorf("response contained no files"))
	}

	data, err := base64.StdEncoding.DecodeString(payload.Files[0].FileData)
	if err != nil {
		return NewConverterError(c.Name(), "convert", fmt.Errorf("decoding file data: %w", err))
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return NewConverterError(c.Name(), "write output", err)
	}

	return nil
}
