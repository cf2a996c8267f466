package converter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const asposeAPIBase = "https://api.aspose.cloud"

// AsposeConverter implements Converter using the Aspose Imaging Cloud REST
// API. Credentials come from the ASPOSE_CLIENT_ID and ASPOSE_CLIENT_SECRET
// environment variables.
type AsposeConverter struct {
	client  *http.Client
	baseURL string
}

// NewAsposeConverter creates a new Aspose cloud converter
func NewAsposeConverter() *AsposeConverter {
	return &AsposeConverter{
		client:  &http.Client{Timeout: 120 * time.Second},
		baseURL: asposeAPIBase,
	}
}

// Name returns the name of this converter
func (c *AsposeConverter) Name() string {
	return "aspose"
}

// IsAvailable checks if Aspose cloud credentials are configured
func (c *AsposeConverter) IsAvailable() bool {
	return os.Getenv("ASPOSE_CLIENT_ID") != "" && os.Getenv("ASPOSE_CLIENT_SECRET") != ""
}

// Convert uploads the PNG to the Aspose Imaging convert endpoint and writes
// the returned SVG
func (c *AsposeConverter) Convert(ctx context.Context, inputPath, outputPath string, options *Options) error {
	if !c.IsAvailable() {
		return NewConverterError(c.Name(), "convert",
			fmt.Errorf("ASPOSE_CLIENT_ID and ASPOSE_CLIENT_SECRET environment variables are not set"))
	}

	token, err := c.authenticate(ctx)
	if err != nil {
		return NewConverterError(c.Name(), "authenticate", err)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return NewConverterError(c.Name(), "read input", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v3.0/imaging/convert?format=svg", bytes.NewReader(data))
	if err != nil {
		return NewConverterError(c.Name(), "convert", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.client.Do(req)
	if err != nil {
		return NewConverterError(c.Name(), "convert", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return NewConverterError(c.Name(), "convert",
			fmt.Errorf("unexpected status %s: %s", resp.Status, strings.TrimSpace(string(body))))
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return NewConverterError(c.Name(), "create output", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return NewConverterError(c.Name(), "write output", err)
	}

	return nil
}

// authenticate performs the OAuth client-credentials exchange
func (c *AsposeConverter) authenticate(ctx context.Context) (string, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {os.Getenv("ASPOSE_CLIENT_ID")},
		"client_secret": {os.Getenv("ASPOSE_CLIENT_SECRET")},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/connect/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request failed with status %s", resp.Status)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decoding token response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("token response contained no access_token")
	}

	return payload.AccessToken, nil
}
