package png2svg

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flanksource/png2svg/converter"
)

// writePNG writes a solid-color PNG of the given size
func writePNG(t *testing.T, path string, width, height int) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func TestConvertFileEmbed(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.png")
	output := filepath.Join(dir, "output.svg")
	writePNG(t, input, 10, 10)

	err := ConvertFile(context.Background(), converter.NewManager(), ConvertRequest{
		Input:  input,
		Output: output,
		Method: converter.MethodEmbed,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `width="10" height="10"`)
}

func TestConvertFileMissingInput(t *testing.T) {
	dir := t.TempDir()

	err := ConvertFile(context.Background(), converter.NewManager(), ConvertRequest{
		Input:  filepath.Join(dir, "missing.png"),
		Output: filepath.Join(dir, "output.svg"),
		Method: converter.MethodEmbed,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestConvertFileUnknownMethod(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.png")
	writePNG(t, input, 10, 10)

	err := ConvertFile(context.Background(), converter.NewManager(), ConvertRequest{
		Input:  input,
		Output: filepath.Join(dir, "output.svg"),
		Method: converter.Method("inkscape"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, converter.ErrUnknownMethod)
}

func TestConvertFileOverwrite(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.png")
	output := filepath.Join(dir, "output.svg")
	writePNG(t, input, 10, 10)

	manager := converter.NewManager()
	req := ConvertRequest{Input: input, Output: output, Method: converter.MethodEmbed}

	require.NoError(t, ConvertFile(context.Background(), manager, req))
	first, err := os.ReadFile(output)
	require.NoError(t, err)

	// second call without overwrite must fail and leave the file intact
	err = ConvertFile(context.Background(), manager, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutputExists)

	second, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// with overwrite the conversion goes through
	req.Overwrite = true
	require.NoError(t, ConvertFile(context.Background(), manager, req))
}

func TestConvertFileFallsBackToEmbed(t *testing.T) {
	// aspose without credentials fails its probe and must fall back to
	// the embed converter instead of erroring
	t.Setenv("ASPOSE_CLIENT_ID", "")
	t.Setenv("ASPOSE_CLIENT_SECRET", "")

	dir := t.TempDir()
	input := filepath.Join(dir, "input.png")
	output := filepath.Join(dir, "output.svg")
	writePNG(t, input, 10, 10)

	err := ConvertFile(context.Background(), converter.NewManager(), ConvertRequest{
		Input:  input,
		Output: output,
		Method: converter.MethodAspose,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "data:image/png;base64,")
}

func TestConvertFileCreatesOutputDirectory(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "input.png")
	output := filepath.Join(dir, "nested", "deep", "output.svg")
	writePNG(t, input, 10, 10)

	err := ConvertFile(context.Background(), converter.NewManager(), ConvertRequest{
		Input:  input,
		Output: output,
		Method: converter.MethodEmbed,
	})
	require.NoError(t, err)
	assert.FileExists(t, output)
}
