package png2svg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("method: potrace\noptions: \"-s --svg\"\noverwrite: true\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "potrace", cfg.Method)
	assert.Equal(t, "-s --svg", cfg.Options)
	assert.True(t, cfg.Overwrite)
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("method: [potrace"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigApplyTo(t *testing.T) {
	cfg := &Config{Method: "potrace", Options: "-s", Overwrite: true}

	t.Run("fills unset flags", func(t *testing.T) {
		flags := ConvertFlags{Method: "autotrace"}
		cfg.ApplyTo(&flags, func(string) bool { return false })

		assert.Equal(t, "potrace", flags.Method)
		assert.Equal(t, "-s", flags.Options)
		assert.True(t, flags.Overwrite)
	})

	t.Run("explicit flags win", func(t *testing.T) {
		flags := ConvertFlags{Method: "embed"}
		cfg.ApplyTo(&flags, func(name string) bool { return name == "method" })

		assert.Equal(t, "embed", flags.Method)
		assert.Equal(t, "-s", flags.Options)
	})

	t.Run("nil config is a no-op", func(t *testing.T) {
		flags := ConvertFlags{Method: "embed"}
		(*Config)(nil).ApplyTo(&flags, func(string) bool { return false })
		assert.Equal(t, "embed", flags.Method)
	})
}
