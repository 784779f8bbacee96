package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ruminaider/readme-maker/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Run("full file", func(t *testing.T) {
		input := []byte(`template: resume-style
include_qr: false
qr_url: https://ada.dev
presets_file: /tmp/p.json
output_dir: out
github:
  base_url: https://ghe.example/api/v3
  timeout: 8s
log:
  level: debug
  file: /tmp/rm.log
`)
		cfg, err := config.Parse(input)
		require.NoError(t, err)
		assert.Equal(t, "resume-style", cfg.Template)
		assert.False(t, cfg.IncludeQR)
		assert.Equal(t, "https://ada.dev", cfg.QRURL)
		assert.Equal(t, "/tmp/p.json", cfg.PresetsFile)
		assert.Equal(t, "out", cfg.OutputDir)
		assert.Equal(t, "https://ghe.example/api/v3", cfg.GitHub.BaseURL)
		assert.Equal(t, 8*time.Second, cfg.GitHub.Timeout)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "/tmp/rm.log", cfg.Log.File)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		cfg, err := config.Parse([]byte("template: fancy-animated\n"))
		require.NoError(t, err)
		def := config.Default()
		assert.Equal(t, "fancy-animated", cfg.Template)
		assert.True(t, cfg.IncludeQR)
		assert.Equal(t, def.GitHub, cfg.GitHub)
		assert.Equal(t, "warn", cfg.Log.Level)
		assert.Equal(t, ".", cfg.OutputDir)
	})

	t.Run("empty document", func(t *testing.T) {
		cfg, err := config.Parse([]byte(""))
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := config.Parse([]byte(`{{{`))
		assert.Error(t, err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(t.TempDir(), "config.yaml"))
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("write then load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "config.yaml")
		cfg := config.Default()
		cfg.Template = "resume-style"
		cfg.GitHub.Timeout = 3 * time.Second
		require.NoError(t, config.Write(path, cfg))

		loaded, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, cfg, loaded)
	})

	t.Run("unreadable", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "config.yaml"), 0755))
		_, err := config.Load(filepath.Join(dir, "config.yaml"))
		assert.Error(t, err)
	})
}
