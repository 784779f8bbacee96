package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/atomic"
	"go.yaml.in/yaml/v3"
)

// Config represents <base>/config.yaml.
type Config struct {
	Template    string       `yaml:"template"`
	IncludeQR   bool         `yaml:"include_qr"`
	QRURL       string       `yaml:"qr_url,omitempty"`
	PresetsFile string       `yaml:"presets_file,omitempty"`
	OutputDir   string       `yaml:"output_dir,omitempty"`
	GitHub      GitHubConfig `yaml:"github"`
	Log         LogConfig    `yaml:"log"`
}

// GitHubConfig configures the profile import.
type GitHubConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// LogConfig configures the diagnostic log.
type LogConfig struct {
	Level string `yaml:"level"`
	// File enables a rotating log file in addition to stderr.
	File string `yaml:"file,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Template:  "clean-minimal",
		IncludeQR: true,
		OutputDir: ".",
		GitHub: GitHubConfig{
			BaseURL: "https://api.github.com",
			Timeout: 10 * time.Second,
		},
		Log: LogConfig{Level: "warn"},
	}
}

// Parse parses config.yaml bytes. Fields missing from the file keep their
// defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	def := Default()
	if cfg.Template == "" {
		cfg.Template = def.Template
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = def.OutputDir
	}
	if cfg.GitHub.BaseURL == "" {
		cfg.GitHub.BaseURL = def.GitHub.BaseURL
	}
	if cfg.GitHub.Timeout <= 0 {
		cfg.GitHub.Timeout = def.GitHub.Timeout
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Load reads the config file at path. A missing file yields Default().
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Write stores cfg at path, creating the parent directory.
func Write(path string, cfg Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
