package paths

import (
	"os"
	"path/filepath"
)

// HomeEnv overrides the base directory when set.
const HomeEnv = "README_MAKER_HOME"

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// BaseDir returns $README_MAKER_HOME, or ~/.readme-maker.
func BaseDir() string {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir
	}
	return filepath.Join(home(), ".readme-maker")
}

// ConfigFile returns <base>/config.yaml.
func ConfigFile() string {
	return filepath.Join(BaseDir(), "config.yaml")
}

// PresetsFile returns <base>/presets.json.
func PresetsFile() string {
	return filepath.Join(BaseDir(), "presets.json")
}

// LogFile returns <base>/readme-maker.log.
func LogFile() string {
	return filepath.Join(BaseDir(), "readme-maker.log")
}
