package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/ruminaider/readme-maker/internal/profile"
)

// ReadRecordFile reads a profile record from a .json, .yaml or .yml file.
func ReadRecordFile(path string) (profile.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return profile.Record{}, fmt.Errorf("reading profile file: %w", err)
	}

	var rec profile.Record
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &rec)
	default:
		err = json.Unmarshal(data, &rec)
	}
	if err != nil {
		return profile.Record{}, fmt.Errorf("parsing profile file %s: %w", path, err)
	}
	rec.Normalize()
	return rec, nil
}

// MarshalRecord serializes a record as indented JSON, or YAML when asYAML
// is set.
func MarshalRecord(rec profile.Record, asYAML bool) ([]byte, error) {
	if asYAML {
		return yaml.Marshal(rec)
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
