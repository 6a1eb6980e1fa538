// Package output serializes datasets to JSON, YAML or SQLite documents.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/le-nicolas/Digital-Thermo-Table/pkg/thermo/models"
	"gopkg.in/yaml.v3"
)

// Format is a document format.
type Format string

const (
	FormatAuto   Format = ""
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatSQLite Format = "sqlite"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ParseFormat validates a format name. An empty name means auto-detect.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "sqlite", "sqlite3", "db":
		return FormatSQLite, nil
	}
	return FormatAuto, fmt.Errorf("invalid format: %s (must be json, yaml or sqlite)", name)
}

// DetectFormat picks a format from the file extension, defaulting to JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	}
	return FormatJSON
}

// ToJSON serializes a dataset to JSON.
func ToJSON(ds *models.Dataset, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(ds, "", "  ")
	}
	return json.Marshal(ds)
}

// ToYAML serializes a dataset to YAML.
func ToYAML(ds *models.Dataset) ([]byte, error) {
	return yaml.Marshal(ds)
}

// Write writes ds to path, creating the parent directory when missing.
func Write(path string, ds *models.Dataset, format Format, pretty bool) error {
	if format == FormatAuto {
		format = DetectFormat(path)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	var data []byte
	var err error
	switch format {
	case FormatSQLite:
		return WriteSQLite(path, ds)
	case FormatYAML:
		data, err = ToYAML(ds)
	default:
		data, err = ToJSON(ds, pretty)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
