// internal/appconfig/schema.go
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"go.yaml.in/yaml/v3"
)

// configSchema describes every key a config file may carry.
var configSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"wordSearchUrl":    map[string]any{"type": "string", "minLength": 1},
		"rangeSearchUrl":   map[string]any{"type": "string", "minLength": 1},
		"categoryChartUrl": map[string]any{"type": "string"},
		"rangeChartUrl":    map[string]any{"type": "string"},
		"renderCharts":     map[string]any{"type": "boolean"},
		"aggregateMarker":  map[string]any{"type": "string"},
		"title":            map[string]any{"type": "string"},
		"subtitle":         map[string]any{"type": "string"},
		"authors": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"timeout": map[string]any{"type": "integer", "minimum": 0},
		"listen":  map[string]any{"type": "string"},
		"logFile": map[string]any{"type": "string"},
		"debug":   map[string]any{"type": "boolean"},
	},
	"additionalProperties": false,
}

// isYAML reports whether path names a YAML document.
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return true
	}
	return false
}

// Validate checks a raw JSON or YAML config document against the schema.
func Validate(data []byte, yamlFormat bool) error {
	var document any
	if yamlFormat {
		if err := yaml.Unmarshal(data, &document); err != nil {
			return fmt.Errorf("could not parse YAML config: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &document); err != nil {
			return fmt.Errorf("could not parse JSON config: %w", err)
		}
	}
	if document == nil {
		document = map[string]any{}
	}

	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(configSchema), gojsonschema.NewGoLoader(document))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}
	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("config validation failed: %s", strings.Join(errs, ", "))
}

// ValidateFile reads path and validates it, choosing the format by extension.
func ValidateFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("no configuration file found at %q: %w", path, err)
		}
		return fmt.Errorf("could not read config file %q: %w", path, err)
	}
	if err := Validate(data, isYAML(path)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// ToYAML renders the effective configuration as YAML.
func (c Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}
