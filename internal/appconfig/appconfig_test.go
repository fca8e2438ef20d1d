// internal/appconfig/appconfig_test.go
package appconfig

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestDefaults verifies that an empty configuration resolves every accessor to
// the built-in report sources and runtime defaults.
func TestDefaults(t *testing.T) {
	var cfg Config
	if cfg.WordSearchSource() != DefaultWordSearchURL {
		t.Fatalf("unexpected word search default %q", cfg.WordSearchSource())
	}
	if cfg.RangeSearchSource() != DefaultRangeSearchURL {
		t.Fatalf("unexpected range search default %q", cfg.RangeSearchSource())
	}
	if cfg.RequestTimeout() != 30*time.Second {
		t.Fatalf("expected default timeout of 30s, got %v", cfg.RequestTimeout())
	}
	if cfg.Marker() != "Average" {
		t.Fatalf("expected default marker Average, got %q", cfg.Marker())
	}
	if cfg.LogFilePath() != "bstreport.log" {
		t.Fatalf("unexpected log file default %q", cfg.LogFilePath())
	}
	if cfg.ListenAddr() != "127.0.0.1:8080" {
		t.Fatalf("unexpected listen default %q", cfg.ListenAddr())
	}
}

func TestOverrides(t *testing.T) {
	cfg := Config{
		WordSearchURL:   " data/words.csv ",
		TimeoutSeconds:  5,
		AggregateMarker: "Mean",
		Listen:          ":9000",
	}
	if cfg.WordSearchSource() != "data/words.csv" {
		t.Fatalf("expected trimmed override, got %q", cfg.WordSearchSource())
	}
	if cfg.RequestTimeout() != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %v", cfg.RequestTimeout())
	}
	if cfg.Marker() != "Mean" || cfg.ListenAddr() != ":9000" {
		t.Fatalf("unexpected overrides: %q %q", cfg.Marker(), cfg.ListenAddr())
	}
}

func TestValidate(t *testing.T) {
	valid := `{"wordSearchUrl": "https://example.test/w.csv", "timeout": 10, "authors": ["A", "B"], "renderCharts": true}`
	if err := Validate([]byte(valid), false); err != nil {
		t.Fatalf("expected valid JSON config, got %v", err)
	}

	if err := Validate([]byte(`{"timeout": "soon"}`), false); err == nil {
		t.Fatal("expected wrong type to fail validation")
	}
	if err := Validate([]byte(`{"hosts": []}`), false); err == nil {
		t.Fatal("expected unknown key to fail validation")
	}
	if err := Validate([]byte(`{ "timeout": `), false); err == nil {
		t.Fatal("expected invalid JSON to fail")
	}

	yamlDoc := "rangeSearchUrl: data/range.csv\ntimeout: 3\nauthors:\n  - A\n"
	if err := Validate([]byte(yamlDoc), true); err != nil {
		t.Fatalf("expected valid YAML config, got %v", err)
	}
	if err := Validate([]byte("timeout: -1\n"), true); err == nil {
		t.Fatal("expected negative timeout to fail validation")
	}
	if err := Validate([]byte(""), true); err != nil {
		t.Fatalf("expected empty YAML document to be valid, got %v", err)
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(yamlPath, []byte("debug: true\nlisten: \":9000\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ValidateFile(yamlPath); err != nil {
		t.Fatalf("ValidateFile(yaml) error: %v", err)
	}

	jsonPath := filepath.Join(dir, "config.json")
	if err := os.WriteFile(jsonPath, []byte(`{"debug": "yes"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := ValidateFile(jsonPath); err == nil || !strings.Contains(err.Error(), jsonPath) {
		t.Fatalf("expected validation error naming the file, got %v", err)
	}

	if err := ValidateFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("expected missing file to fail")
	}
}

func TestShowConfigAndYAML(t *testing.T) {
	cfg := Config{Title: "Custom", Authors: []string{"A", "B"}, RenderCharts: true}
	var buf bytes.Buffer
	ShowConfig(&buf, "", cfg)
	out := buf.String()
	for _, want := range []string{"No config file loaded", "Render Charts:       true", "Authors:             A, B", DefaultWordSearchURL} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}

	data, err := cfg.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML error: %v", err)
	}
	if !strings.Contains(string(data), "title: Custom") || !strings.Contains(string(data), "renderCharts: true") {
		t.Fatalf("unexpected YAML:\n%s", data)
	}
}
