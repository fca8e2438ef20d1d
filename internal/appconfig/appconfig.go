// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"strings"
	"time"

	"github.com/mwiater/bstreport/internal/dataset"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultRequestTimeout bounds the whole fetch pipeline.
	defaultRequestTimeout = 30 * time.Second
	// defaultListenAddr is where the serve command listens when none is configured.
	defaultListenAddr = "127.0.0.1:8080"
	// defaultOutputPath is where the render command writes the HTML report.
	defaultOutputPath = "reports/bst-report.html"

	blobBase = "https://hebbkx1anhila5yf.public.blob.vercel-storage.com/"

	DefaultWordSearchURL    = blobBase + "word_search_comparison_table-BIPcZ7ArUZR5LceuBe9h9lzosywwwW.csv"
	DefaultRangeSearchURL   = blobBase + "range_search_comparison-eKr7JqPnXYpdaifrjFbnGV0d03WFLb.csv"
	DefaultCategoryChartURL = blobBase + "stats_operations_by_category-8zXFQpz0F6341NmiaDT8LtTeR8ZDx5.png"
	DefaultRangeChartURL    = blobBase + "range_search_operations-mOq0vBtRuK1EZ63iwgvbqvPM0FPO1a.png"
)

// Config represents the top-level application configuration.
type Config struct {
	WordSearchURL    string   `json:"wordSearchUrl,omitempty" yaml:"wordSearchUrl,omitempty" mapstructure:"wordSearchUrl"`
	RangeSearchURL   string   `json:"rangeSearchUrl,omitempty" yaml:"rangeSearchUrl,omitempty" mapstructure:"rangeSearchUrl"`
	CategoryChartURL string   `json:"categoryChartUrl,omitempty" yaml:"categoryChartUrl,omitempty" mapstructure:"categoryChartUrl"`
	RangeChartURL    string   `json:"rangeChartUrl,omitempty" yaml:"rangeChartUrl,omitempty" mapstructure:"rangeChartUrl"`
	RenderCharts     bool     `json:"renderCharts" yaml:"renderCharts" mapstructure:"renderCharts"`
	AggregateMarker  string   `json:"aggregateMarker,omitempty" yaml:"aggregateMarker,omitempty" mapstructure:"aggregateMarker"`
	Title            string   `json:"title,omitempty" yaml:"title,omitempty" mapstructure:"title"`
	Subtitle         string   `json:"subtitle,omitempty" yaml:"subtitle,omitempty" mapstructure:"subtitle"`
	Authors          []string `json:"authors,omitempty" yaml:"authors,omitempty" mapstructure:"authors"`
	TimeoutSeconds   int      `json:"timeout,omitempty" yaml:"timeout,omitempty" mapstructure:"timeout"`
	Listen           string   `json:"listen,omitempty" yaml:"listen,omitempty" mapstructure:"listen"`
	LogFile          string   `json:"logFile,omitempty" yaml:"logFile,omitempty" mapstructure:"logFile"`
	Debug            bool     `json:"debug" yaml:"debug" mapstructure:"debug"`
	ConfigPath       string   `json:"-" yaml:"-" mapstructure:"-"`
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

// WordSearchSource returns the word-search table location.
func (c Config) WordSearchSource() string { return orDefault(c.WordSearchURL, DefaultWordSearchURL) }

// RangeSearchSource returns the range-search table location.
func (c Config) RangeSearchSource() string { return orDefault(c.RangeSearchURL, DefaultRangeSearchURL) }

// CategoryChartSource returns the pre-rendered category chart URL.
func (c Config) CategoryChartSource() string {
	return orDefault(c.CategoryChartURL, DefaultCategoryChartURL)
}

// RangeChartSource returns the pre-rendered range-search chart URL.
func (c Config) RangeChartSource() string { return orDefault(c.RangeChartURL, DefaultRangeChartURL) }

// Marker returns the label fragment that identifies aggregate rows.
func (c Config) Marker() string {
	return orDefault(c.AggregateMarker, dataset.DefaultAggregateMarker)
}

// RequestTimeout returns the pipeline timeout, falling back to the default if not specified.
func (c Config) RequestTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ListenAddr returns the serve command's listen address.
func (c Config) ListenAddr() string { return orDefault(c.Listen, defaultListenAddr) }

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string { return orDefault(c.LogFile, "bstreport.log") }

// DefaultOutputPath is the HTML destination used when no --output is given.
func DefaultOutputPath() string { return defaultOutputPath }
