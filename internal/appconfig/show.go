// internal/appconfig/show.go
package appconfig

import (
	"fmt"
	"io"
	"strings"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, file string, cfg Config) {
	if file == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", file)
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Word Search Source:  %s\n", cfg.WordSearchSource())
	fmt.Fprintf(out, "  Range Search Source: %s\n", cfg.RangeSearchSource())
	fmt.Fprintf(out, "  Category Chart:      %s\n", cfg.CategoryChartSource())
	fmt.Fprintf(out, "  Range Chart:         %s\n", cfg.RangeChartSource())
	fmt.Fprintf(out, "  Render Charts:       %v\n", cfg.RenderCharts)
	fmt.Fprintf(out, "  Aggregate Marker:    %s\n", cfg.Marker())
	fmt.Fprintf(out, "  Timeout:             %s\n", cfg.RequestTimeout())
	fmt.Fprintf(out, "  Listen:              %s\n", cfg.ListenAddr())
	fmt.Fprintf(out, "  Log File:            %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Debug:               %v\n", cfg.Debug)
	if cfg.Title != "" {
		fmt.Fprintf(out, "  Title:               %s\n", cfg.Title)
	}
	if len(cfg.Authors) > 0 {
		fmt.Fprintf(out, "  Authors:             %s\n", strings.Join(cfg.Authors, ", "))
	}
}
