// internal/commands/pipeline.go
package bstreport

import (
	"io"

	"github.com/mwiater/bstreport/internal/appconfig"
	"github.com/mwiater/bstreport/internal/charts"
	"github.com/mwiater/bstreport/internal/logging"
	"github.com/mwiater/bstreport/internal/report"
	"github.com/mwiater/bstreport/internal/source"
)

func sourcesFor(cfg appconfig.Config) report.Sources {
	return report.Sources{
		WordSearchURL:   cfg.WordSearchSource(),
		RangeSearchURL:  cfg.RangeSearchSource(),
		AggregateMarker: cfg.Marker(),
	}
}

// newLoader wires the configured sources into a report loader. Relative
// paths are read from the working directory.
func newLoader(cfg appconfig.Config) *report.Loader {
	fetcher := source.NewRouter(source.NewHTTPFetcher(cfg.RequestTimeout()), "")
	return report.NewLoader(fetcher, sourcesFor(cfg), cfg.RequestTimeout())
}

// pageFor returns the report prose with configured title, subtitle and author overrides.
func pageFor(cfg appconfig.Config) report.Page {
	page := report.DefaultPage(cfg.CategoryChartSource(), cfg.RangeChartSource())
	if cfg.Title != "" {
		page.Title = cfg.Title
	}
	if cfg.Subtitle != "" {
		page.Subtitle = cfg.Subtitle
	}
	if len(cfg.Authors) > 0 {
		page.Authors = cfg.Authors
	}
	return page
}

func viewFor(cfg appconfig.Config, page report.Page, state report.State) report.View {
	v := report.NewView(page, state)
	v.AggregateMarker = cfg.Marker()
	return v
}

func chartRenderers(state report.State) map[string]func(io.Writer) error {
	return map[string]func(io.Writer) error{
		report.ChartCategory: func(w io.Writer) error { return charts.OperationsByCategory(w, state.Aggregates) },
		report.ChartRange:    func(w io.Writer) error { return charts.RangeOperations(w, state.Range) },
	}
}

// embedCharts swaps each chart source for a locally rendered PNG data URI.
// Charts that cannot be drawn keep their hosted image.
func embedCharts(page report.Page, state report.State) report.Page {
	for name, render := range chartRenderers(state) {
		uri, err := charts.DataURI(render)
		if err != nil {
			logging.LogEvent("[CHART] %s not rendered: %v", name, err)
			continue
		}
		page = page.WithChart(name, uri)
	}
	return page
}
