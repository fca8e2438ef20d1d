// internal/charts/charts.go
// Package charts renders the report's comparison charts as PNG images.
package charts

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/mwiater/bstreport/internal/dataset"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoData is returned when a chart has nothing to plot.
var ErrNoData = errors.New("no data to chart")

const (
	defaultWidth  = 960
	defaultHeight = 480
)

var (
	bst0Color    = chart.ColorBlue
	tripletColor = chart.ColorGreen
)

func barStyle(col drawing.Color) chart.Style {
	return chart.Style{
		FillColor:   col,
		StrokeColor: col,
		StrokeWidth: 1,
	}
}

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
		DotWidth:    3,
		DotColor:    col,
	}
}

// OperationsByCategory renders BST0 and Triplet average operations side by
// side for every aggregate row.
func OperationsByCategory(w io.Writer, aggregates []dataset.WordSearchRecord) error {
	bars := make([]chart.Value, 0, len(aggregates)*2)
	maxValue := 0.0
	for _, record := range aggregates {
		bars = append(bars,
			chart.Value{Label: record.Iteration + " BST0", Value: record.BST0, Style: barStyle(bst0Color)},
			chart.Value{Label: record.Iteration + " Triplet", Value: record.Triplet, Style: barStyle(tripletColor)},
		)
		maxValue = max(maxValue, record.BST0, record.Triplet)
	}
	if len(bars) == 0 || maxValue <= 0 {
		return ErrNoData
	}

	bc := chart.BarChart{
		Title:      "Average Operations by Search Category",
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		Width:      defaultWidth,
		Height:     defaultHeight,
		BarWidth:   barWidth(len(bars)),
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue * 1.1},
		},
		Bars: bars,
	}
	if err := bc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render category chart: %w", err)
	}
	return nil
}

func barWidth(n int) int {
	if n <= 0 {
		return 40
	}
	width := (defaultWidth - 120) / n * 2 / 3
	switch {
	case width < 8:
		return 8
	case width > 80:
		return 80
	}
	return width
}

// RangeOperations renders per-iteration operation counts for both variants.
func RangeOperations(w io.Writer, records []dataset.RangeSearchRecord) error {
	n := len(records)
	if n == 0 {
		return ErrNoData
	}

	xs := make([]float64, n)
	bst0 := make([]float64, n)
	triplet := make([]float64, n)
	ticks := make([]chart.Tick, 0, n)
	maxValue := 0.0
	step := tickStep(n)
	for i, record := range records {
		xs[i] = float64(i + 1)
		bst0[i] = record.BST0
		triplet[i] = record.Triplet
		maxValue = max(maxValue, record.BST0, record.Triplet)
		if i%step == 0 {
			ticks = append(ticks, chart.Tick{Value: xs[i], Label: record.Iteration})
		}
	}
	if maxValue <= 0 {
		maxValue = 1
	}

	ch := chart.Chart{
		Title:      "Range Search Operations",
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 32}},
		Width:      defaultWidth,
		Height:     defaultHeight,
		XAxis: chart.XAxis{
			Name:  "Iteration",
			Range: &chart.ContinuousRange{Min: 0.5, Max: float64(n) + 0.5},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name:  "Operations",
			Range: &chart.ContinuousRange{Min: 0, Max: maxValue * 1.1},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "BST0", XValues: xs, YValues: bst0, Style: lineStyle(bst0Color)},
			chart.ContinuousSeries{Name: "Triplet", XValues: xs, YValues: triplet, Style: lineStyle(tripletColor)},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render range chart: %w", err)
	}
	return nil
}

// tickStep thins x-axis labels so at most about twenty are drawn.
func tickStep(n int) int {
	if n <= 20 {
		return 1
	}
	return (n + 19) / 20
}

// DataURI renders with fn into memory and returns a base64 PNG data URI.
func DataURI(fn func(io.Writer) error) (string, error) {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
