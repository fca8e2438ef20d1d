// internal/report/analysis.go
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Analysis is the machine-readable export of a settled report.
type Analysis struct {
	GeneratedAt    time.Time `json:"generated_at"`
	WordSearchURL  string    `json:"word_search_url,omitempty"`
	RangeSearchURL string    `json:"range_search_url,omitempty"`
	State
}

// NewAnalysis captures the view's state alongside the sources it came from.
func NewAnalysis(v View, sources Sources) Analysis {
	return Analysis{
		GeneratedAt:    v.GeneratedAt.UTC(),
		WordSearchURL:  sources.WordSearchURL,
		RangeSearchURL: sources.RangeSearchURL,
		State:          v.State,
	}
}

// WriteAnalysisJSON writes the indented JSON form of a.
func WriteAnalysisJSON(w io.Writer, a Analysis) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("unable to marshal analysis JSON: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("unable to write analysis JSON: %w", err)
	}
	return nil
}
