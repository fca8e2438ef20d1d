// internal/report/rows.go
package report

import "github.com/mwiater/bstreport/internal/dataset"

// Row is a display-ready table row shared by every output format.
type Row struct {
	Label       string
	BST0        string
	Triplet     string
	Improvement string
	Value       float64
	Improved    bool
	Aggregate   bool
	Status      string
}

// Card is one headline figure on the executive summary.
type Card struct {
	Value string
	Label string
	Tone  string
}

func wordRow(record dataset.WordSearchRecord, decimals int, marker string) Row {
	return Row{
		Label:       record.Iteration,
		BST0:        formatNumber(record.BST0),
		Triplet:     formatNumber(record.Triplet),
		Improvement: formatPercent(record.Improvement, decimals),
		Value:       record.Improvement,
		Improved:    improved(record.Improvement),
		Aggregate:   dataset.IsAggregate(record.Iteration, marker),
		Status:      statusLabel(record.Improvement),
	}
}

// AverageRows feeds the average performance summary table.
func (v View) AverageRows() []Row {
	rows := make([]Row, 0, len(v.State.Aggregates))
	for _, record := range v.State.Aggregates {
		rows = append(rows, wordRow(record, 1, v.AggregateMarker))
	}
	return rows
}

// DatasetRows feeds the complete word-search dataset table.
func (v View) DatasetRows() []Row {
	rows := make([]Row, 0, len(v.State.Words))
	for _, record := range v.State.Words {
		rows = append(rows, wordRow(record, 2, v.AggregateMarker))
	}
	return rows
}

// RangeRows feeds the range-search results table.
func (v View) RangeRows() []Row {
	rows := make([]Row, 0, len(v.State.Range))
	for _, record := range v.State.Range {
		rows = append(rows, Row{
			Label:       record.Iteration,
			BST0:        formatNumber(record.BST0),
			Triplet:     formatNumber(record.Triplet),
			Improvement: formatPercent(record.Improvement, 3),
			Value:       record.Improvement,
			Improved:    improved(record.Improvement),
			Status:      statusLabel(record.Improvement),
		})
	}
	return rows
}

// Cards returns the executive summary figures.
func (v View) Cards() []Card {
	return []Card{
		{Value: formatPercent(v.State.Stats.AverageImprovement, 1), Label: "Average Improvement", Tone: "success"},
		{Value: formatPercent(v.State.Stats.MaxImprovement, 1), Label: "Maximum Improvement", Tone: "primary"},
		{Value: formatNumber(float64(len(v.State.Iterations))), Label: "Test Iterations", Tone: "warning"},
	}
}

// AverageImprovement is the headline figure quoted in the conclusions.
func (v View) AverageImprovement() string {
	return formatPercent(v.State.Stats.AverageImprovement, 1)
}

// AuthorLine joins the authors for the header and footer.
func (v View) AuthorLine() string {
	return joinAuthors(v.Authors)
}
