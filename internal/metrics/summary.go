// internal/metrics/summary.go
// Package metrics derives summary statistics from parsed comparison records.
package metrics

import "github.com/mwiater/bstreport/internal/dataset"

// SummaryStatistics holds the improvement figures shown on the summary cards.
type SummaryStatistics struct {
	Count              int     `json:"count"`
	AverageImprovement float64 `json:"average_improvement"`
	MaxImprovement     float64 `json:"max_improvement"`
	MinImprovement     float64 `json:"min_improvement"`
}

// runningStat accumulates count, sum and extremes in one pass.
type runningStat struct {
	count int
	sum   float64
	min   float64
	max   float64
}

func (rs *runningStat) add(value float64) {
	rs.count++
	rs.sum += value
	if rs.count == 1 {
		rs.min = value
		rs.max = value
		return
	}
	if value < rs.min {
		rs.min = value
	}
	if value > rs.max {
		rs.max = value
	}
}

func (rs runningStat) summary() SummaryStatistics {
	if rs.count == 0 {
		return SummaryStatistics{}
	}
	return SummaryStatistics{
		Count:              rs.count,
		AverageImprovement: rs.sum / float64(rs.count),
		MaxImprovement:     rs.max,
		MinImprovement:     rs.min,
	}
}

// SummarizeImprovements returns the mean, maximum and minimum of values.
// An empty input yields the zero value.
func SummarizeImprovements(values []float64) SummaryStatistics {
	var rs runningStat
	for _, v := range values {
		rs.add(v)
	}
	return rs.summary()
}

// Summarize computes statistics over per-iteration word-search records.
// Callers pass the iteration half of dataset.Partition; aggregates are not filtered here.
func Summarize(records []dataset.WordSearchRecord) SummaryStatistics {
	values := make([]float64, 0, len(records))
	for _, record := range records {
		values = append(values, record.Improvement)
	}
	return SummarizeImprovements(values)
}

// SummarizeRange computes statistics over the derived range-search improvements.
func SummarizeRange(records []dataset.RangeSearchRecord) SummaryStatistics {
	values := make([]float64, 0, len(records))
	for _, record := range records {
		values = append(values, record.Improvement)
	}
	return SummarizeImprovements(values)
}
