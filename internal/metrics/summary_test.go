package metrics

import (
	"math"
	"testing"

	"github.com/mwiater/bstreport/internal/dataset"
)

func TestSummarizeMixedImprovements(t *testing.T) {
	records := []dataset.WordSearchRecord{
		{Iteration: "1", Improvement: 20.0},
		{Iteration: "2", Improvement: 10.0},
		{Iteration: "3", Improvement: -5.0},
	}
	stats := Summarize(records)
	if math.Abs(stats.AverageImprovement-25.0/3.0) > 1e-9 {
		t.Fatalf("expected average 8.333..., got %v", stats.AverageImprovement)
	}
	if stats.MaxImprovement != 20 {
		t.Fatalf("expected max 20, got %v", stats.MaxImprovement)
	}
	if stats.MinImprovement != -5 {
		t.Fatalf("expected min -5, got %v", stats.MinImprovement)
	}
	if stats.Count != 3 {
		t.Fatalf("expected count 3, got %d", stats.Count)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if got := Summarize(nil); got != (SummaryStatistics{}) {
		t.Fatalf("expected zero statistics, got %+v", got)
	}
	if got := SummarizeRange([]dataset.RangeSearchRecord{}); got != (SummaryStatistics{}) {
		t.Fatalf("expected zero range statistics, got %+v", got)
	}
	if got := SummarizeImprovements(nil); got != (SummaryStatistics{}) {
		t.Fatalf("expected zero statistics for nil values, got %+v", got)
	}
}

func TestSummarizeAllNegative(t *testing.T) {
	stats := SummarizeImprovements([]float64{-4, -1, -9})
	if stats.MaxImprovement != -1 || stats.MinImprovement != -9 {
		t.Fatalf("unexpected extremes: %+v", stats)
	}
}

func TestSummarizeRange(t *testing.T) {
	records := []dataset.RangeSearchRecord{
		{Iteration: "1", BST0: 200, Triplet: 150, Improvement: dataset.DeriveImprovement(200, 150)},
		{Iteration: "2", BST0: 0, Triplet: 10, Improvement: dataset.DeriveImprovement(0, 10)},
	}
	stats := SummarizeRange(records)
	if stats.AverageImprovement != 12.5 || stats.MaxImprovement != 25 || stats.MinImprovement != 0 {
		t.Fatalf("unexpected range statistics: %+v", stats)
	}
}

func TestSummarizeIsDeterministic(t *testing.T) {
	values := []float64{1.1, 2.2, 3.3}
	if SummarizeImprovements(values) != SummarizeImprovements(values) {
		t.Fatal("expected identical results for identical input")
	}
}
