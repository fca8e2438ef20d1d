// internal/dataset/records.go
// Package dataset parses the BST0/Triplet comparison tables into typed records.
package dataset

import "strings"

// DefaultAggregateMarker is the label fragment that identifies summary rows.
const DefaultAggregateMarker = "Average"

// WordSearchHeader is the column order expected in the word-search table.
var WordSearchHeader = []string{"Iteration", "BST0", "Triplet", "Improvement %"}

// RangeSearchHeader is the column order expected in the range-search table.
var RangeSearchHeader = []string{"Iteration", "BST0 Operations", "Triplet Operations"}

// WordSearchRecord is one row of the word-search comparison table.
type WordSearchRecord struct {
	Iteration   string  `json:"iteration"`
	BST0        float64 `json:"bst0_operations"`
	Triplet     float64 `json:"triplet_operations"`
	Improvement float64 `json:"improvement_percent"`
}

// RangeSearchRecord is one row of the range-search comparison table. Its
// Improvement is derived from the two operation counts, never read from the source.
type RangeSearchRecord struct {
	Iteration   string  `json:"iteration"`
	BST0        float64 `json:"bst0_operations"`
	Triplet     float64 `json:"triplet_operations"`
	Improvement float64 `json:"improvement_percent"`
}

// Improved reports whether the Triplet variant beat BST0 on this row.
func (r WordSearchRecord) Improved() bool { return r.Improvement > 0 }

// Improved reports whether the Triplet variant beat BST0 on this row.
func (r RangeSearchRecord) Improved() bool { return r.Improvement > 0 }

// DeriveImprovement returns the relative reduction of triplet versus bst0 in percent.
// A non-positive baseline yields 0.
func DeriveImprovement(bst0, triplet float64) float64 {
	if bst0 > 0 {
		return (bst0 - triplet) / bst0 * 100
	}
	return 0
}

// IsAggregate reports whether label names a summary row for the given marker.
// An empty marker falls back to DefaultAggregateMarker.
func IsAggregate(label, marker string) bool {
	if marker == "" {
		marker = DefaultAggregateMarker
	}
	return strings.Contains(label, marker)
}
