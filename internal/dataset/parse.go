// internal/dataset/parse.go
package dataset

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Table is the raw, line-split form of a comparison file. Fields are split on
// a bare comma: quoting is not supported, so a field containing a literal
// comma shifts every column after it.
type Table struct {
	Header []string
	Rows   [][]string
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// SplitTable splits text into trimmed fields. Blank lines are discarded and
// the first surviving line becomes the header.
func SplitTable(text string) Table {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return Table{}
	}

	table := Table{Header: splitFields(lines[0])}
	for _, line := range lines[1:] {
		table.Rows = append(table.Rows, splitFields(line))
	}
	return table
}

func splitFields(line string) []string {
	parts := strings.Split(line, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

// field returns the i-th field of row, or "" when the row is too short.
func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// ParseLeadingFloat parses the longest numeric prefix of s and returns 0 when
// there is none. Overflowing values also collapse to 0 so records stay finite.
func ParseLeadingFloat(s string) float64 {
	prefix := leadingNumber.FindString(strings.TrimSpace(s))
	if prefix == "" {
		return 0
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

// ParseWordSearch maps the word-search table positionally onto records.
// Rows missing the label, BST0 or Triplet field are dropped; an empty
// improvement field is kept and reads as 0.
func ParseWordSearch(text string) []WordSearchRecord {
	table := SplitTable(text)
	records := make([]WordSearchRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		label, bst0, triplet := field(row, 0), field(row, 1), field(row, 2)
		if label == "" || bst0 == "" || triplet == "" {
			continue
		}
		records = append(records, WordSearchRecord{
			Iteration:   label,
			BST0:        ParseLeadingFloat(bst0),
			Triplet:     ParseLeadingFloat(triplet),
			Improvement: ParseLeadingFloat(field(row, 3)),
		})
	}
	return records
}

// ParseRangeSearch maps the three-column range-search table onto records and
// derives each row's improvement from its operation counts.
func ParseRangeSearch(text string) []RangeSearchRecord {
	table := SplitTable(text)
	records := make([]RangeSearchRecord, 0, len(table.Rows))
	for _, row := range table.Rows {
		label, bst0Text, tripletText := field(row, 0), field(row, 1), field(row, 2)
		if label == "" || bst0Text == "" || tripletText == "" {
			continue
		}
		bst0 := ParseLeadingFloat(bst0Text)
		triplet := ParseLeadingFloat(tripletText)
		records = append(records, RangeSearchRecord{
			Iteration:   label,
			BST0:        bst0,
			Triplet:     triplet,
			Improvement: DeriveImprovement(bst0, triplet),
		})
	}
	return records
}

// HeaderMatches reports whether header starts with the expected column names,
// compared case-insensitively. Mapping stays positional either way; callers use
// this only to warn about reordered files.
func HeaderMatches(header, expected []string) bool {
	if len(header) < len(expected) {
		return false
	}
	for i, name := range expected {
		if !strings.EqualFold(header[i], name) {
			return false
		}
	}
	return true
}
