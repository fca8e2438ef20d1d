// internal/report/view.go
package report

import (
	"html/template"
	"time"

	"github.com/mwiater/bstreport/internal/dataset"
)

// Remark is one titled paragraph in the key technical remarks card.
type Remark struct {
	Title  string
	Body   string
	Accent string
}

// Chart is an image slot in the performance charts card. Src is either a
// remote URL or an embedded PNG data URI.
type Chart struct {
	Name    string
	Title   string
	Alt     string
	Caption string
	Src     template.URL
}

// Page holds the static prose of the report.
type Page struct {
	Title       string
	Subtitle    string
	Authors     []string
	Summary     string
	Remarks     []Remark
	Charts      []Chart
	Findings    []string
	FooterLabel string
}

// View binds the static page to a loader snapshot.
type View struct {
	Page
	State           State
	AggregateMarker string
	GeneratedAt     time.Time
	// RefreshSeconds adds a meta refresh to the HTML page while loading. Zero disables it.
	RefreshSeconds int
}

// Chart names used for locally rendered images.
const (
	ChartCategory = "category"
	ChartRange    = "range"
)

// DefaultPage returns the report prose with the given chart sources.
func DefaultPage(categoryChart, rangeChart string) Page {
	return Page{
		Title:    "Binary Search Tree Performance Analysis",
		Subtitle: "Comparative Study of BST Implementations",
		Authors:  []string{"Omari Ahmed El-Amine", "Azrine Said Readh"},
		Summary: "This report presents a comprehensive analysis of Binary Search Tree (BST) performance comparing " +
			"standard BST implementation (BST0) with an optimized Triplet-based approach across multiple iterations " +
			"and search categories.",
		Remarks: []Remark{
			{
				Title:  "BST2 Implementation",
				Body:   "BST2 keeps the XYZ words in the middle levels of the tree, but additionally keeps words greater than XYZ near the root.",
				Accent: "primary",
			},
			{
				Title:  "BST3 Implementation",
				Body:   "BST3 keeps the XYZ words in the lower levels of the tree, but additionally keeps words lesser than XYZ near the root.",
				Accent: "success",
			},
			{
				Title:  "Tree Navigation",
				Body:   "Parent operation has been used to go up the tree, enabling efficient traversal and optimization of search operations.",
				Accent: "purple",
			},
		},
		Charts: []Chart{
			{
				Name:    ChartCategory,
				Title:   "Average Operations by Search Category",
				Alt:     "BST0 vs Triplet average operations by category",
				Caption: "Performance comparison across different search categories: XYZ, Above, and Below word searches.",
				Src:     template.URL(categoryChart),
			},
			{
				Name:    ChartRange,
				Title:   "Range Search Operations",
				Alt:     "BST operations per iteration for range search",
				Caption: "Triplet implementation performance across iterations for range search operations.",
				Src:     template.URL(rangeChart),
			},
		},
		Findings: []string{
			"Consistent performance improvements across most test scenarios",
			"Effective optimization through strategic word placement in tree levels",
			"Successful implementation of parent operations for tree traversal",
			"Robust performance across different search categories (XYZ, Above, Below)",
		},
		FooterLabel: "Binary Search Tree Optimization Study",
	}
}

// WithChart returns a copy of p with the named chart's source replaced.
func (p Page) WithChart(name, src string) Page {
	charts := make([]Chart, len(p.Charts))
	copy(charts, p.Charts)
	for i := range charts {
		if charts[i].Name == name {
			charts[i].Src = template.URL(src)
		}
	}
	p.Charts = charts
	return p
}

// NewView pairs a page with a state snapshot.
func NewView(page Page, state State) View {
	return View{
		Page:            page,
		State:           state,
		AggregateMarker: dataset.DefaultAggregateMarker,
		GeneratedAt:     time.Now(),
	}
}
