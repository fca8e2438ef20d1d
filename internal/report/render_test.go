package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mwiater/bstreport/internal/dataset"
	"github.com/mwiater/bstreport/internal/metrics"
)

func loadedState() State {
	words := dataset.ParseWordSearch(testWordCSV)
	aggregates, iterations := dataset.Partition(words, "")
	ranges := dataset.ParseRangeSearch(testRangeCSV)
	return State{
		Words:      words,
		Aggregates: aggregates,
		Iterations: iterations,
		Range:      ranges,
		Stats:      metrics.Summarize(iterations),
		RangeStats: metrics.SummarizeRange(ranges),
	}
}

func TestGenerateHTMLLoaded(t *testing.T) {
	view := NewView(DefaultPage("https://blob.test/category.png", "https://blob.test/range.png"), loadedState())
	html, err := GenerateHTML(view)
	if err != nil {
		t.Fatalf("GenerateHTML error: %v", err)
	}
	for _, want := range []string{
		"Binary Search Tree Performance Analysis",
		"7.5%",
		"25.0%",
		"1,200",
		"Average XYZ",
		"aggregate-row",
		"Summary</span>",
		"25.000%",
		"-10.00%",
		"Improved",
		"Degraded",
		`src="https://blob.test/category.png"`,
		"Omari Ahmed El-Amine &amp; Azrine Said Readh",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected HTML to contain %q", want)
		}
	}
	if strings.Contains(html, "Loading data...") {
		t.Fatal("loaded view must not show the loading placeholder")
	}
	if strings.Contains(html, `http-equiv="refresh"`) {
		t.Fatal("loaded view must not auto-refresh")
	}
}

func TestGenerateHTMLLoading(t *testing.T) {
	view := NewView(DefaultPage("", ""), initialState())
	view.RefreshSeconds = 2
	html, err := GenerateHTML(view)
	if err != nil {
		t.Fatalf("GenerateHTML error: %v", err)
	}
	if !strings.Contains(html, "Loading data...") || !strings.Contains(html, "Loading complete dataset...") {
		t.Fatal("expected loading placeholders")
	}
	if strings.Contains(html, "No data") {
		t.Fatal("loading view must not look like loaded-but-empty")
	}
	if !strings.Contains(html, `http-equiv="refresh" content="2"`) {
		t.Fatal("expected meta refresh while loading")
	}
	if !strings.Contains(html, "Chart unavailable") {
		t.Fatal("expected missing chart sources to render a placeholder")
	}
}

func TestGenerateHTMLEmbedsDataURI(t *testing.T) {
	page := DefaultPage("", "").WithChart(ChartCategory, "data:image/png;base64,AAAA")
	html, err := GenerateHTML(NewView(page, loadedState()))
	if err != nil {
		t.Fatalf("GenerateHTML error: %v", err)
	}
	if !strings.Contains(html, `src="data:image/png;base64,AAAA"`) {
		t.Fatal("expected embedded data URI to survive escaping")
	}
}

func TestWithChartDoesNotMutateOriginal(t *testing.T) {
	page := DefaultPage("a", "b")
	updated := page.WithChart(ChartRange, "c")
	if page.Charts[1].Src != "b" || updated.Charts[1].Src != "c" || updated.Charts[0].Src != "a" {
		t.Fatalf("unexpected chart sources: %+v / %+v", page.Charts, updated.Charts)
	}
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderText(&buf, NewView(DefaultPage("", ""), loadedState())); err != nil {
		t.Fatalf("RenderText error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Average Performance Summary", "Range Search Results", "Iteration 1", "[Summary]", "Improved", "Degraded", "1,100"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected text output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRenderTextLoading(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderText(&buf, NewView(DefaultPage("", ""), initialState())); err != nil {
		t.Fatalf("RenderText error: %v", err)
	}
	if !strings.Contains(buf.String(), "Loading data...") {
		t.Fatalf("expected loading text, got:\n%s", buf.String())
	}
}

func TestRenderMarkdown(t *testing.T) {
	var buf bytes.Buffer
	state := loadedState()
	state.Words = append(state.Words, dataset.WordSearchRecord{Iteration: "odd|label", BST0: 1, Triplet: 1})
	if err := RenderMarkdown(&buf, NewView(DefaultPage("https://blob.test/c.png", "data:image/png;base64,AA"), state)); err != nil {
		t.Fatalf("RenderMarkdown error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"# Binary Search Tree Performance Analysis",
		"| Category | BST0 | Triplet | Improvement |",
		"| **Average XYZ** (Summary) | 1,100 | 1,000 | 9.1% |",
		"![BST0 vs Triplet average operations by category](https://blob.test/c.png)",
		`odd\|label`,
		"average improvement of 7.5%",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected markdown to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "data:image/png") {
		t.Fatal("expected embedded images to be left out of markdown")
	}
}

func TestWriteAnalysisJSON(t *testing.T) {
	view := NewView(DefaultPage("", ""), loadedState())
	var buf bytes.Buffer
	if err := WriteAnalysisJSON(&buf, NewAnalysis(view, testSources())); err != nil {
		t.Fatalf("WriteAnalysisJSON error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["word_search_url"] != testWordURL {
		t.Fatalf("expected source URL in export, got %v", decoded["word_search_url"])
	}
	if rows, ok := decoded["word_search"].([]any); !ok || len(rows) != 3 {
		t.Fatalf("expected 3 word search rows, got %v", decoded["word_search"])
	}
	if decoded["loading"] != false {
		t.Fatalf("expected loading=false, got %v", decoded["loading"])
	}
}

func TestFormatting(t *testing.T) {
	if got := formatNumber(1234.5); got != "1,234.5" {
		t.Fatalf("formatNumber(1234.5) = %q", got)
	}
	if got := formatNumber(150); got != "150" {
		t.Fatalf("formatNumber(150) = %q", got)
	}
	if got := formatPercent(8.3333, 1); got != "8.3%" {
		t.Fatalf("formatPercent = %q", got)
	}
	if statusLabel(0) != "Degraded" || statusLabel(0.01) != "Improved" {
		t.Fatal("expected zero to count as degraded")
	}
	if got := joinAuthors([]string{"A", "B", "C"}); got != "A, B & C" {
		t.Fatalf("joinAuthors = %q", got)
	}
}

func TestCardsCountIterations(t *testing.T) {
	cards := NewView(DefaultPage("", ""), loadedState()).Cards()
	if len(cards) != 3 || cards[2].Value != "2" {
		t.Fatalf("expected iteration count card of 2, got %+v", cards)
	}
}
