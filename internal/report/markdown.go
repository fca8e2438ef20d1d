// internal/report/markdown.go
package report

import (
	"fmt"
	"io"
	"strings"
)

// RenderMarkdown writes the report as a Markdown document. Tables use GitHub
// pipe syntax; pipes inside labels are escaped.
func RenderMarkdown(w io.Writer, v View) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", v.Title)
	fmt.Fprintf(&b, "_%s_\n\n", v.Subtitle)
	if line := v.AuthorLine(); line != "" {
		fmt.Fprintf(&b, "Practical work by: **%s**\n\n", line)
	}

	b.WriteString("## Executive Summary\n\n")
	b.WriteString(v.Summary + "\n\n")
	for _, card := range v.Cards() {
		fmt.Fprintf(&b, "- **%s**: %s\n", card.Label, card.Value)
	}
	b.WriteString("\n## Key Technical Remarks\n\n")
	for _, remark := range v.Remarks {
		fmt.Fprintf(&b, "### %s\n\n%s\n\n", remark.Title, remark.Body)
	}

	b.WriteString("## Performance Analysis Charts\n\n")
	for _, chart := range v.Charts {
		if chart.Src == "" || strings.HasPrefix(string(chart.Src), "data:") {
			fmt.Fprintf(&b, "### %s\n\n%s\n\n", chart.Title, chart.Caption)
			continue
		}
		fmt.Fprintf(&b, "### %s\n\n![%s](%s)\n\n%s\n\n", chart.Title, chart.Alt, chart.Src, chart.Caption)
	}

	if v.State.Loading {
		b.WriteString("_Loading data..._\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString("## Average Performance Summary\n\n")
	writeMarkdownTable(&b, []string{"Category", "BST0", "Triplet", "Improvement"}, v.AverageRows(), false)
	b.WriteString("## Range Search Results\n\n")
	writeMarkdownTable(&b, []string{"Iteration", "BST0 Operations", "Triplet Operations", "Improvement"}, v.RangeRows(), false)
	b.WriteString("## Complete Word Search Dataset\n\n")
	writeMarkdownTable(&b, []string{"Test Case", "BST0 Operations", "Triplet Operations", "Performance Improvement", "Status"}, v.DatasetRows(), true)

	b.WriteString("## Conclusions\n\n")
	fmt.Fprintf(&b, "The analysis demonstrates that the Triplet-based BST implementation shows significant performance "+
		"improvements over the standard BST0 implementation, with an average improvement of %s across all test iterations.\n\n",
		v.AverageImprovement())
	b.WriteString("**Key Findings:**\n\n")
	for _, finding := range v.Findings {
		fmt.Fprintf(&b, "- %s\n", finding)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeMarkdownTable(b *strings.Builder, headers []string, rows []Row, withStatus bool) {
	if len(rows) == 0 {
		b.WriteString("_No data_\n\n")
		return
	}
	b.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(headers)) + "\n")
	for _, row := range rows {
		label := escapeMarkdownCell(row.Label)
		if row.Aggregate {
			label = "**" + label + "** (Summary)"
		}
		cells := []string{label, row.BST0, row.Triplet, row.Improvement}
		if withStatus {
			cells = append(cells, row.Status)
		}
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	b.WriteString("\n")
}

func escapeMarkdownCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
