// internal/report/text.go
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	"github.com/mwiater/bstreport/internal/metrics"
)

var (
	improvedText = color.New(color.FgGreen).SprintFunc()
	degradedText = color.New(color.FgRed).SprintFunc()
	summaryBadge = color.New(color.FgHiBlack, color.Bold).SprintFunc()

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62")).MarginTop(1)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	headerCell   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	plainCell    = lipgloss.NewStyle().Padding(0, 1)
	numericCell  = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
)

// RenderText writes the terminal rendition of the report.
func RenderText(w io.Writer, v View) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render(v.Title) + "\n")
	b.WriteString(mutedStyle.Render(v.Subtitle) + "\n")
	if line := v.AuthorLine(); line != "" {
		b.WriteString(mutedStyle.Render("Practical work by: "+line) + "\n")
	}

	b.WriteString(sectionStyle.Render("Executive Summary") + "\n")
	cards := v.Cards()
	cardCells := make([]string, 0, len(cards))
	for _, card := range cards {
		cardCells = append(cardCells, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			MarginRight(1).
			Render(card.Value+"\n"+mutedStyle.Render(card.Label)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cardCells...) + "\n")

	if v.State.Loading {
		b.WriteString(sectionStyle.Render("Tables") + "\n")
		b.WriteString("Loading data...\n")
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString(sectionStyle.Render("Average Performance Summary") + "\n")
	b.WriteString(renderTable([]string{"Category", "BST0", "Triplet", "Improvement"}, v.AverageRows(), false) + "\n")

	b.WriteString(sectionStyle.Render("Range Search Results") + "\n")
	b.WriteString(renderTable([]string{"Iteration", "BST0 Operations", "Triplet Operations", "Improvement"}, v.RangeRows(), false) + "\n")
	b.WriteString(mutedStyle.Render(statsLine("Range search", v.State.RangeStats)) + "\n")

	b.WriteString(sectionStyle.Render("Complete Word Search Dataset") + "\n")
	b.WriteString(renderTable([]string{"Test Case", "BST0 Operations", "Triplet Operations", "Performance Improvement", "Status"}, v.DatasetRows(), true) + "\n")
	b.WriteString(mutedStyle.Render(statsLine("Word search", v.State.Stats)) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func renderTable(headers []string, rows []Row, withStatus bool) string {
	if len(rows) == 0 {
		return mutedStyle.Render("No data")
	}
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		label := row.Label
		if row.Aggregate {
			label += " " + summaryBadge("[Summary]")
		}
		improvement := degradedText(row.Improvement)
		if row.Improved {
			improvement = improvedText(row.Improvement)
		}
		line := []string{label, row.BST0, row.Triplet, improvement}
		if withStatus {
			line = append(line, statusBadge(row))
		}
		cells = append(cells, line)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerCell
			case col == 0 || col == 4:
				return plainCell
			default:
				return numericCell
			}
		})
	return t.String()
}

func statusBadge(row Row) string {
	if row.Improved {
		return improvedText("▲ " + row.Status)
	}
	return degradedText("▼ " + row.Status)
}

func statsLine(label string, stats metrics.SummaryStatistics) string {
	return fmt.Sprintf("%s: %d rows, average %s, max %s, min %s",
		label,
		stats.Count,
		formatPercent(stats.AverageImprovement, 2),
		formatPercent(stats.MaxImprovement, 2),
		formatPercent(stats.MinImprovement, 2),
	)
}
