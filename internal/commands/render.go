// internal/commands/render.go
package bstreport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/mwiater/bstreport/internal/appconfig"
	"github.com/mwiater/bstreport/internal/report"
	"github.com/mwiater/bstreport/internal/util"
	"github.com/spf13/cobra"
)

// renderOptions are the output destinations for the render command.
type renderOptions struct {
	HTMLPath     string
	AnalysisPath string
	MarkdownPath string
}

var renderOpts renderOptions

// renderCmd fetches both tables and writes the HTML report plus optional exports.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Fetch the comparison tables and write the HTML report",
	Long: `Fetch the word-search and range-search comparison tables, compute the
improvement statistics, and write a self-contained HTML report. Optional
Markdown and JSON exports carry the same data.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(commandContext(cmd), *GetConfig(), renderOpts, cmd.OutOrStdout())
	},
}

func runRender(ctx context.Context, cfg appconfig.Config, opts renderOptions, out io.Writer) error {
	start := time.Now()
	state := newLoader(cfg).Load(ctx)

	page := pageFor(cfg)
	if cfg.RenderCharts {
		page = embedCharts(page, state)
	}
	view := viewFor(cfg, page, state)

	htmlPath := opts.HTMLPath
	if htmlPath == "" {
		htmlPath = appconfig.DefaultOutputPath()
	}
	html, err := report.GenerateHTML(view)
	if err != nil {
		return fmt.Errorf("generate html report: %w", err)
	}
	if err := util.WriteFile(htmlPath, []byte(html)); err != nil {
		return fmt.Errorf("write html report: %w", err)
	}
	printWritten(out, "HTML report", htmlPath)

	if opts.MarkdownPath != "" {
		var buf bytes.Buffer
		if err := report.RenderMarkdown(&buf, view); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if err := util.WriteFile(opts.MarkdownPath, buf.Bytes()); err != nil {
			return fmt.Errorf("write markdown report: %w", err)
		}
		printWritten(out, "Markdown report", opts.MarkdownPath)
	}

	if opts.AnalysisPath != "" {
		var buf bytes.Buffer
		if err := report.WriteAnalysisJSON(&buf, report.NewAnalysis(view, sourcesFor(cfg))); err != nil {
			return fmt.Errorf("encode analysis: %w", err)
		}
		if err := util.WriteFile(opts.AnalysisPath, buf.Bytes()); err != nil {
			return fmt.Errorf("write analysis: %w", err)
		}
		printWritten(out, "Analysis JSON", opts.AnalysisPath)
	}

	fmt.Fprintf(out, "%d word-search rows (%d iterations), %d range-search rows in %s\n",
		len(state.Words), len(state.Iterations), len(state.Range), time.Since(start).Round(time.Millisecond))
	if len(state.Words) == 0 && len(state.Range) == 0 {
		color.New(color.FgYellow).Fprintf(out, "No data was loaded; check %s for fetch errors.\n", cfg.LogFilePath())
	}
	return nil
}

func printWritten(out io.Writer, label, path string) {
	fmt.Fprintf(out, "%s %s written to %s\n", color.GreenString("✓"), label, path)
}

func init() {
	renderCmd.Flags().StringVarP(&renderOpts.HTMLPath, "output", "o", appconfig.DefaultOutputPath(), "Destination HTML report path")
	renderCmd.Flags().StringVar(&renderOpts.MarkdownPath, "markdown-output", "", "Optional path to write a Markdown report")
	renderCmd.Flags().StringVar(&renderOpts.AnalysisPath, "analysis-output", "", "Optional path to write the analysis JSON")

	rootCmd.AddCommand(renderCmd)
}
