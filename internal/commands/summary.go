// internal/commands/summary.go
package bstreport

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/mwiater/bstreport/internal/report"
	"github.com/mwiater/bstreport/internal/tui"
	"github.com/spf13/cobra"
)

var summaryPlain bool

// summaryCmd prints the report to the terminal, with a spinner while the
// tables are being fetched.
var summaryCmd = &cobra.Command{
	Use:         "summary",
	Short:       "Print the report to the terminal",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{logAnnotation: logFileOnly},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := *GetConfig()
		ctx := commandContext(cmd)
		out := cmd.OutOrStdout()

		loader := newLoader(cfg)
		var state report.State
		if summaryPlain || !isTerminal(out) {
			state = loader.Load(ctx)
		} else {
			var interrupted bool
			var err error
			state, interrupted, err = runSpinner(ctx, loader, out)
			if err != nil {
				return err
			}
			if interrupted {
				fmt.Fprintln(out, "Interrupted.")
				return nil
			}
		}

		return report.RenderText(out, viewFor(cfg, pageFor(cfg), state))
	},
}

func runSpinner(ctx context.Context, loader tui.StateLoader, out io.Writer) (report.State, bool, error) {
	model := tui.NewLoadingModel(ctx, loader)
	final, err := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(out)).Run()
	if err != nil {
		return report.State{}, false, fmt.Errorf("run loading spinner: %w", err)
	}
	m, ok := final.(*tui.LoadingModel)
	if !ok {
		return report.State{}, false, fmt.Errorf("unexpected model type %T", final)
	}
	return m.State(), m.Interrupted() || !m.Done(), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryPlain, "plain", false, "skip the loading spinner")

	rootCmd.AddCommand(summaryCmd)
}
