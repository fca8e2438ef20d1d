// internal/tui/loading.go
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/bstreport/internal/report"
)

// StateLoader is the part of report.Loader the spinner needs.
type StateLoader interface {
	Load(ctx context.Context) report.State
}

// loadedMsg carries the settled state back into the update loop.
type loadedMsg struct {
	state report.State
}

// tickMsg advances the elapsed-time display.
type tickMsg time.Time

// LoadingModel shows a spinner until the report pipeline settles, then quits
// so the caller can print the full report outside the alt screen.
type LoadingModel struct {
	ctx         context.Context
	loader      StateLoader
	spinner     spinner.Model
	start       time.Time
	now         time.Time
	state       report.State
	done        bool
	interrupted bool
}

// NewLoadingModel returns a model that runs loader.Load when started.
func NewLoadingModel(ctx context.Context, loader StateLoader) *LoadingModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	now := time.Now()
	return &LoadingModel{
		ctx:     ctx,
		loader:  loader,
		spinner: s,
		start:   now,
		now:     now,
		state:   report.State{Loading: true},
	}
}

func loadCmd(ctx context.Context, loader StateLoader) tea.Cmd {
	return func() tea.Msg {
		return loadedMsg{state: loader.Load(ctx)}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the spinner, the elapsed timer and the pipeline.
func (m *LoadingModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickCmd(), loadCmd(m.ctx, m.loader))
}

// Update handles spinner ticks, the settled state and quit keys.
func (m *LoadingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.interrupted = true
			return m, tea.Quit
		}
	case loadedMsg:
		m.state = msg.state
		m.done = true
		return m, tea.Quit
	case tickMsg:
		if m.done {
			return m, nil
		}
		m.now = time.Time(msg)
		return m, tickCmd()
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the spinner line while loading and nothing afterwards.
func (m *LoadingModel) View() string {
	if m.done || m.interrupted {
		return ""
	}
	elapsed := m.now.Sub(m.start).Seconds()
	return fmt.Sprintf("\n  %s Loading data... %.1fs\n", m.spinner.View(), elapsed)
}

// State returns the settled state once Done reports true.
func (m *LoadingModel) State() report.State { return m.state }

// Done reports whether the pipeline settled.
func (m *LoadingModel) Done() bool { return m.done }

// Interrupted reports whether the user quit before the pipeline settled.
func (m *LoadingModel) Interrupted() bool { return m.interrupted }
