package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwiater/bstreport/internal/dataset"
	"github.com/mwiater/bstreport/internal/report"
)

type fakeLoader struct {
	state report.State
	calls int
}

func (f *fakeLoader) Load(ctx context.Context) report.State {
	f.calls++
	return f.state
}

// TestLoadingModel_StateTransitions drives the model from loading to done and
// checks that the settled state is handed back to the caller.
func TestLoadingModel_StateTransitions(t *testing.T) {
	loader := &fakeLoader{state: report.State{
		Words: []dataset.WordSearchRecord{{Iteration: "Run1", BST0: 100, Triplet: 80, Improvement: 20}},
	}}
	m := NewLoadingModel(context.Background(), loader)

	if cmd := m.Init(); cmd == nil {
		t.Fatal("expected Init to return a command")
	}
	if !strings.Contains(m.View(), "Loading data...") {
		t.Fatalf("expected loading view, got %q", m.View())
	}

	m2, _ := m.Update(tickMsg(m.start.Add(1500 * time.Millisecond)))
	m = m2.(*LoadingModel)
	if !strings.Contains(m.View(), "1.5s") {
		t.Fatalf("expected elapsed time in view, got %q", m.View())
	}

	msg := loadCmd(context.Background(), loader)()
	m2, cmd := m.Update(msg)
	m = m2.(*LoadingModel)
	if !m.Done() || m.Interrupted() {
		t.Fatalf("expected done and not interrupted; done=%v interrupted=%v", m.Done(), m.Interrupted())
	}
	if cmd == nil {
		t.Fatal("expected quit command after load")
	}
	if len(m.State().Words) != 1 || loader.calls != 1 {
		t.Fatalf("unexpected state %+v after %d loads", m.State(), loader.calls)
	}
	if m.View() != "" {
		t.Fatalf("expected empty view after load, got %q", m.View())
	}
}

func TestLoadingModel_Interrupt(t *testing.T) {
	m := NewLoadingModel(context.Background(), &fakeLoader{})
	m2, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = m2.(*LoadingModel)
	if !m.Interrupted() || cmd == nil {
		t.Fatal("expected ctrl+c to interrupt and quit")
	}
	if m.Done() {
		t.Fatal("expected interrupted model not to be done")
	}
	if !m.State().Loading {
		t.Fatal("expected state to remain in loading")
	}
}
