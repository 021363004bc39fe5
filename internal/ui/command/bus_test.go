package command

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type doneMsg struct{ value int }

func TestExecuteRunsRequest(t *testing.T) {
	cmd := New().Execute(Request{ID: "probe", Label: "image", Run: func() tea.Msg { return doneMsg{value: 7} }})
	msg := cmd()
	done, ok := msg.(doneMsg)
	if !ok || done.value != 7 {
		t.Fatalf("expected doneMsg{7}, got %#v", msg)
	}
}

func TestExecuteWithoutRunIsNoop(t *testing.T) {
	cmd := New().Execute(Request{ID: "empty"})
	if cmd == nil {
		t.Fatalf("expected a command")
	}
	if msg := cmd(); msg != nil {
		t.Fatalf("expected nil message, got %#v", msg)
	}
}
