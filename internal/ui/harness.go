package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

type pendingTimer struct {
	after time.Duration
	fn    func(time.Time) tea.Msg
}

// Harness drives the UI model programmatically for integration tests.
// Timed commands are held until FireTimers is called and cursors do not
// blink, so every Send runs to completion without sleeping.
type Harness struct {
	model  *Model
	timers []pendingTimer
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	h := &Harness{model: model}
	if model != nil {
		model.schedule = h.hold
		model.useStaticCursors()
	}
	return h
}

func (h *Harness) hold(d time.Duration, fn func(time.Time) tea.Msg) tea.Cmd {
	h.timers = append(h.timers, pendingTimer{after: d, fn: fn})
	return nil
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	h.deliver(msg)
}

func (h *Harness) deliver(msg tea.Msg) {
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if batch, ok := next.(tea.BatchMsg); ok {
			for _, cmd := range batch {
				if cmd == nil {
					continue
				}
				if out := cmd(); out != nil {
					queue = append(queue, out)
				}
			}
			continue
		}
		mdl, cmd := h.model.Update(next)
		if updated, ok := mdl.(*Model); ok {
			h.model = updated
		}
		if cmd != nil {
			if out := cmd(); out != nil {
				queue = append(queue, out)
			}
		}
	}
}

// Init runs the model's Init command.
func (h *Harness) Init() {
	if h.model == nil {
		return
	}
	if cmd := h.model.Init(); cmd != nil {
		if msg := cmd(); msg != nil {
			h.deliver(msg)
		}
	}
}

// PendingTimers reports how many timed commands are waiting.
func (h *Harness) PendingTimers() int {
	return len(h.timers)
}

// FireTimers delivers every timer scheduled so far. Timers scheduled while
// firing wait for the next call.
func (h *Harness) FireTimers(now time.Time) {
	timers := h.timers
	h.timers = nil
	for _, t := range timers {
		if msg := t.fn(now); msg != nil {
			h.deliver(msg)
		}
	}
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}

func (m *Model) useStaticCursors() {
	m.filterCursor.SetMode(cursor.CursorStatic)
	m.tagInput.Cursor.SetMode(cursor.CursorStatic)
	m.email.Cursor.SetMode(cursor.CursorStatic)
	for i := range m.promptForm.inputs {
		m.promptForm.inputs[i].Cursor.SetMode(cursor.CursorStatic)
	}
	m.promptForm.context.Cursor.SetMode(cursor.CursorStatic)
}
