package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/learnaz/internal/counter"
	"github.com/atomicstack/learnaz/internal/logging"
	"github.com/atomicstack/learnaz/internal/logging/events"
	"github.com/atomicstack/learnaz/internal/prompt"
	"github.com/atomicstack/learnaz/internal/ui/command"
)

const toastDuration = 1500 * time.Millisecond

const (
	toastCopied = "Prompt copied"
	toastSaved  = "Saved locally"
)

type copyResultMsg struct {
	err error
}

type saveResultMsg struct {
	total int
	err   error
}

type toastExpiredMsg struct {
	seq uint64
}

type counterFrameMsg struct{}

func (m *Model) copyPrompt() tea.Cmd {
	text := m.promptOutput
	if text == "" {
		return nil
	}
	copier := m.copier
	return m.bus.Execute(command.Request{
		ID:    "prompt:copy",
		Label: "clipboard",
		Run: func() tea.Msg {
			return copyResultMsg{err: copier.Copy(text)}
		},
	})
}

func (m *Model) handleCopyResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(copyResultMsg)
	if !ok {
		return nil
	}
	events.Prompt.Copy(res.err)
	if res.err != nil {
		logging.Error(res.err)
		return nil
	}
	return m.showToast(toastCopied)
}

func (m *Model) savePrompt() tea.Cmd {
	text := m.promptOutput
	if text == "" {
		return nil
	}
	kv := m.kv
	now := m.now()
	return m.bus.Execute(command.Request{
		ID:    "prompt:save",
		Label: prompt.StorageKey,
		Run: func() tea.Msg {
			total, err := prompt.Save(kv, text, now)
			return saveResultMsg{total: total, err: err}
		},
	})
}

func (m *Model) handleSaveResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(saveResultMsg)
	if !ok {
		return nil
	}
	if res.err != nil {
		logging.Error(res.err)
		events.Action.Error(res.err)
		m.errMsg = fmt.Sprintf("save failed: %v", res.err)
		return nil
	}
	events.Prompt.Save(res.total)
	return m.showToast(toastSaved)
}

// showToast replaces any visible toast and hides it toastDuration after the
// latest call.
func (m *Model) showToast(text string) tea.Cmd {
	m.toast = text
	m.toastSeq++
	seq := m.toastSeq
	events.Action.Success(text)
	return m.schedule(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (m *Model) handleToastExpiredMsg(msg tea.Msg) tea.Cmd {
	expired, ok := msg.(toastExpiredMsg)
	if !ok {
		return nil
	}
	if expired.seq == m.toastSeq {
		m.toast = ""
	}
	return nil
}

// startCounters begins the stats animation the first time the screen size
// is known.
func (m *Model) startCounters() tea.Cmd {
	if m.width <= 0 || m.height <= 0 {
		return nil
	}
	if !m.counters.Start(m.now()) {
		return nil
	}
	return m.nextCounterFrame()
}

func (m *Model) nextCounterFrame() tea.Cmd {
	return m.schedule(counter.FrameInterval, func(time.Time) tea.Msg {
		return counterFrameMsg{}
	})
}

func (m *Model) handleCounterFrameMsg(msg tea.Msg) tea.Cmd {
	if m.counters.Done(m.now()) {
		return nil
	}
	return m.nextCounterFrame()
}
