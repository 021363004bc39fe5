package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/learnaz/internal/logging/events"
	"github.com/atomicstack/learnaz/internal/newsletter"
	"github.com/atomicstack/learnaz/internal/prompt"
	"github.com/atomicstack/learnaz/internal/theme"
)

const (
	fieldObjective = iota
	fieldAudience
	fieldTone
	fieldConstraints
	fieldContext
	promptFieldCount
)

var promptLabels = [promptFieldCount]string{
	"Objective",
	"Audience",
	"Style & Tone",
	"Constraints",
	"Context",
}

// promptForm groups the prompt composer inputs. The context field is
// multi-line; the others are single-line.
type promptForm struct {
	inputs  [fieldContext]textinput.Model
	context textarea.Model
	active  int
	focused bool
}

func newPromptForm() *promptForm {
	f := &promptForm{}
	placeholders := [fieldContext]string{
		"What should the model do?",
		"Who is it for?",
		"e.g. analytical, persuasive",
		"Length, format, must-haves",
	}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 240
		f.inputs[i] = ti
	}
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.Placeholder = "Background, data, links"
	ta.SetHeight(3)
	ta.CharLimit = 2000
	f.context = ta
	return f
}

func (f *promptForm) Focus() tea.Cmd {
	f.focused = true
	if f.active == fieldContext {
		return f.context.Focus()
	}
	return f.inputs[f.active].Focus()
}

func (f *promptForm) Blur() {
	f.focused = false
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.context.Blur()
}

// Next moves focus step fields, wrapping around.
func (f *promptForm) Next(step int) tea.Cmd {
	f.Blur()
	f.active = ((f.active+step)%promptFieldCount + promptFieldCount) % promptFieldCount
	return f.Focus()
}

func (f *promptForm) Fields() prompt.Fields {
	return prompt.Fields{
		Objective:   f.inputs[fieldObjective].Value(),
		Audience:    f.inputs[fieldAudience].Value(),
		Tone:        f.inputs[fieldTone].Value(),
		Constraints: f.inputs[fieldConstraints].Value(),
		Context:     f.context.Value(),
	}
}

func (f *promptForm) SetFields(v prompt.Fields) {
	f.inputs[fieldObjective].SetValue(v.Objective)
	f.inputs[fieldAudience].SetValue(v.Audience)
	f.inputs[fieldTone].SetValue(v.Tone)
	f.inputs[fieldConstraints].SetValue(v.Constraints)
	f.context.SetValue(v.Context)
}

func (f *promptForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if f.active == fieldContext {
		f.context, cmd = f.context.Update(msg)
		return cmd
	}
	f.inputs[f.active], cmd = f.inputs[f.active].Update(msg)
	return cmd
}

func (f *promptForm) setWidth(width int) {
	w := width - 16
	if w < 10 {
		w = 10
	}
	for i := range f.inputs {
		f.inputs[i].Width = w
	}
	f.context.SetWidth(w)
}

func (f *promptForm) applyStyles(st *theme.Styles) {
	for i := range f.inputs {
		styleInput(&f.inputs[i], st)
	}
	if st != nil && st.FilterPlaceholder != nil {
		f.context.FocusedStyle.Placeholder = *st.FilterPlaceholder
		f.context.BlurredStyle.Placeholder = *st.FilterPlaceholder
	}
}

func (f *promptForm) fieldView(i int) string {
	if i == fieldContext {
		return f.context.View()
	}
	return f.inputs[i].View()
}

func (m *Model) handlePromptSectionKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "i", "tab":
		return m.setFocus(focusPrompt)
	case "g":
		m.generatePrompt()
	case "l":
		m.loadTemplate()
	case "y":
		return m.copyPrompt()
	case "s":
		return m.savePrompt()
	}
	return nil
}

func (m *Model) handlePromptKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return m.setFocus(focusList)
	case "tab":
		return m.promptForm.Next(1)
	case "shift+tab":
		return m.promptForm.Next(-1)
	case "ctrl+g":
		m.generatePrompt()
		return nil
	case "ctrl+l":
		m.loadTemplate()
		return nil
	case "ctrl+y":
		return m.copyPrompt()
	case "ctrl+s":
		return m.savePrompt()
	case "enter":
		if m.promptForm.active != fieldContext {
			return m.promptForm.Next(1)
		}
	}
	return m.promptForm.Update(msg)
}

func (m *Model) generatePrompt() {
	fields := m.promptForm.Fields()
	m.promptOutput = prompt.Compose(fields)
	events.Prompt.Compose(len(prompt.Lines(fields)))
}

func (m *Model) loadTemplate() {
	tpl := prompt.PickTemplate(m.rnd)
	m.promptForm.SetFields(tpl.Fields)
	events.Prompt.Template(tpl.Name)
}

func (m *Model) handleNewsletterSectionKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "i", "tab":
		return m.setFocus(focusNewsletter)
	}
	return nil
}

func (m *Model) handleNewsletterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return m.setFocus(focusList)
	case "enter":
		return m.submitNewsletter()
	}
	var cmd tea.Cmd
	m.email, cmd = m.email.Update(msg)
	return cmd
}

// subscribeDoneMsg completes the mocked subscription identified by seq.
type subscribeDoneMsg struct {
	seq uint64
}

func (m *Model) submitNewsletter() tea.Cmd {
	seq, ok := m.subscribe.Submit(m.email.Value())
	events.Newsletter.Submit(ok)
	if !ok {
		return nil
	}
	return m.schedule(newsletter.ConfirmDelay, func(time.Time) tea.Msg {
		return subscribeDoneMsg{seq: seq}
	})
}

func (m *Model) handleSubscribeDoneMsg(msg tea.Msg) tea.Cmd {
	done, ok := msg.(subscribeDoneMsg)
	if !ok {
		return nil
	}
	if m.subscribe.Complete(done.seq) {
		m.email.SetValue("")
		events.Newsletter.Subscribed()
	}
	return nil
}

func newEmailInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "email: "
	ti.Placeholder = "you@example.com"
	ti.CharLimit = 254
	return ti
}
