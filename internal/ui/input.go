package ui

import (
	"fmt"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/learnaz/internal/feed"
	"github.com/atomicstack/learnaz/internal/logging/events"
	"github.com/atomicstack/learnaz/internal/theme"
)

const (
	searchPlaceholder = "(press / to search)"
	allTagsLabel      = "All tags"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.search.Pos() {
		m.filterCursorDirty = true
	}
}

// handleSearchKey edits the search input. Every edit commits the raw value
// to the adapter and re-renders the feed.
func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	before := m.search.Pos()
	switch msg.String() {
	case "esc", "enter":
		return m.setFocus(focusList)
	case "up":
		m.moveCursorUp()
		return nil
	case "down":
		m.moveCursorDown()
		return nil
	case "ctrl+u":
		m.clearQuery()
		m.noteFilterCursorChange(before)
		return nil
	case "ctrl+w":
		if m.search.DeleteWordBackward() {
			m.commitQuery()
		}
		m.noteFilterCursorChange(before)
		return nil
	case "ctrl+a":
		if m.search.MoveStart() {
			events.Filter.Cursor(m.search.Pos())
		}
		m.noteFilterCursorChange(before)
		return nil
	case "ctrl+e":
		if m.search.MoveEnd() {
			events.Filter.Cursor(m.search.Pos())
		}
		m.noteFilterCursorChange(before)
		return nil
	case "alt+b":
		if m.search.MoveWordBackward() {
			events.Filter.Cursor(m.search.Pos())
		}
		m.noteFilterCursorChange(before)
		return nil
	case "alt+f":
		if m.search.MoveWordForward() {
			events.Filter.Cursor(m.search.Pos())
		}
		m.noteFilterCursorChange(before)
		return nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		if m.search.DeleteRuneBackward() {
			m.commitQuery()
		}
	case tea.KeySpace:
		if m.search.Insert(" ") {
			m.commitQuery()
		}
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return nil
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return nil
			}
		}
		if m.search.Insert(string(msg.Runes)) {
			m.commitQuery()
		}
	case tea.KeyLeft:
		if m.search.MoveRuneBackward() {
			events.Filter.Cursor(m.search.Pos())
		}
	case tea.KeyRight:
		if m.search.MoveRuneForward() {
			events.Filter.Cursor(m.search.Pos())
		}
	}
	m.noteFilterCursorChange(before)
	return nil
}

func (m *Model) commitQuery() {
	m.errMsg = ""
	events.Filter.Query(m.search.Value)
	m.showView(m.adapter.HandleQueryInput(m.search.Value))
}

func (m *Model) clearQuery() {
	if !m.search.Clear() {
		return
	}
	events.Filter.Cleared()
	m.commitQuery()
}

func (m *Model) openTagPrompt() tea.Cmd {
	m.tagInput.SetValue(m.adapter.State().Tag)
	m.tagInput.CursorEnd()
	return m.setFocus(focusTag)
}

func (m *Model) handleTagPromptKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return m.setFocus(focusList)
	case "enter":
		input := m.tagInput.Value()
		tag, ok := feed.ResolveTag(input, m.catalog.Tags())
		cmd := m.setFocus(focusList)
		if !ok {
			m.errMsg = fmt.Sprintf("No tag matches %q", input)
			return cmd
		}
		m.applyTag(tag)
		return cmd
	}
	var cmd tea.Cmd
	m.tagInput, cmd = m.tagInput.Update(msg)
	return cmd
}

func newTagInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "tag: "
	ti.Placeholder = "empty for all tags"
	ti.CharLimit = 64
	return ti
}

func styleInput(ti *textinput.Model, st *theme.Styles) {
	if st == nil {
		return
	}
	if st.FilterPrompt != nil {
		ti.PromptStyle = *st.FilterPrompt
	}
	if st.Filter != nil {
		ti.TextStyle = *st.Filter
	}
	if st.FilterPlaceholder != nil {
		ti.PlaceholderStyle = *st.FilterPlaceholder
	}
	if st.Cursor != nil {
		ti.Cursor.Style = *st.Cursor
	}
}

// searchLine renders the search prompt with its caret.
func (m *Model) searchLine() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	prompt := "» "
	if m.styles.FilterPrompt != nil {
		prompt = m.styles.FilterPrompt.Render(prompt)
	}
	text := m.search.Value
	if text == "" {
		if m.focus != focusSearch {
			return prompt + render(m.styles.FilterPlaceholder, searchPlaceholder)
		}
		return prompt + m.renderFilterCursor(" ")
	}
	if m.focus != focusSearch {
		return prompt + render(m.styles.Filter, text)
	}
	runes := []rune(text)
	pos := m.search.Pos()
	before := render(m.styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(m.styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)
	base := m.filterCursor.TextStyle.Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if m.styles.Cursor != nil {
		return base.Inherit(m.styles.Cursor.Inline(true)).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}

// tagLine renders the tag selector.
func (m *Model) tagLine() string {
	if m.focus == focusTag {
		return m.tagInput.View()
	}
	tag := m.adapter.State().Tag
	label := allTagsLabel
	if tag != "" {
		label = tag
	}
	text := "tag: " + label + "  (tab to cycle, # to pick)"
	if m.styles.Label != nil {
		return m.styles.Label.Render(text)
	}
	return text
}
