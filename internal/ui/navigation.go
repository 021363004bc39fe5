package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/learnaz/internal/feed"
	"github.com/atomicstack/learnaz/internal/logging/events"
	"github.com/atomicstack/learnaz/internal/nav"
	uistate "github.com/atomicstack/learnaz/internal/ui/state"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.modal.IsOpen() {
		return m.handleModalKey(keyMsg)
	}
	switch m.focus {
	case focusSearch:
		return m.handleSearchKey(keyMsg)
	case focusTag:
		return m.handleTagPromptKey(keyMsg)
	case focusPrompt:
		return m.handlePromptKey(keyMsg)
	case focusNewsletter:
		return m.handleNewsletterKey(keyMsg)
	}
	if cmd, handled := m.handleGlobalKey(keyMsg); handled {
		return cmd
	}
	switch m.nav.Active().ID {
	case nav.SectionUpdates:
		return m.handleFeedKey(keyMsg)
	case nav.SectionPrompt:
		return m.handlePromptSectionKey(keyMsg)
	case nav.SectionNewsletter:
		return m.handleNewsletterSectionKey(keyMsg)
	}
	return nil
}

func (m *Model) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "q", "esc":
		return tea.Quit, true
	case "t":
		m.toggleTheme()
		return nil, true
	case "m":
		m.nav.Toggle()
		return nil, true
	case "]":
		m.nav.Step(1)
		m.noteSection()
		return nil, true
	case "[":
		m.nav.Step(-1)
		m.noteSection()
		return nil, true
	case "1", "2", "3":
		items := m.nav.Items()
		idx := int(msg.Runes[0] - '1')
		if idx < len(items) && m.nav.Select(items[idx].ID) {
			m.noteSection()
		}
		return nil, true
	}
	return nil, false
}

func (m *Model) noteSection() {
	m.errMsg = ""
	m.setFocus(focusList)
}

func (m *Model) toggleTheme() {
	m.theme.Toggle()
	m.applyStyles()
}

func (m *Model) handleFeedKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeySpace {
		return m.activateCurrent("keyboard")
	}
	switch msg.String() {
	case "enter":
		return m.activateCurrent("keyboard")
	case "/":
		return m.setFocus(focusSearch)
	case "tab":
		m.stepTag(1)
	case "shift+tab":
		m.stepTag(-1)
	case "ctrl+t", "#":
		return m.openTagPrompt()
	case "ctrl+u":
		m.clearQuery()
	case "up", "k":
		m.moveCursorUp()
	case "down", "j":
		m.moveCursorDown()
	case "pgup":
		m.moveCursorPageUp()
	case "pgdown":
		m.moveCursorPageDown()
	case "home", "g":
		m.moveCursorHome()
	case "end", "G":
		m.moveCursorEnd()
	}
	return nil
}

// activateCurrent opens the card under the cursor.
func (m *Model) activateCurrent(via string) tea.Cmd {
	if m.list == nil {
		return nil
	}
	return m.activateIndex(m.list.Cursor, via)
}

// activateIndex is the single open-detail action shared by keyboard and
// pointer activation.
func (m *Model) activateIndex(idx int, via string) tea.Cmd {
	if idx < 0 || idx >= len(m.list.Cards) {
		return nil
	}
	m.list.Cursor = idx
	m.syncViewport()
	card := m.list.Cards[idx]
	events.Feed.Activate(card.Title, via)
	return m.openModal(card.Record)
}

func (m *Model) setFocus(f focus) tea.Cmd {
	if m.focus == f {
		return nil
	}
	prev := m.focus
	m.focus = f
	switch prev {
	case focusSearch:
		m.filterCursor.Blur()
		events.Filter.Focus(false)
	case focusTag:
		m.tagInput.Blur()
	case focusPrompt:
		m.promptForm.Blur()
	case focusNewsletter:
		m.email.Blur()
	}
	switch f {
	case focusSearch:
		events.Filter.Focus(true)
		m.filterCursorDirty = true
		return m.filterCursor.Focus()
	case focusTag:
		return m.tagInput.Focus()
	case focusPrompt:
		return m.promptForm.Focus()
	case focusNewsletter:
		return m.email.Focus()
	}
	return nil
}

func (m *Model) moveCursor(motion uistate.Motion) {
	if m.list.Move(motion, m.cardArea()) {
		events.Feed.Cursor(m.list.Cursor)
	}
	m.syncViewport()
}

func (m *Model) moveCursorUp()       { m.moveCursor(uistate.MotionUp) }
func (m *Model) moveCursorDown()     { m.moveCursor(uistate.MotionDown) }
func (m *Model) moveCursorPageUp()   { m.moveCursor(uistate.MotionPageUp) }
func (m *Model) moveCursorPageDown() { m.moveCursor(uistate.MotionPageDown) }
func (m *Model) moveCursorHome()     { m.moveCursor(uistate.MotionHome) }
func (m *Model) moveCursorEnd()      { m.moveCursor(uistate.MotionEnd) }

func (m *Model) syncViewport() {
	m.list.Follow(m.cardArea())
}

// refreshFeed runs a filter+render cycle against the current state.
func (m *Model) refreshFeed() {
	m.showView(m.adapter.Refresh())
}

func (m *Model) showView(view feed.View) {
	m.list.SetView(view)
	st := m.adapter.State()
	events.Feed.Render(st.Query, st.Tag, len(view.Cards))
	m.syncViewport()
}

func (m *Model) stepTag(step int) {
	next := feed.NextTag(m.adapter.State().Tag, m.catalog.Tags(), step)
	m.applyTag(next)
}

func (m *Model) applyTag(tag string) {
	m.errMsg = ""
	events.Filter.Tag(tag)
	m.showView(m.adapter.HandleTagChange(tag))
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.promptForm.setWidth(m.contentWidth())
	m.syncViewport()
	return m.startCounters()
}
