package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/learnaz/internal/feed"
	"github.com/atomicstack/learnaz/internal/nav"
	"github.com/atomicstack/learnaz/internal/newsletter"
)

const (
	cardRows     = 3
	defaultWidth = 80
	navSeparator = " · "
	labelWidth   = 14
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text carries its own ANSI styling
}

// frame is one laid out screen. cardAt maps a screen row to the index of the
// card drawn on it.
type frame struct {
	lines  []styledLine
	cardAt map[int]int
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.modal.IsOpen() {
		return m.viewModal()
	}
	f := m.buildFrame()
	lines := limitHeight(f.lines, m.height, m.width)
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) buildFrame() frame {
	f := frame{lines: make([]styledLine, 0, 32), cardAt: map[int]int{}}
	f.lines = append(f.lines, m.headerLines()...)
	f.lines = append(f.lines, styledLine{text: m.statsLine(), raw: true})
	f.lines = append(f.lines, styledLine{})
	switch m.nav.Active().ID {
	case nav.SectionUpdates:
		m.appendFeed(&f)
	case nav.SectionPrompt:
		f.lines = append(f.lines, m.promptLines()...)
	case nav.SectionNewsletter:
		f.lines = append(f.lines, m.newsletterLines()...)
	}
	f.lines = append(f.lines, m.bottomLines()...)
	return f
}

func (m *Model) headerLines() []styledLine {
	brand := m.render(m.styles.Header, siteName)
	toggle := m.theme.Icon() + " " + m.render(m.styles.Info, m.theme.Label()+" (t)")
	if !m.nav.LinksVisible(m.width) {
		menu := "☰ menu (m)"
		return []styledLine{{text: brand + "  " + m.render(m.styles.NavLink, menu) + "  " + toggle, raw: true}}
	}
	links := m.navLinks()
	if m.width > 0 && m.width < nav.CollapseWidth {
		return []styledLine{
			{text: brand + "  " + m.render(m.styles.NavLink, "✕ menu (m)") + "  " + toggle, raw: true},
			{text: links, raw: true},
		}
	}
	return []styledLine{{text: brand + "  " + links + "  " + toggle, raw: true}}
}

func (m *Model) navLinks() string {
	active := m.nav.Active().ID
	parts := make([]string, 0, 3)
	for i, item := range m.nav.Items() {
		label := fmt.Sprintf("%d %s", i+1, item.Label)
		style := m.styles.NavLink
		if item.ID == active {
			style = m.styles.NavActive
		}
		parts = append(parts, m.render(style, label))
	}
	return strings.Join(parts, navSeparator)
}

func (m *Model) statsLine() string {
	values := m.counters.Values(m.now())
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, m.render(m.styles.Stat, v.Text)+" "+m.render(m.styles.StatLabel, v.Label))
	}
	return strings.Join(parts, "   ")
}

func (m *Model) appendFeed(f *frame) {
	f.lines = append(f.lines,
		styledLine{text: m.searchLine(), raw: true},
		styledLine{text: m.tagLine(), raw: true},
		styledLine{},
	)
	if len(m.list.Cards) == 0 {
		placeholder := m.list.Placeholder
		if placeholder == "" {
			placeholder = feed.EmptyPlaceholder
		}
		f.lines = append(f.lines, styledLine{text: placeholder, style: m.styles.Placeholder})
		return
	}
	start, end := m.list.Window(m.cardArea())
	for idx := start; idx < end; idx++ {
		row := len(f.lines)
		for r := 0; r < cardRows; r++ {
			f.cardAt[row+r] = idx
		}
		f.lines = append(f.lines, m.cardLines(m.list.Cards[idx], idx == m.list.Cursor)...)
	}
}

// cardLines renders one card: title, chip row, summary.
func (m *Model) cardLines(card feed.Card, selected bool) []styledLine {
	width := m.contentWidth()
	indicator := "▌"
	titleStyle := m.styles.CardTitle
	indicatorStyle := m.styles.CardIndicator
	if selected {
		titleStyle = m.styles.SelectedCard
		indicatorStyle = m.styles.SelectedIndicator
	}
	title := indicator + " " + card.Title
	if width > 0 {
		if pad := width - ansi.StringWidth(title); pad > 0 {
			title += strings.Repeat(" ", pad)
		}
	}
	return []styledLine{
		{text: title, style: titleStyle, prefixStyle: indicatorStyle, highlightFrom: 1},
		{text: "  " + m.renderChips(card.Chips), raw: true},
		{text: "  " + card.Body, style: m.styles.CardBody},
	}
}

func (m *Model) renderChips(chips []string) string {
	parts := make([]string, len(chips))
	for i, chip := range chips {
		parts[i] = m.render(m.styles.Chip, chip)
	}
	return strings.Join(parts, " ")
}

func (m *Model) promptLines() []styledLine {
	lines := make([]styledLine, 0, 16)
	for i := 0; i < promptFieldCount; i++ {
		label := m.render(m.styles.Label, padRight(promptLabels[i], labelWidth))
		view := strings.Split(m.promptForm.fieldView(i), "\n")
		for j, row := range view {
			prefix := strings.Repeat(" ", labelWidth)
			if j == 0 {
				prefix = label
			}
			lines = append(lines, styledLine{text: prefix + row, raw: true})
		}
	}
	lines = append(lines, styledLine{})
	if m.promptOutput == "" {
		lines = append(lines, styledLine{text: "(press g to generate)", style: m.styles.Placeholder})
	} else {
		for _, row := range strings.Split(m.promptOutput, "\n") {
			lines = append(lines, styledLine{text: row, style: m.styles.CardBody})
		}
	}
	lines = append(lines, styledLine{})
	lines = append(lines, styledLine{text: "g generate  l load template  y copy  s save  enter edit", style: m.styles.Footer})
	return lines
}

func (m *Model) newsletterLines() []styledLine {
	lines := []styledLine{
		{text: "Get the weekly AI digest.", style: m.styles.CardTitle},
		{text: m.email.View(), raw: true},
	}
	if msg := m.subscribe.Message(); msg != "" {
		style := m.styles.Info
		if m.subscribe.Status() == newsletter.StatusInvalid {
			style = m.styles.Error
		}
		lines = append(lines, styledLine{text: msg, style: style})
	}
	return lines
}

func (m *Model) bottomLines() []styledLine {
	lines := []styledLine{{}}
	switch {
	case m.errMsg != "":
		lines = append(lines, styledLine{text: "Error: " + m.errMsg, style: m.styles.Error})
	case m.toast != "":
		lines = append(lines, styledLine{text: m.toast, style: m.styles.Toast})
	default:
		lines = append(lines, styledLine{})
	}
	footer := fmt.Sprintf("© %d %s", m.now().Year(), siteName)
	if m.showFooter {
		footer += "  ↑/↓ move  enter open  / search  tab tag  [ ] section  q quit"
	}
	lines = append(lines, styledLine{text: footer, style: m.styles.Footer})
	return lines
}

// cardArea is how many screen rows the cards may use, or -1 when the height
// is unknown.
func (m *Model) cardArea() int {
	if m.height <= 0 {
		return -1
	}
	used := len(m.headerLines()) + 2 // stats + blank
	used += 3                        // search + tag + blank
	used += 3                        // blank + status + footer
	if rows := m.height - used; rows > 0 {
		return rows
	}
	return 0
}

func (m *Model) contentWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	if ev.Action != tea.MouseActionPress {
		return nil
	}
	if m.modal.IsOpen() {
		if ev.Button == tea.MouseButtonLeft {
			m.handleModalClick(ev.X, ev.Y)
		}
		return nil
	}
	if m.nav.Active().ID != nav.SectionUpdates {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursorUp()
	case tea.MouseButtonWheelDown:
		m.moveCursorDown()
	case tea.MouseButtonLeft:
		if idx, ok := m.buildFrame().cardAt[ev.Y]; ok {
			return m.activateIndex(idx, "pointer")
		}
	}
	return nil
}

func (m *Model) render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

func padRight(text string, width int) string {
	if pad := width - ansi.StringWidth(text); pad > 0 {
		return text + strings.Repeat(" ", pad)
	}
	return text
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		line.text = truncateText(line.text, width)
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 || ansi.StringWidth(text) <= width {
		return text
	}
	return ansi.Truncate(text, width, "…")
}
