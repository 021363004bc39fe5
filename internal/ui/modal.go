package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/atomicstack/learnaz/internal/feed"
	"github.com/atomicstack/learnaz/internal/logging/events"
	"github.com/atomicstack/learnaz/internal/ui/command"
)

const (
	modalMaxWidth = 72
	modalMinWidth = 24
	closeControl  = "[x]"
)

type imageStatus int

const (
	imageLoading imageStatus = iota
	imageLoaded
	imageBroken
)

// imageResultMsg reports the outcome of loading one image attempt.
type imageResultMsg struct {
	seq uint64
	src string
	err error
}

func (m *Model) openModal(r feed.Record) tea.Cmd {
	seq := m.modal.Open(r)
	events.Modal.Open(r.Title, seq)
	return m.probeCurrentImage()
}

func (m *Model) closeModal(reason string) bool {
	if !m.modal.Close() {
		return false
	}
	events.Modal.Close(reason)
	return true
}

func (m *Model) handleModalKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "q", "x", "backspace":
		m.closeModal("key")
	}
	return nil
}

// probeCurrentImage starts a load attempt for the image the modal shows now.
func (m *Model) probeCurrentImage() tea.Cmd {
	detail, ok := m.modal.Detail()
	if !ok {
		return nil
	}
	m.image = imageLoading
	seq := m.modal.Seq()
	src := detail.Image
	dir := m.assetsDir
	return m.bus.Execute(command.Request{
		ID:    fmt.Sprintf("image:%d", seq),
		Label: src,
		Run: func() tea.Msg {
			return imageResultMsg{seq: seq, src: src, err: loadImage(dir, src)}
		},
	})
}

// loadImage resolves src against dir. Nothing is fetched over the network:
// references with a URI scheme (http://, data:) always count as loaded, so
// the default-image fallback only applies to local files. Anything else must
// exist on disk.
func loadImage(dir, src string) error {
	if src == "" {
		return os.ErrNotExist
	}
	if strings.Contains(src, "://") || strings.HasPrefix(src, "data:") {
		return nil
	}
	path := src
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("image %s is a directory", src)
	}
	return nil
}

func (m *Model) handleImageResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(imageResultMsg)
	if !ok || !m.modal.IsOpen() || res.seq != m.modal.Seq() {
		return nil
	}
	detail, _ := m.modal.Detail()
	if res.src != detail.Image {
		return nil
	}
	if res.err == nil {
		m.image = imageLoaded
		return nil
	}
	if m.modal.ImageFailed(res.seq) {
		events.Modal.ImageFallback(res.src, res.seq)
		return m.probeCurrentImage()
	}
	m.image = imageBroken
	return nil
}

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// modalLayout is the geometry of the detail box for the current screen.
type modalLayout struct {
	box   rect
	close rect
	rows  []string
}

func (m *Model) modalWidth() int {
	w := m.width - 4
	if w > modalMaxWidth {
		w = modalMaxWidth
	}
	if w < modalMinWidth {
		w = modalMinWidth
	}
	return w
}

// layoutModal builds the bordered detail box and places it centred on the
// screen.
func (m *Model) layoutModal() (modalLayout, bool) {
	detail, ok := m.modal.Detail()
	if !ok {
		return modalLayout{}, false
	}
	totalWidth := m.modalWidth()
	innerW := totalWidth - 4
	body := m.modalBody(detail, innerW)
	maxInner := m.height - 2
	if m.height > 0 && maxInner > 0 && len(body) > maxInner {
		body = append(body[:maxInner-1], "…")
	}
	rows := m.renderModalBox(detail.Title, body, totalWidth)
	box := rect{w: totalWidth, h: len(rows)}
	if gap := m.width - box.w; gap > 0 {
		box.x = gap / 2
	}
	if gap := m.height - box.h; gap > 0 {
		box.y = gap / 2
	}
	closeRect := rect{x: box.x + box.w - 2 - len(closeControl), y: box.y, w: len(closeControl), h: 1}
	return modalLayout{box: box, close: closeRect, rows: rows}, true
}

func (m *Model) modalBody(d feed.Detail, width int) []string {
	lines := make([]string, 0, 12)
	lines = append(lines, m.renderChips(d.Chips))
	lines = append(lines, "")
	if d.About != "" {
		for _, line := range wrap(d.About, width) {
			lines = append(lines, m.render(m.styles.ModalMuted, line))
		}
		lines = append(lines, "")
	}
	lines = append(lines, m.render(m.styles.Label, "image: ")+m.imageLine(d))
	if d.Body != "" {
		lines = append(lines, "")
		for _, line := range wrap(d.Body, width) {
			lines = append(lines, m.render(m.styles.ModalBody, line))
		}
	}
	return lines
}

func (m *Model) imageLine(d feed.Detail) string {
	status := ""
	switch m.image {
	case imageLoading:
		status = " (loading…)"
	case imageBroken:
		status = " (unavailable)"
	}
	return m.render(m.styles.ModalMuted, fmt.Sprintf("%s [%s]%s", d.Image, d.ImageAlt, status))
}

// renderModalBox draws the rounded frame with the title and the close
// control on the top border.
func (m *Model) renderModalBox(title string, body []string, totalWidth int) []string {
	const (
		tlc = "╭"
		trc = "╮"
		blc = "╰"
		brc = "╯"
		hz  = "─"
		vt  = "│"
	)
	innerW := totalWidth - 2
	closeSeg := closeControl
	titleSeg := " " + title + " "
	dashes := totalWidth - 4 - ansi.StringWidth(titleSeg) - len(closeSeg)
	if dashes < 0 {
		titleSeg = ansi.Truncate(titleSeg, totalWidth-4-len(closeSeg)-1, "…")
		dashes = totalWidth - 4 - ansi.StringWidth(titleSeg) - len(closeSeg)
	}
	if dashes < 0 {
		dashes = 0
	}
	border := m.styles.ModalBorder
	rows := make([]string, 0, len(body)+2)
	rows = append(rows, m.render(border, tlc+hz)+
		m.render(m.styles.ModalTitle, titleSeg)+
		m.render(border, strings.Repeat(hz, dashes))+
		m.render(m.styles.Error, closeSeg)+
		m.render(border, hz+trc))
	for _, line := range body {
		content := " " + line
		w := ansi.StringWidth(content)
		if w > innerW {
			content = ansi.Truncate(content, innerW, "…")
			w = ansi.StringWidth(content)
		}
		if w < innerW {
			content += strings.Repeat(" ", innerW-w)
		}
		rows = append(rows, m.render(border, vt)+content+m.render(border, vt))
	}
	rows = append(rows, m.render(border, blc+strings.Repeat(hz, innerW)+brc))
	return rows
}

// viewModal draws the scrim with the detail box on top.
func (m *Model) viewModal() string {
	layout, ok := m.layoutModal()
	if !ok {
		return ""
	}
	height := m.height
	if height < layout.box.h {
		height = layout.box.h
	}
	width := m.width
	if width < layout.box.w {
		width = layout.box.w
	}
	scrimRow := m.render(m.styles.Scrim, strings.Repeat("░", width))
	out := make([]string, height)
	for y := 0; y < height; y++ {
		if y < layout.box.y || y >= layout.box.y+layout.box.h {
			out[y] = scrimRow
			continue
		}
		left := m.render(m.styles.Scrim, strings.Repeat("░", layout.box.x))
		right := width - layout.box.x - layout.box.w
		row := left + layout.rows[y-layout.box.y]
		if right > 0 {
			row += m.render(m.styles.Scrim, strings.Repeat("░", right))
		}
		out[y] = row
	}
	return strings.Join(out, "\n")
}

// handleModalClick closes the modal for clicks on the scrim or the close
// control. Clicks inside the box are ignored.
func (m *Model) handleModalClick(x, y int) {
	layout, ok := m.layoutModal()
	if !ok {
		return
	}
	if layout.close.contains(x, y) {
		m.closeModal("control")
		return
	}
	if layout.box.contains(x, y) {
		return
	}
	m.closeModal("scrim")
}

func wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	return strings.Split(ansi.Wordwrap(text, width, ""), "\n")
}
