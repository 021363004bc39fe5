package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header            *lipgloss.Style
	NavLink           *lipgloss.Style
	NavActive         *lipgloss.Style
	Stat              *lipgloss.Style
	StatLabel         *lipgloss.Style
	Card              *lipgloss.Style
	CardTitle         *lipgloss.Style
	CardBody          *lipgloss.Style
	SelectedCard      *lipgloss.Style
	CardIndicator     *lipgloss.Style
	SelectedIndicator *lipgloss.Style
	Chip              *lipgloss.Style
	Placeholder       *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Toast             *lipgloss.Style
	Footer            *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	Cursor            *lipgloss.Style
	ModalBorder       *lipgloss.Style
	ModalTitle        *lipgloss.Style
	ModalBody         *lipgloss.Style
	ModalMuted        *lipgloss.Style
	Scrim             *lipgloss.Style
	Label             *lipgloss.Style
}

type palette struct {
	text, muted, faint, accent, accentText, surface, danger, success string
}

var (
	darkPalette = palette{
		text: "252", muted: "245", faint: "240", accent: "33",
		accentText: "0", surface: "236", danger: "196", success: "34",
	}
	lightPalette = palette{
		text: "235", muted: "241", faint: "250", accent: "25",
		accentText: "255", surface: "254", danger: "160", success: "28",
	}

	darkStyles  = build(darkPalette)
	lightStyles = build(lightPalette)
)

func build(p palette) Styles {
	c := func(code string) lipgloss.Color { return lipgloss.Color(code) }
	return Styles{
		Header:    ptr(lipgloss.NewStyle().Foreground(c(p.text)).Bold(true)),
		NavLink:   ptr(lipgloss.NewStyle().Foreground(c(p.muted))),
		NavActive: ptr(lipgloss.NewStyle().Foreground(c(p.accent)).Bold(true).Underline(true)),
		Stat:      ptr(lipgloss.NewStyle().Foreground(c(p.accent)).Bold(true)),
		StatLabel: ptr(lipgloss.NewStyle().Foreground(c(p.muted))),
		Card:      ptr(lipgloss.NewStyle().Foreground(c(p.text))),
		CardTitle: ptr(lipgloss.NewStyle().Foreground(c(p.text)).Bold(true)),
		CardBody:  ptr(lipgloss.NewStyle().Foreground(c(p.muted))),
		SelectedCard: ptr(
			lipgloss.NewStyle().Foreground(c(p.text)).Background(c(p.surface)).Bold(true),
		),
		CardIndicator:     ptr(lipgloss.NewStyle().Foreground(c(p.faint))),
		SelectedIndicator: ptr(lipgloss.NewStyle().Foreground(c(p.accent)).Background(c(p.surface))),
		Chip:              ptr(lipgloss.NewStyle().Foreground(c(p.muted)).Background(c(p.surface)).Padding(0, 1)),
		Placeholder:       ptr(lipgloss.NewStyle().Foreground(c(p.muted)).Italic(true)),
		Error:             ptr(lipgloss.NewStyle().Foreground(c(p.danger)).Bold(true)),
		Info:              ptr(lipgloss.NewStyle().Foreground(c(p.muted))),
		Toast:             ptr(lipgloss.NewStyle().Foreground(c(p.accentText)).Background(c(p.accent)).Padding(0, 1)),
		Footer:            ptr(lipgloss.NewStyle().Foreground(c(p.faint))),
		Filter:            ptr(lipgloss.NewStyle().Foreground(c(p.text))),
		FilterPrompt:      ptr(lipgloss.NewStyle().Foreground(c(p.success)).Bold(true)),
		FilterPlaceholder: ptr(lipgloss.NewStyle().Foreground(c(p.faint))),
		Cursor:            ptr(lipgloss.NewStyle().Foreground(c(p.accentText)).Background(c(p.accent)).Blink(true)),
		ModalBorder:       ptr(lipgloss.NewStyle().Foreground(c(p.faint))),
		ModalTitle:        ptr(lipgloss.NewStyle().Foreground(c(p.text)).Bold(true)),
		ModalBody:         ptr(lipgloss.NewStyle().Foreground(c(p.text))),
		ModalMuted:        ptr(lipgloss.NewStyle().Foreground(c(p.muted)).Italic(true)),
		Scrim:             ptr(lipgloss.NewStyle().Foreground(c(p.faint)).Faint(true)),
		Label:             ptr(lipgloss.NewStyle().Foreground(c(p.muted)).Bold(true)),
	}
}

// Default exposes the standard (dark) style set.
func Default() *Styles {
	return &darkStyles
}

// For returns the style set for a theme.
func For(name Name) *Styles {
	if name == Light {
		return &lightStyles
	}
	return &darkStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
