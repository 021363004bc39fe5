package state

import "github.com/atomicstack/learnaz/internal/feed"

// List holds the rendered feed cards together with the cursor and viewport.
// Every card occupies RowsPerCard screen rows.
type List struct {
	Cards          []feed.Card
	Placeholder    string
	Cursor         int
	ViewportOffset int
	RowsPerCard    int
}

// NewList returns an empty list whose cards are rowsPerCard rows tall.
func NewList(rowsPerCard int) *List {
	return &List{RowsPerCard: rowsPerCard}
}

// SetView replaces every card with the contents of view. The cursor follows
// the previously selected title when it survives the re-render.
func (l *List) SetView(view feed.View) {
	prevTitle := ""
	if card, ok := l.Current(); ok {
		prevTitle = card.Title
	}
	l.Cards = append([]feed.Card(nil), view.Cards...)
	l.Placeholder = view.Placeholder
	if len(l.Cards) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if prevTitle != "" {
		for i, card := range l.Cards {
			if card.Title == prevTitle {
				l.Cursor = i
				return
			}
		}
	}
	if l.Cursor >= len(l.Cards) {
		l.Cursor = len(l.Cards) - 1
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.ViewportOffset > len(l.Cards)-1 {
		l.ViewportOffset = 0
	}
}

// Current returns the card under the cursor.
func (l *List) Current() (feed.Card, bool) {
	if l == nil || l.Cursor < 0 || l.Cursor >= len(l.Cards) {
		return feed.Card{}, false
	}
	return l.Cards[l.Cursor], true
}

// IndexOf returns the position of the card with the given title.
func (l *List) IndexOf(title string) int {
	for i, card := range l.Cards {
		if card.Title == title {
			return i
		}
	}
	return -1
}
