package state

// Motion is a cursor movement over the card list.
type Motion int

// Motions understood by List.Move. Page motions depend on the screen rows
// available to the cards.
const (
	MotionUp Motion = iota
	MotionDown
	MotionPageUp
	MotionPageDown
	MotionHome
	MotionEnd
)

// Move applies motion to the cursor. rows is the number of screen rows the
// cards may occupy; a negative value means the whole list fits. Pages move
// by as many whole cards as fit in rows. It reports whether the selection
// changed.
func (l *List) Move(motion Motion, rows int) bool {
	n := len(l.Cards)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	target := clampIndex(l.Cursor, n)
	switch motion {
	case MotionUp:
		target--
	case MotionDown:
		target++
	case MotionPageUp:
		target -= l.CardsPerScreen(rows)
	case MotionPageDown:
		target += l.CardsPerScreen(rows)
	case MotionHome:
		target = 0
	case MotionEnd:
		target = n - 1
	}
	l.Cursor = clampIndex(target, n)
	return l.Cursor != old
}

// CardsPerScreen is how many whole cards fit in rows, never less than one
// and never more than the list holds.
func (l *List) CardsPerScreen(rows int) int {
	n := len(l.Cards)
	if n == 0 {
		return 0
	}
	if rows < 0 {
		return n
	}
	per := l.RowsPerCard
	if per < 1 {
		per = 1
	}
	fit := rows / per
	if fit < 1 {
		fit = 1
	}
	if fit > n {
		fit = n
	}
	return fit
}

// Follow scrolls the viewport so the selected card is on screen.
func (l *List) Follow(rows int) {
	n := len(l.Cards)
	if n == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	l.Cursor = clampIndex(l.Cursor, n)
	visible := l.CardsPerScreen(rows)
	maxOffset := n - visible
	switch {
	case l.Cursor < l.ViewportOffset:
		l.ViewportOffset = l.Cursor
	case l.Cursor >= l.ViewportOffset+visible:
		l.ViewportOffset = l.Cursor - visible + 1
	}
	l.ViewportOffset = clampIndex(l.ViewportOffset, maxOffset+1)
}

// Window returns the half-open range of cards drawn in rows.
func (l *List) Window(rows int) (int, int) {
	n := len(l.Cards)
	visible := l.CardsPerScreen(rows)
	start := clampIndex(l.ViewportOffset, n-visible+1)
	return start, start + visible
}

func clampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
