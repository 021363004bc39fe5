package state

import "unicode"

// Input is a single-line editable buffer with a rune cursor.
type Input struct {
	Value  string
	Cursor int
}

// Set replaces the value and places the cursor, clamped to the value.
func (in *Input) Set(value string, cursor int) {
	in.Value = value
	n := len([]rune(value))
	if cursor < 0 {
		cursor = 0
	}
	if cursor > n {
		cursor = n
	}
	in.Cursor = cursor
}

// Pos returns the rune offset of the cursor.
func (in *Input) Pos() int {
	runes := []rune(in.Value)
	if in.Cursor < 0 {
		return 0
	}
	if in.Cursor > len(runes) {
		return len(runes)
	}
	return in.Cursor
}

// Insert adds text at the cursor.
func (in *Input) Insert(text string) bool {
	insert := []rune(text)
	if len(insert) == 0 {
		return false
	}
	runes := []rune(in.Value)
	pos := in.Pos()
	updated := make([]rune, 0, len(runes)+len(insert))
	updated = append(updated, runes[:pos]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[pos:]...)
	in.Set(string(updated), pos+len(insert))
	return true
}

// DeleteRuneBackward removes the rune before the cursor.
func (in *Input) DeleteRuneBackward() bool {
	runes := []rune(in.Value)
	pos := in.Pos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	updated := append(runes[:pos-1], runes[pos:]...)
	in.Set(string(updated), pos-1)
	return true
}

// DeleteWordBackward removes the word preceding the cursor.
func (in *Input) DeleteWordBackward() bool {
	runes := []rune(in.Value)
	pos := in.Pos()
	if pos == 0 || len(runes) == 0 {
		return false
	}
	i := wordStart(runes, pos)
	updated := append(runes[:i], runes[pos:]...)
	in.Set(string(updated), i)
	return true
}

// Clear empties the buffer.
func (in *Input) Clear() bool {
	if in.Value == "" {
		return false
	}
	in.Set("", 0)
	return true
}

// MoveStart moves the cursor to the start.
func (in *Input) MoveStart() bool {
	if in.Pos() == 0 {
		return false
	}
	in.Cursor = 0
	return true
}

// MoveEnd moves the cursor to the end.
func (in *Input) MoveEnd() bool {
	end := len([]rune(in.Value))
	if in.Pos() == end {
		return false
	}
	in.Cursor = end
	return true
}

// MoveWordBackward moves the cursor one word backward.
func (in *Input) MoveWordBackward() bool {
	runes := []rune(in.Value)
	pos := in.Pos()
	if pos == 0 {
		return false
	}
	i := wordStart(runes, pos)
	if i == pos {
		return false
	}
	in.Cursor = i
	return true
}

// MoveWordForward moves the cursor one word forward.
func (in *Input) MoveWordForward() bool {
	runes := []rune(in.Value)
	pos := in.Pos()
	if pos >= len(runes) {
		return false
	}
	i := pos
	for i < len(runes) && !unicode.IsSpace(runes[i]) {
		i++
	}
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	in.Cursor = i
	return i != pos
}

// MoveRuneBackward moves the cursor one rune backward.
func (in *Input) MoveRuneBackward() bool {
	if in.Pos() == 0 {
		return false
	}
	in.Cursor = in.Pos() - 1
	return true
}

// MoveRuneForward moves the cursor one rune forward.
func (in *Input) MoveRuneForward() bool {
	pos := in.Pos()
	if pos >= len([]rune(in.Value)) {
		return false
	}
	in.Cursor = pos + 1
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}
