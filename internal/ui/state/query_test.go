package state

import "testing"

func TestInputInsertAtCursor(t *testing.T) {
	var in Input
	in.Insert("agnt")
	in.Cursor = 2
	if !in.Insert("e") {
		t.Fatalf("expected insert")
	}
	if in.Value != "agent" || in.Pos() != 3 {
		t.Fatalf("expected agent with cursor 3, got %q/%d", in.Value, in.Pos())
	}
	if in.Insert("") {
		t.Fatalf("expected empty insert to be ignored")
	}
}

func TestInputInsertKeepsSpaces(t *testing.T) {
	var in Input
	in.Insert("hybrid")
	in.Insert(" ")
	in.Insert("search")
	if in.Value != "hybrid search" {
		t.Fatalf("expected raw value with space, got %q", in.Value)
	}
}

func TestInputDeletion(t *testing.T) {
	var in Input
	in.Set("vector db adds", 14)
	if !in.DeleteWordBackward() || in.Value != "vector db " {
		t.Fatalf("unexpected value after word delete %q", in.Value)
	}
	if !in.DeleteRuneBackward() || in.Value != "vector db" {
		t.Fatalf("unexpected value after rune delete %q", in.Value)
	}
	in.Cursor = 0
	if in.DeleteRuneBackward() {
		t.Fatalf("expected no deletion at start")
	}
	if !in.Clear() || in.Value != "" || in.Pos() != 0 {
		t.Fatalf("expected cleared input, got %q/%d", in.Value, in.Pos())
	}
	if in.Clear() {
		t.Fatalf("expected clearing an empty input to report no change")
	}
}

func TestInputCursorMovement(t *testing.T) {
	var in Input
	in.Set("open model hits", 0)
	if !in.MoveWordForward() || in.Pos() != 5 {
		t.Fatalf("expected cursor 5, got %d", in.Pos())
	}
	if !in.MoveEnd() || in.Pos() != 15 {
		t.Fatalf("expected cursor at end, got %d", in.Pos())
	}
	if in.MoveRuneForward() {
		t.Fatalf("expected no movement past end")
	}
	if !in.MoveWordBackward() || in.Pos() != 11 {
		t.Fatalf("expected cursor 11, got %d", in.Pos())
	}
	if !in.MoveRuneBackward() || in.Pos() != 10 {
		t.Fatalf("expected cursor 10, got %d", in.Pos())
	}
	if !in.MoveStart() || in.MoveStart() {
		t.Fatalf("expected a single move to start")
	}
}
