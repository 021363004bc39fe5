package table

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"DATE", "TAGS", "TITLE"},
		{"Sep 18, 2025", "Models, Research", "Open multimodal model"},
		{"Sep 9, 2025", "Policy", "Rules"},
	}
	got := Format(rows, []Alignment{AlignRight, AlignLeft, AlignLeft})
	want := []string{
		"        DATE  TAGS              TITLE",
		"Sep 18, 2025  Models, Research  Open multimodal model",
		" Sep 9, 2025  Policy            Rules",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected table (-want +got):\n%s", diff)
	}
}

func TestFormatMeasuresCells(t *testing.T) {
	rows := [][]string{
		{"日本", "x"},
		{"ab", "y"},
		{"abcde"},
	}
	got := Format(rows, nil)
	want := []string{
		"日本   x",
		"ab     y",
		"abcde  ",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected table (-want +got):\n%s", diff)
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
