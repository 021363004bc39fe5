package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalogHasFiveRecords(t *testing.T) {
	records := Default()
	if len(records) != 5 {
		t.Fatalf("expected 5 records, got %d", len(records))
	}
	records[0].Title = "changed"
	if Default()[0].Title == "changed" {
		t.Fatalf("expected Default to return a copy")
	}
}

func TestParseYAMLList(t *testing.T) {
	data := []byte(`
- title: First
  summary: one
  date: "2025-01-02"
  tags: [A, B]
  image: first.png
- title: Second
  date: "2025-01-01"
`)
	records, err := Parse(".yaml", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Image != "first.png" || len(records[0].Tags) != 2 {
		t.Fatalf("unexpected first record %#v", records[0])
	}
	if records[1].Tags != nil {
		t.Fatalf("expected no tags on second record, got %v", records[1].Tags)
	}
}

func TestParseYAMLDocument(t *testing.T) {
	data := []byte("updates:\n  - title: Only\n    details: extra\n")
	records, err := Parse(".yml", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].Details != "extra" {
		t.Fatalf("unexpected records %#v", records)
	}
}

func TestParseJSONCWithComments(t *testing.T) {
	data := []byte(`{
  // hand maintained
  "updates": [
    {"title": "Commented", "tags": ["Tools"],},
  ],
}`)
	records, err := Parse(".jsonc", data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].Title != "Commented" {
		t.Fatalf("unexpected records %#v", records)
	}
}

func TestParseJSONList(t *testing.T) {
	records, err := Parse(".json", []byte(`[{"title":"A"},{"title":"B"}]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 || records[1].Title != "B" {
		t.Fatalf("unexpected records %#v", records)
	}
}

func TestParseRejectsMissingTitle(t *testing.T) {
	if _, err := Parse(".json", []byte(`[{"summary":"no title"}]`)); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestParseUnsupportedFormat(t *testing.T) {
	_, err := Parse(".toml", nil)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.yaml")
	if err := os.WriteFile(path, []byte("- title: From disk\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	records, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].Title != "From disk" {
		t.Fatalf("unexpected records %#v", records)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestSupportedExtension(t *testing.T) {
	for _, p := range []string{"a.yaml", "a.YML", "a.json", "a.jsonc"} {
		if !SupportedExtension(p) {
			t.Fatalf("expected %s supported", p)
		}
	}
	if SupportedExtension("a.txt") {
		t.Fatalf("expected .txt unsupported")
	}
}
