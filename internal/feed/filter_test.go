package feed

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleRecords() []Record {
	return []Record{
		{Title: "Open multimodal model hits new benchmark", Summary: "A compact multimodal transformer surpasses prior open baselines on reasoning tasks.", Date: "2025-09-18", Tags: []string{"Models", "Research"}},
		{Title: "Agent frameworks get workflow graphs", Summary: "Visual DAG builders arrive for orchestrating tool-using LLM agents with retries and guards.", Date: "2025-09-16", Tags: []string{"Tools", "Product"}},
		{Title: "Policy: AI transparency rules drafted", Summary: "Draft policy calls for eval reporting and safety disclosures for high-risk models.", Date: "2025-09-14", Tags: []string{"Policy"}},
		{Title: "Vector DB adds hybrid search", Summary: "Combines dense and sparse retrieval with auto-weighting for better recall.", Date: "2025-09-12", Tags: []string{"Tools"}},
		{Title: "Research roundup: toolformer variants", Summary: "Self-annotation for API calls boosts math and coding accuracy.", Date: "2025-09-10", Tags: []string{"Research"}},
	}
}

func titles(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Title
	}
	return out
}

func TestFilterEmptyStateReturnsCatalog(t *testing.T) {
	records := sampleRecords()
	got := Filter(records, FilterState{})
	if diff := cmp.Diff(records, got); diff != "" {
		t.Fatalf("expected catalog unchanged (-want +got):\n%s", diff)
	}
}

func TestFilterByTagResearch(t *testing.T) {
	got := Filter(sampleRecords(), FilterState{Tag: "Research"})
	want := []string{
		"Open multimodal model hits new benchmark",
		"Research roundup: toolformer variants",
	}
	if diff := cmp.Diff(want, titles(got)); diff != "" {
		t.Fatalf("unexpected research records (-want +got):\n%s", diff)
	}
	for _, r := range got {
		if !r.HasTag("Research") {
			t.Fatalf("expected Research tag on %q", r.Title)
		}
	}
}

func TestFilterQueryIsCaseInsensitive(t *testing.T) {
	for _, q := range []string{"agent", "AGENT", "  Agent  "} {
		got := Filter(sampleRecords(), FilterState{Query: q})
		if len(got) != 1 || got[0].Title != "Agent frameworks get workflow graphs" {
			t.Fatalf("query %q: expected only the agent frameworks record, got %v", q, titles(got))
		}
	}
}

func TestFilterQueryMatchesSummary(t *testing.T) {
	got := Filter(sampleRecords(), FilterState{Query: "hybrid"})
	if len(got) != 1 || got[0].Title != "Vector DB adds hybrid search" {
		t.Fatalf("expected title match, got %v", titles(got))
	}
	got = Filter(sampleRecords(), FilterState{Query: "sparse retrieval"})
	if len(got) != 1 || got[0].Title != "Vector DB adds hybrid search" {
		t.Fatalf("expected summary match, got %v", titles(got))
	}
}

func TestFilterTagIsCaseSensitive(t *testing.T) {
	got := Filter(sampleRecords(), FilterState{Tag: "research"})
	if len(got) != 0 {
		t.Fatalf("expected no matches for lower-case tag, got %v", titles(got))
	}
}

func TestFilterCombinesConditions(t *testing.T) {
	got := Filter(sampleRecords(), FilterState{Query: "toolformer", Tag: "Research"})
	if len(got) != 1 || got[0].Title != "Research roundup: toolformer variants" {
		t.Fatalf("expected single combined match, got %v", titles(got))
	}
	got = Filter(sampleRecords(), FilterState{Query: "toolformer", Tag: "Tools"})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", got)
	}
}

func TestFilterPreservesOrderAndSubset(t *testing.T) {
	records := sampleRecords()
	states := []FilterState{
		{Query: "a"},
		{Query: "model"},
		{Tag: "Tools"},
		{Query: "for", Tag: "Tools"},
		{Query: "zzz"},
	}
	for _, st := range states {
		got := Filter(records, st)
		last := -1
		for _, r := range got {
			idx := -1
			for i, src := range records {
				if cmp.Equal(src, r) {
					idx = i
					break
				}
			}
			if idx < 0 {
				t.Fatalf("state %+v: record %q not from source", st, r.Title)
			}
			if idx <= last {
				t.Fatalf("state %+v: order not preserved at %q", st, r.Title)
			}
			last = idx
			if !Matches(r, st) {
				t.Fatalf("state %+v: record %q does not satisfy the filter", st, r.Title)
			}
		}
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	states := []FilterState{{}, {Query: "research"}, {Tag: "Tools"}, {Query: "agents", Tag: "Product"}}
	for _, st := range states {
		once := Filter(sampleRecords(), st)
		twice := Filter(once, st)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Fatalf("state %+v: filter not idempotent (-once +twice):\n%s", st, diff)
		}
	}
}

func TestFilterDoesNotAliasSource(t *testing.T) {
	records := sampleRecords()
	got := Filter(records, FilterState{})
	got[0].Tags[0] = "changed"
	if records[0].Tags[0] != "Models" {
		t.Fatalf("expected source tags untouched, got %q", records[0].Tags[0])
	}
}

func TestVocabularyFirstSeenOrder(t *testing.T) {
	got := Vocabulary(sampleRecords())
	want := []string{"Models", "Research", "Tools", "Product", "Policy"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected vocabulary (-want +got):\n%s", diff)
	}
}
