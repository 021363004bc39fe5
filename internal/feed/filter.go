package feed

import "strings"

// FilterState holds the current free-text query and categorical tag. The zero
// value matches every record.
type FilterState struct {
	Query string
	Tag   string
}

// Filter returns the records matching both the query and the tag condition,
// preserving catalog order. The result is never nil.
func Filter(records []Record, st FilterState) []Record {
	query := strings.ToLower(strings.TrimSpace(st.Query))
	tag := strings.TrimSpace(st.Tag)
	filtered := make([]Record, 0, len(records))
	for _, r := range records {
		if matchesQuery(r, query) && matchesTag(r, tag) {
			filtered = append(filtered, r.Clone())
		}
	}
	return filtered
}

// Matches reports whether r passes the filter state.
func Matches(r Record, st FilterState) bool {
	return matchesQuery(r, strings.ToLower(strings.TrimSpace(st.Query))) &&
		matchesTag(r, strings.TrimSpace(st.Tag))
}

// matchesQuery expects query already trimmed and lower-cased.
func matchesQuery(r Record, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Title+" "+r.Summary), query)
}

func matchesTag(r Record, tag string) bool {
	if tag == "" {
		return true
	}
	return r.HasTag(tag)
}
