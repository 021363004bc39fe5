package feed

// Record is a single entry of the updates catalog. Records are treated as
// immutable once loaded; helpers in this package only ever hand out copies.
type Record struct {
	Title   string   `json:"title" yaml:"title"`
	Summary string   `json:"summary" yaml:"summary"`
	Date    string   `json:"date" yaml:"date"`
	Tags    []string `json:"tags" yaml:"tags"`
	About   string   `json:"about,omitempty" yaml:"about,omitempty"`
	Image   string   `json:"image,omitempty" yaml:"image,omitempty"`
	Details string   `json:"details,omitempty" yaml:"details,omitempty"`
}

// HasTag reports whether tag is one of the record's labels. The comparison is
// exact and case-sensitive.
func (r Record) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with r.
func (r Record) Clone() Record {
	dup := r
	if r.Tags != nil {
		dup.Tags = append([]string(nil), r.Tags...)
	}
	return dup
}

// CloneRecords deep-copies the provided records.
func CloneRecords(records []Record) []Record {
	dup := make([]Record, len(records))
	for i, r := range records {
		dup[i] = r.Clone()
	}
	return dup
}

// Vocabulary lists every tag used by records in first-seen order.
func Vocabulary(records []Record) []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0, len(records))
	for _, r := range records {
		for _, t := range r.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	return tags
}
