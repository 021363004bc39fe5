package feed

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ResolveTag maps user input onto one of the vocabulary tags. Empty input
// resolves to "" (all tags). Exact matches win, then case-insensitive ones,
// then the closest fuzzy match with ties going to the earlier tag.
func ResolveTag(input string, vocabulary []string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", true
	}
	for _, tag := range vocabulary {
		if tag == trimmed {
			return tag, true
		}
	}
	for _, tag := range vocabulary {
		if strings.EqualFold(tag, trimmed) {
			return tag, true
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, vocabulary)
	if len(ranks) == 0 {
		return "", false
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(vocabulary) {
		return "", false
	}
	return vocabulary[best.OriginalIndex], true
}

// NextTag cycles through "" followed by the vocabulary. A step of -1 walks
// backwards. Unknown current values restart the cycle.
func NextTag(current string, vocabulary []string, step int) string {
	options := make([]string, 0, len(vocabulary)+1)
	options = append(options, "")
	options = append(options, vocabulary...)
	idx := 0
	for i, opt := range options {
		if opt == current {
			idx = i
			break
		}
	}
	n := len(options)
	idx = ((idx+step)%n + n) % n
	return options[idx]
}
