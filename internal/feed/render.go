package feed

import (
	"strings"
	"time"
)

const (
	// EmptyPlaceholder is the only element rendered for an empty result.
	EmptyPlaceholder = "No updates found."

	// DateLayout is the human-readable form of a record date.
	DateLayout = "Jan 2, 2006"

	isoDateLayout = "2006-01-02"
)

// Card is the rendered projection of one record.
type Card struct {
	Record Record
	Title  string
	Chips  []string
	Body   string
}

// View is the complete rendered feed. Exactly one of Cards or Placeholder is
// populated.
type View struct {
	Cards       []Card
	Placeholder string
}

// Empty reports whether the view holds the placeholder instead of cards.
func (v View) Empty() bool {
	return len(v.Cards) == 0
}

// Render projects the filtered records into cards. An empty input yields the
// placeholder and nothing else. Render never inspects previous output, so
// rendering the same records twice produces equal views.
func Render(records []Record) View {
	if len(records) == 0 {
		return View{Placeholder: EmptyPlaceholder}
	}
	cards := make([]Card, len(records))
	for i, r := range records {
		cards[i] = Card{
			Record: r.Clone(),
			Title:  r.Title,
			Chips:  Chips(r),
			Body:   r.Summary,
		}
	}
	return View{Cards: cards}
}

// Chips returns the label chips for a record: the formatted date first, then
// each tag in record order.
func Chips(r Record) []string {
	chips := make([]string, 0, len(r.Tags)+1)
	chips = append(chips, FormatDate(r.Date))
	chips = append(chips, r.Tags...)
	return chips
}

// FormatDate renders an ISO-8601 calendar date using DateLayout. Values that
// do not parse are returned unchanged.
func FormatDate(iso string) string {
	trimmed := strings.TrimSpace(iso)
	t, err := time.Parse(isoDateLayout, trimmed)
	if err != nil {
		if t, err = time.Parse(time.RFC3339, trimmed); err != nil {
			return iso
		}
	}
	return t.Format(DateLayout)
}
