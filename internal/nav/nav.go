package nav

import "github.com/atomicstack/learnaz/internal/logging/events"

// Item represents a navigable section of the site.
type Item struct {
	ID    string
	Label string
}

const (
	SectionUpdates    = "updates"
	SectionPrompt     = "prompt"
	SectionNewsletter = "newsletter"
)

// CollapseWidth is the terminal width below which links hide behind the toggle.
const CollapseWidth = 72

// Sections returns the site sections in display order.
func Sections() []Item {
	return []Item{
		{ID: SectionUpdates, Label: "Updates"},
		{ID: SectionPrompt, Label: "Prompt Lab"},
		{ID: SectionNewsletter, Label: "Newsletter"},
	}
}

// Nav tracks the active section and the collapsed-menu toggle.
type Nav struct {
	items    []Item
	active   int
	expanded bool
}

// New starts on the first section with the menu collapsed.
func New() *Nav {
	return &Nav{items: Sections()}
}

// Items returns the sections.
func (n *Nav) Items() []Item {
	return append([]Item(nil), n.items...)
}

// Active returns the current section.
func (n *Nav) Active() Item {
	return n.items[n.active]
}

// Select activates the section with id. Unknown ids are ignored.
func (n *Nav) Select(id string) bool {
	for i, item := range n.items {
		if item.ID == id {
			changed := i != n.active
			n.active = i
			if changed {
				events.Nav.Section(id)
			}
			return changed
		}
	}
	return false
}

// Step moves the active section by delta, wrapping around.
func (n *Nav) Step(delta int) Item {
	count := len(n.items)
	n.active = ((n.active+delta)%count + count) % count
	events.Nav.Section(n.items[n.active].ID)
	return n.items[n.active]
}

// Toggle flips the collapsed menu open or closed and returns the new state.
func (n *Nav) Toggle() bool {
	n.expanded = !n.expanded
	events.Nav.Toggle(n.expanded)
	return n.expanded
}

// Expanded mirrors aria-expanded on the toggle control.
func (n *Nav) Expanded() bool {
	return n.expanded
}

// LinksVisible reports whether the section links are shown at width.
func (n *Nav) LinksVisible(width int) bool {
	if width <= 0 || width >= CollapseWidth {
		return true
	}
	return n.expanded
}
