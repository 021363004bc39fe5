package feed

// Source supplies the ordered catalog the adapter filters.
type Source interface {
	Records() []Record
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() []Record

// Records implements Source.
func (f SourceFunc) Records() []Record {
	if f == nil {
		return nil
	}
	return f()
}

// StaticSource serves a fixed catalog.
type StaticSource []Record

// Records implements Source.
func (s StaticSource) Records() []Record {
	return CloneRecords(s)
}

// Adapter owns the FilterState and runs a filter+render cycle each time one of
// its inputs changes. Every cycle reads the latest committed query and tag.
type Adapter struct {
	source   Source
	state    FilterState
	filtered []Record
	view     View
	rendered bool
}

// NewAdapter builds an adapter over src starting from initial. No cycle runs
// until Refresh or one of the handlers is called.
func NewAdapter(src Source, initial FilterState) *Adapter {
	return &Adapter{source: src, state: initial}
}

// HandleQueryInput stores the raw query value and re-renders.
func (a *Adapter) HandleQueryInput(raw string) View {
	a.state.Query = raw
	return a.Refresh()
}

// HandleTagChange stores the selected tag and re-renders.
func (a *Adapter) HandleTagChange(tag string) View {
	a.state.Tag = tag
	return a.Refresh()
}

// Refresh re-runs filter+render against the current source and state.
func (a *Adapter) Refresh() View {
	var records []Record
	if a.source != nil {
		records = a.source.Records()
	}
	a.filtered = Filter(records, a.state)
	a.view = Render(a.filtered)
	a.rendered = true
	return a.view
}

// State returns the committed filter values.
func (a *Adapter) State() FilterState {
	return a.state
}

// View returns the last rendered view and whether any cycle has run yet.
func (a *Adapter) View() (View, bool) {
	return a.view, a.rendered
}

// Filtered returns a copy of the last filtered sequence.
func (a *Adapter) Filtered() []Record {
	return CloneRecords(a.filtered)
}
