package dispatcher

import (
	"github.com/atomicstack/learnaz/internal/backend"
	"github.com/atomicstack/learnaz/internal/logging/events"
	"github.com/atomicstack/learnaz/internal/state"
)

type Result struct {
	CatalogUpdated bool
	Err            error
}

// Dispatcher applies backend events to the catalog store.
type Dispatcher struct {
	catalog state.CatalogStore
}

func New(c state.CatalogStore) *Dispatcher {
	return &Dispatcher{catalog: c}
}

// Handle swaps in the snapshot carried by evt. Failed reloads keep the
// previous snapshot.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	if evt.Err != nil {
		events.Catalog.ReloadFailed(evt.Path, evt.Err)
		return Result{Err: evt.Err}
	}
	if d.catalog == nil {
		return Result{}
	}
	d.catalog.SetRecords(evt.Records)
	events.Catalog.Reloaded(evt.Path, len(evt.Records), d.catalog.Revision())
	return Result{CatalogUpdated: true}
}
