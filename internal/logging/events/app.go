package events

import "github.com/atomicstack/learnaz/internal/logging"

type AppTracer struct{}

type CatalogTracer struct{}

type StoreTracer struct{}

var (
	App     = AppTracer{}
	Catalog = CatalogTracer{}
	Store   = StoreTracer{}
)

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Print(records int) {
	logging.Trace("app.print", map[string]interface{}{"records": records})
}

func (CatalogTracer) Loaded(source string, records int) {
	logging.Trace("catalog.load", map[string]interface{}{"source": source, "records": records})
}

func (CatalogTracer) Reloaded(path string, records, revision int) {
	logging.Trace("catalog.reload", map[string]interface{}{"path": path, "records": records, "revision": revision})
}

func (CatalogTracer) ReloadFailed(path string, err error) {
	logging.Trace("catalog.reload.error", map[string]interface{}{"path": path, "error": errString(err)})
}

func (StoreTracer) Open(kind, location string) {
	logging.Trace("store.open", map[string]interface{}{"kind": kind, "location": location})
}

func (StoreTracer) Set(key string, size int) {
	logging.Trace("store.set", map[string]interface{}{"key": key, "bytes": size})
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
