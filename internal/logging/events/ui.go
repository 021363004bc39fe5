package events

import "github.com/atomicstack/learnaz/internal/logging"

type FeedTracer struct{}

type ModalTracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

var (
	Feed    = FeedTracer{}
	Modal   = ModalTracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (FeedTracer) Render(query, tag string, cards int) {
	logging.Trace("feed.render", map[string]interface{}{"query": query, "tag": tag, "cards": cards})
}

func (FeedTracer) Cursor(cursor int) {
	logging.Trace("feed.cursor", map[string]interface{}{"cursor": cursor})
}

func (FeedTracer) Activate(title, via string) {
	logging.Trace("feed.activate", map[string]interface{}{"title": title, "via": via})
}

func (ModalTracer) Open(title string, seq uint64) {
	logging.Trace("modal.open", map[string]interface{}{"title": title, "seq": seq})
}

func (ModalTracer) Close(reason string) {
	logging.Trace("modal.close", map[string]interface{}{"reason": reason})
}

func (ModalTracer) ImageFallback(src string, seq uint64) {
	logging.Trace("modal.image.fallback", map[string]interface{}{"src": src, "seq": seq})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) Query(query string) {
	logging.Trace("filter.query", map[string]interface{}{"query": query})
}

func (FilterTracer) Tag(tag string) {
	logging.Trace("filter.tag", map[string]interface{}{"tag": tag})
}

func (FilterTracer) Cursor(pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"cursor": pos})
}

func (FilterTracer) Focus(focused bool) {
	logging.Trace("filter.focus", map[string]interface{}{"focused": focused})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}
