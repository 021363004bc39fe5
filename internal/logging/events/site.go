package events

import "github.com/atomicstack/learnaz/internal/logging"

type ThemeTracer struct{}

type NavTracer struct{}

type PromptTracer struct{}

type NewsletterTracer struct{}

var (
	Theme      = ThemeTracer{}
	Nav        = NavTracer{}
	Prompt     = PromptTracer{}
	Newsletter = NewsletterTracer{}
)

func (ThemeTracer) Toggle(next string) {
	logging.Trace("theme.toggle", map[string]interface{}{"theme": next})
}

func (NavTracer) Toggle(expanded bool) {
	logging.Trace("nav.toggle", map[string]interface{}{"expanded": expanded})
}

func (NavTracer) Section(id string) {
	logging.Trace("nav.section", map[string]interface{}{"section": id})
}

func (PromptTracer) Template(name string) {
	logging.Trace("prompt.template", map[string]interface{}{"template": name})
}

func (PromptTracer) Compose(lines int) {
	logging.Trace("prompt.compose", map[string]interface{}{"lines": lines})
}

func (PromptTracer) Copy(err error) {
	logging.Trace("prompt.copy", map[string]interface{}{"error": errString(err)})
}

func (PromptTracer) Save(total int) {
	logging.Trace("prompt.save", map[string]interface{}{"total": total})
}

func (NewsletterTracer) Submit(valid bool) {
	logging.Trace("newsletter.submit", map[string]interface{}{"valid": valid})
}

func (NewsletterTracer) Subscribed() {
	logging.Trace("newsletter.subscribed", nil)
}
