package theme

import (
	"github.com/atomicstack/learnaz/internal/logging"
	"github.com/atomicstack/learnaz/internal/logging/events"
)

// Name identifies a colour scheme.
type Name string

const (
	Dark  Name = "dark"
	Light Name = "light"

	// StorageKey is where the chosen theme is persisted.
	StorageKey = "learnaz:theme"
)

// KV is the slice of the local store the theme needs.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Controller owns the active theme and its persistence.
type Controller struct {
	name  Name
	store KV
}

// NewController restores the saved theme. Only the exact values "light" and
// "dark" are honoured; anything else leaves the fallback in place.
func NewController(store KV, fallback Name) *Controller {
	if fallback != Light {
		fallback = Dark
	}
	c := &Controller{name: fallback, store: store}
	if store == nil {
		return c
	}
	saved, ok, err := store.Get(StorageKey)
	if err != nil {
		logging.Error(err)
		return c
	}
	if ok && (saved == string(Light) || saved == string(Dark)) {
		c.name = Name(saved)
	}
	return c
}

// Name returns the active theme.
func (c *Controller) Name() Name {
	return c.name
}

// Styles returns the style set of the active theme.
func (c *Controller) Styles() *Styles {
	return For(c.name)
}

// Toggle flips between dark and light and persists the result.
func (c *Controller) Toggle() Name {
	next := Light
	if c.name == Light {
		next = Dark
	}
	c.name = next
	events.Theme.Toggle(string(next))
	if c.store != nil {
		if err := c.store.Set(StorageKey, string(next)); err != nil {
			logging.Error(err)
		}
	}
	return next
}

// Icon is the glyph of the toggle control.
func (c *Controller) Icon() string {
	if c.name != Light {
		return "🌗"
	}
	return "🌞"
}

// Label describes what the toggle control does.
func (c *Controller) Label() string {
	if c.name != Light {
		return "Switch to light theme"
	}
	return "Switch to dark theme"
}
