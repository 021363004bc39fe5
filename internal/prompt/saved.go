package prompt

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	// StorageKey is where saved prompts are persisted.
	StorageKey = "learnaz:savedPrompts"

	// MaxSaved caps the saved list; the oldest entries are dropped.
	MaxSaved = 50
)

// Saved is a persisted prompt. TS is Unix milliseconds.
type Saved struct {
	ID   string `json:"id,omitempty"`
	Text string `json:"text"`
	TS   int64  `json:"ts"`
}

// KV is the slice of the local store the saved list needs.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// LoadSaved returns the saved prompts, newest first. Unreadable data is
// treated as an empty list.
func LoadSaved(kv KV) []Saved {
	if kv == nil {
		return nil
	}
	raw, ok, err := kv.Get(StorageKey)
	if err != nil || !ok || raw == "" {
		return nil
	}
	var saved []Saved
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		return nil
	}
	return saved
}

// Save prepends text to the saved list and trims it to MaxSaved. It returns
// the new list length.
func Save(kv KV, text string, now time.Time) (int, error) {
	saved := LoadSaved(kv)
	entry := Saved{ID: uuid.NewString(), Text: text, TS: now.UnixMilli()}
	saved = append([]Saved{entry}, saved...)
	if len(saved) > MaxSaved {
		saved = saved[:MaxSaved]
	}
	data, err := json.Marshal(saved)
	if err != nil {
		return 0, err
	}
	if err := kv.Set(StorageKey, string(data)); err != nil {
		return 0, err
	}
	return len(saved), nil
}
