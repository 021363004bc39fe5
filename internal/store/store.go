package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/atomicstack/learnaz/internal/logging/events"
)

// Kind selects a Store backend.
type Kind string

const (
	KindDisk   Kind = "disk"
	KindSQLite Kind = "sqlite"
	KindMemory Kind = "memory"
)

// DefaultDir is where persistent backends keep their data.
const DefaultDir = "~/.local/share/learnaz"

// ErrUnknownKind is returned by Open for unsupported backends.
var ErrUnknownKind = errors.New("unknown store kind")

// Store is the local key-value store shared by the theme and prompt
// subsystems.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Close() error
}

// ParseKind validates a backend name.
func ParseKind(raw string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(raw))); k {
	case KindDisk, KindSQLite, KindMemory:
		return k, nil
	case "":
		return KindDisk, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, raw)
	}
}

// Open creates the requested backend rooted at dir. A "~" prefix in dir is
// expanded to the user's home directory.
func Open(kind Kind, dir string) (Store, error) {
	if strings.TrimSpace(dir) == "" {
		dir = DefaultDir
	}
	expanded, err := homedir.Expand(dir)
	if err != nil {
		return nil, fmt.Errorf("expand data dir: %w", err)
	}
	switch kind {
	case KindMemory:
		events.Store.Open(string(kind), "")
		return NewMemory(), nil
	case KindSQLite:
		path := filepath.Join(expanded, "learnaz.db")
		events.Store.Open(string(kind), path)
		return OpenSQLite(path)
	case KindDisk, "":
		path := filepath.Join(expanded, "kv")
		events.Store.Open(string(KindDisk), path)
		return OpenDisk(path), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
