package store

import (
	"encoding/hex"
	"errors"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"github.com/atomicstack/learnaz/internal/logging/events"
)

type disk struct {
	d *diskv.Diskv
}

// OpenDisk returns a Store keeping one file per key below basePath.
func OpenDisk(basePath string) Store {
	return &disk{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      64 * 1024,
	})}
}

func (s *disk) Get(key string) (string, bool, error) {
	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(val), true, nil
}

func (s *disk) Set(key, value string) error {
	if err := s.d.Write(key, []byte(value)); err != nil {
		return err
	}
	events.Store.Set(key, len(value))
	return nil
}

func (s *disk) Close() error {
	return nil
}

// Keys such as "learnaz:theme" contain characters that are awkward in file
// names, so they are hex encoded into a flat directory.
func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: hex.EncodeToString([]byte(key)),
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	raw, err := hex.DecodeString(pathKey.FileName)
	if err != nil {
		return pathKey.FileName
	}
	return string(raw)
}
