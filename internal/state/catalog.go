package state

import "github.com/atomicstack/learnaz/internal/feed"

// CatalogStore holds the current catalog snapshot. Snapshots are replaced
// wholesale; individual records are never edited.
type CatalogStore interface {
	Records() []feed.Record
	SetRecords([]feed.Record)
	Tags() []string
	Revision() int
}

type catalogStore struct {
	records  []feed.Record
	tags     []string
	revision int
}

// NewCatalogStore seeds a store with the initial snapshot.
func NewCatalogStore(records []feed.Record) CatalogStore {
	s := &catalogStore{}
	s.SetRecords(records)
	s.revision = 0
	return s
}

func (s *catalogStore) Records() []feed.Record {
	return feed.CloneRecords(s.records)
}

func (s *catalogStore) SetRecords(records []feed.Record) {
	s.records = feed.CloneRecords(records)
	s.tags = feed.Vocabulary(s.records)
	s.revision++
}

func (s *catalogStore) Tags() []string {
	return append([]string(nil), s.tags...)
}

func (s *catalogStore) Revision() int {
	return s.revision
}
