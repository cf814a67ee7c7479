package filesystem

import (
	"slices"
	"strings"
	"time"

	"devfolio/internal/domain"
	"devfolio/internal/ports"
)

// memIndex is an in-memory ports.DocumentIndex for loader tests
type memIndex struct {
	entries  map[string]domain.IndexEntry
	lastSync time.Time
}

func newMemIndex() *memIndex {
	return &memIndex{entries: make(map[string]domain.IndexEntry)}
}

func (m *memIndex) Open(string) error { return nil }
func (m *memIndex) Close() error      { return nil }

func (m *memIndex) Get(path string) (*domain.IndexEntry, error) {
	e, ok := m.entries[path]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (m *memIndex) Paths() ([]string, error) {
	var paths []string
	for p := range m.entries {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths, nil
}

func (m *memIndex) Search(query string) ([]domain.IndexEntry, error) {
	var out []domain.IndexEntry
	for _, e := range m.entries {
		if strings.Contains(e.Document.Content, query) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memIndex) LastSync() (time.Time, error) { return m.lastSync, nil }

func (m *memIndex) Upsert(e *domain.IndexEntry) error {
	m.entries[e.SourcePath] = *e
	return nil
}

func (m *memIndex) Delete(path string) error {
	delete(m.entries, path)
	return nil
}

func (m *memIndex) Prune(keep []string) (int, error) {
	n := 0
	for p := range m.entries {
		if !slices.Contains(keep, p) {
			delete(m.entries, p)
			n++
		}
	}
	return n, nil
}

func (m *memIndex) BeginTx() (ports.IndexTx, error) {
	return &memTx{idx: m}, nil
}

// memTx applies writes directly; rollback after commit is a no-op
type memTx struct {
	idx *memIndex
}

func (t *memTx) Upsert(e *domain.IndexEntry) error { return t.idx.Upsert(e) }
func (t *memTx) Delete(path string) error          { return t.idx.Delete(path) }
func (t *memTx) MarkSynced(at time.Time) error {
	t.idx.lastSync = at
	return nil
}
func (t *memTx) Commit() error   { return nil }
func (t *memTx) Rollback() error { return nil }
