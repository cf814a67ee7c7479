package ports

import (
	"time"

	"devfolio/internal/domain"
)

// DocumentIndex caches parsed content files keyed by source path.
// It stores content only, never workspace state.
type DocumentIndex interface {
	// Lifecycle
	Open(contentDir string) error
	Close() error

	// Entry queries
	Get(sourcePath string) (*domain.IndexEntry, error)
	Paths() ([]string, error)
	Search(query string) ([]domain.IndexEntry, error)
	LastSync() (time.Time, error)

	// Single updates
	Upsert(entry *domain.IndexEntry) error
	Delete(sourcePath string) error
	Prune(keep []string) (int, error)

	// Batch updates (for a full content load)
	BeginTx() (IndexTx, error)
}

// IndexTx represents a transaction for atomic cache updates
type IndexTx interface {
	Upsert(entry *domain.IndexEntry) error
	Delete(sourcePath string) error
	MarkSynced(at time.Time) error

	// Transaction control
	Commit() error
	Rollback() error
}
