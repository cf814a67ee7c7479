package sqlite

import (
	"database/sql"
	"strconv"
	"time"

	"devfolio/internal/domain"
	"devfolio/internal/ports"
)

// indexTx implements ports.IndexTx
type indexTx struct {
	tx *sql.Tx
}

// Ensure indexTx implements IndexTx
var _ ports.IndexTx = (*indexTx)(nil)

// Upsert inserts or updates an entry
func (t *indexTx) Upsert(entry *domain.IndexEntry) error {
	return upsertEntry(t.tx, entry)
}

// Delete removes an entry by source path
func (t *indexTx) Delete(sourcePath string) error {
	_, err := t.tx.Exec(`DELETE FROM documents WHERE source_path = ?`, sourcePath)
	return err
}

// MarkSynced records the sync time
func (t *indexTx) MarkSynced(at time.Time) error {
	_, err := t.tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('last_sync_time', ?)`,
		strconv.FormatInt(at.UnixNano(), 10))
	return err
}

// Commit commits the transaction
func (t *indexTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *indexTx) Rollback() error {
	return t.tx.Rollback()
}
