package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"devfolio/internal/domain"
	"devfolio/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "2"

// Index implements ports.DocumentIndex using SQLite
type Index struct {
	db         *sql.DB
	contentDir string
	dbPath     string
}

// Ensure Index implements DocumentIndex
var _ ports.DocumentIndex = (*Index)(nil)

// NewIndex creates a new SQLite index
func NewIndex() *Index {
	return &Index{}
}

// Open initializes the index for the given content directory
func (idx *Index) Open(contentDir string) error {
	// Expand ~ in path
	if len(contentDir) > 0 && contentDir[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		contentDir = filepath.Join(home, contentDir[1:])
	}
	if abs, err := filepath.Abs(contentDir); err == nil {
		contentDir = abs
	}

	idx.contentDir = contentDir
	idx.dbPath = DatabasePath(contentDir)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	// Pragmas in the DSN apply to every pooled connection
	db, err := sql.Open("sqlite", idx.dbPath+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA cache_size = -64000;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS documents (
			source_path TEXT PRIMARY KEY,
			mtime INTEGER NOT NULL,
			id TEXT NOT NULL,
			filename TEXT NOT NULL,
			path TEXT NOT NULL,
			icon TEXT NOT NULL,
			lang TEXT NOT NULL,
			module TEXT NOT NULL,
			content TEXT NOT NULL,
			rendered TEXT NOT NULL,
			thumbnail TEXT NOT NULL,
			tags TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_documents_id ON documents(id);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	// Cached rows from another schema or content root are useless
	if idx.NeedsFullRebuild() {
		if _, err := db.Exec(`DELETE FROM documents`); err != nil {
			db.Close()
			return fmt.Errorf("failed to reset index: %w", err)
		}
	}

	// Update metadata
	if err := idx.updateMeta(); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// Path returns the database file location
func (idx *Index) Path() string {
	return idx.dbPath
}

// NeedsFullRebuild returns true if the cached rows cannot be trusted
func (idx *Index) NeedsFullRebuild() bool {
	var version, contentHash string

	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version)
	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'content_path_hash'").Scan(&contentHash)

	return version != schemaVersion || contentHash != hashContentPath(idx.contentDir)
}

// DatabasePath returns the path for the SQLite database of a content directory
func DatabasePath(contentDir string) string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	// Hash content path for unique DB name
	hash := hashContentPath(contentDir)

	return filepath.Join(dataHome, "devfolio", hash+".db")
}

// hashContentPath returns a short hash of the content path
func hashContentPath(contentDir string) string {
	h := sha256.Sum256([]byte(contentDir))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}

// updateMeta updates the schema version and content path hash
func (idx *Index) updateMeta() error {
	tx, err := idx.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// One statement per Exec: the driver binds args per statement
	meta := [][2]string{
		{"schema_version", schemaVersion},
		{"content_path_hash", hashContentPath(idx.contentDir)},
	}
	for _, kv := range meta {
		if _, err := tx.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES (?, ?)`, kv[0], kv[1]); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Get retrieves an entry by source path. A missing entry is (nil, nil).
func (idx *Index) Get(sourcePath string) (*domain.IndexEntry, error) {
	row := idx.db.QueryRow(`SELECT `+entryColumns+` FROM documents WHERE source_path = ?`, sourcePath)

	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Paths returns every cached source path in order
func (idx *Index) Paths() ([]string, error) {
	rows, err := idx.db.Query(`SELECT source_path FROM documents ORDER BY source_path`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

// Search returns entries whose ID, filename or body contains the query
func (idx *Index) Search(query string) ([]domain.IndexEntry, error) {
	pattern := "%" + escapeLike(strings.TrimSpace(query)) + "%"

	rows, err := idx.db.Query(`
		SELECT `+entryColumns+`
		FROM documents
		WHERE id LIKE ? ESCAPE '\' OR filename LIKE ? ESCAPE '\' OR content LIKE ? ESCAPE '\'
		ORDER BY id
	`, pattern, pattern, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.IndexEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

// LastSync returns when the content was last synced, zero when never
func (idx *Index) LastSync() (time.Time, error) {
	var value string
	err := idx.db.QueryRow(`SELECT value FROM meta WHERE key = 'last_sync_time'`).Scan(&value)
	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	nanos, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("corrupt last sync time %q: %w", value, err)
	}
	return time.Unix(0, nanos), nil
}

// Upsert inserts or replaces a single entry
func (idx *Index) Upsert(entry *domain.IndexEntry) error {
	return upsertEntry(idx.db, entry)
}

// Delete removes an entry by source path
func (idx *Index) Delete(sourcePath string) error {
	_, err := idx.db.Exec(`DELETE FROM documents WHERE source_path = ?`, sourcePath)
	return err
}

// Prune deletes every entry whose source path is not in keep and reports how
// many were removed.
func (idx *Index) Prune(keep []string) (int, error) {
	paths, err := idx.Paths()
	if err != nil {
		return 0, err
	}
	keepSet := make(map[string]bool, len(keep))
	for _, p := range keep {
		keepSet[p] = true
	}

	tx, err := idx.BeginTx()
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, p := range paths {
		if keepSet[p] {
			continue
		}
		if err := tx.Delete(p); err != nil {
			tx.Rollback()
			return 0, err
		}
		removed++
	}
	return removed, tx.Commit()
}

// BeginTx starts a new transaction
func (idx *Index) BeginTx() (ports.IndexTx, error) {
	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	return &indexTx{tx: tx}, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
