package domain

import "time"

// IndexEntry is a parsed content file cached by the document index
type IndexEntry struct {
	SourcePath string // Relative path from the content root (primary key)
	Mtime      int64  // Unix nanoseconds, compared for incremental loads
	Document   Document
}

// SyncStats holds statistics from a sync operation
type SyncStats struct {
	Added     int
	Updated   int
	Unchanged int
	Deleted   int
	Skipped   int
	Scanned   int
	Duration  time.Duration
}
