package sqlite

import (
	"database/sql"
	"strings"

	"devfolio/internal/domain"
)

// tagSeparator joins tags in a single column; tags never span lines
const tagSeparator = "\n"

const entryColumns = `source_path, mtime, id, filename, path, icon, lang, module, content, rendered, thumbnail, tags`

// execer is satisfied by both *sql.DB and *sql.Tx
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// scanner is satisfied by both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func upsertEntry(db execer, entry *domain.IndexEntry) error {
	doc := entry.Document
	_, err := db.Exec(`
		INSERT OR REPLACE INTO documents (`+entryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		entry.SourcePath,
		entry.Mtime,
		doc.ID,
		doc.Filename,
		doc.Path,
		doc.Icon.String(),
		doc.Lang.String(),
		doc.Module,
		doc.Content,
		doc.Rendered,
		doc.Thumbnail,
		strings.Join(doc.Tags, tagSeparator),
	)
	return err
}

func scanEntry(row scanner) (*domain.IndexEntry, error) {
	var (
		entry      domain.IndexEntry
		icon, lang string
		tags       string
	)
	doc := &entry.Document

	err := row.Scan(
		&entry.SourcePath,
		&entry.Mtime,
		&doc.ID,
		&doc.Filename,
		&doc.Path,
		&icon,
		&lang,
		&doc.Module,
		&doc.Content,
		&doc.Rendered,
		&doc.Thumbnail,
		&tags,
	)
	if err != nil {
		return nil, err
	}

	doc.Key = domain.KeyFor(doc.ID)
	doc.Icon = domain.ParseIcon(icon)
	doc.Lang = domain.ParseLang(lang)
	if tags != "" {
		doc.Tags = strings.Split(tags, tagSeparator)
	}
	return &entry, nil
}
