package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"devfolio/internal/application"
	"devfolio/internal/domain"
	"devfolio/internal/ports"
)

// Loader implements ports.ContentLoader over a directory of Markdown files
type Loader struct {
	root     string
	compiler ports.HTMLCompiler
	index    ports.DocumentIndex
	logger   *zap.Logger
}

// Ensure Loader implements ContentLoader
var _ ports.ContentLoader = (*Loader)(nil)

// LoaderOption configures a Loader
type LoaderOption func(*Loader)

// WithCompiler sets the compiler used for rich content
func WithCompiler(c ports.HTMLCompiler) LoaderOption {
	return func(l *Loader) {
		l.compiler = c
	}
}

// WithIndex enables the document cache
func WithIndex(idx ports.DocumentIndex) LoaderOption {
	return func(l *Loader) {
		l.index = idx
	}
}

// WithLogger sets the loader logger
func WithLogger(logger *zap.Logger) LoaderOption {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a loader for a content directory
func NewLoader(root string, opts ...LoaderOption) *Loader {
	// Expand ~ to home directory
	if strings.HasPrefix(root, "~") {
		home, _ := os.UserHomeDir()
		root = filepath.Join(home, root[1:])
	}
	l := &Loader{
		root:   root,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Root returns the content directory
func (l *Loader) Root() string {
	return l.root
}

// Load scans the content directory and returns the document store
func (l *Loader) Load(ctx context.Context) (*domain.Store, error) {
	store, _, err := l.Sync(ctx)
	return store, err
}

// Sync scans the content directory like Load and also reports what changed
// in the cache.
func (l *Loader) Sync(ctx context.Context) (*domain.Store, *domain.SyncStats, error) {
	start := time.Now()
	stats := &domain.SyncStats{}

	info, err := os.Stat(l.root)
	if err != nil {
		return nil, nil, &application.LoadError{Path: l.root, Err: err}
	}
	if !info.IsDir() {
		return nil, nil, &application.LoadError{Path: l.root, Err: errors.New("not a directory")}
	}

	var tx ports.IndexTx
	if l.index != nil {
		if tx, err = l.index.BeginTx(); err != nil {
			return nil, nil, fmt.Errorf("failed to begin index transaction: %w", err)
		}
		defer func() {
			if tx != nil {
				tx.Rollback()
			}
		}()
	}

	docs := make(map[string]domain.Document)
	sources := make(map[string]string) // key -> relative path
	seen := make(map[string]bool)

	err = filepath.WalkDir(l.root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			l.logger.Warn("skipping unreadable path", zap.String("path", path), zap.Error(walkErr))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != l.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !isContentFile(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(l.root, path)
		if err != nil {
			return nil
		}
		rel = filepath.ToSlash(rel)
		seen[rel] = true
		stats.Scanned++

		doc, ok := l.loadFile(path, rel, d, tx, stats)
		if !ok {
			return nil
		}

		if prev, dup := sources[doc.Key]; dup {
			l.logger.Warn("duplicate document id, later file wins",
				zap.String("id", doc.ID),
				zap.String("previous", prev),
				zap.String("current", rel),
			)
		}
		docs[doc.Key] = doc
		sources[doc.Key] = rel
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if tx != nil {
		if err := l.pruneIndex(tx, seen, stats); err != nil {
			return nil, nil, err
		}
		if err := tx.MarkSynced(time.Now()); err != nil {
			return nil, nil, fmt.Errorf("failed to record sync time: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return nil, nil, fmt.Errorf("failed to commit index: %w", err)
		}
		tx = nil
	}

	stats.Duration = time.Since(start)
	l.logger.Debug("content loaded",
		zap.String("root", l.root),
		zap.Int("documents", len(docs)),
		zap.Int("scanned", stats.Scanned),
		zap.Int("skipped", stats.Skipped),
		zap.Int("unchanged", stats.Unchanged),
		zap.Duration("took", stats.Duration),
	)
	return domain.NewStore(docs), stats, nil
}

// loadFile returns the document for one file, from the cache when the file
// is unchanged. Broken files are logged and skipped.
func (l *Loader) loadFile(path, rel string, d fs.DirEntry, tx ports.IndexTx, stats *domain.SyncStats) (domain.Document, bool) {
	info, err := d.Info()
	if err != nil {
		l.logger.Warn("skipping file", zap.String("path", rel), zap.Error(err))
		stats.Skipped++
		return domain.Document{}, false
	}
	mtime := info.ModTime().UnixNano()

	var cached *domain.IndexEntry
	if l.index != nil {
		cached, err = l.index.Get(rel)
		if err != nil {
			l.logger.Warn("index lookup failed", zap.String("path", rel), zap.Error(err))
			cached = nil
		}
		if cached != nil && cached.Mtime == mtime {
			stats.Unchanged++
			doc := cached.Document
			doc.SourcePath = path
			doc.ModTime = info.ModTime()
			return doc, true
		}
	}

	doc, err := l.parseFile(path, rel)
	if err != nil {
		l.logger.Warn("skipping malformed document", zap.Error(err))
		stats.Skipped++
		return domain.Document{}, false
	}
	doc.ModTime = info.ModTime()

	if tx != nil {
		if err := tx.Upsert(&domain.IndexEntry{SourcePath: rel, Mtime: mtime, Document: doc}); err != nil {
			l.logger.Warn("index upsert failed", zap.String("path", rel), zap.Error(err))
		} else if cached != nil {
			stats.Updated++
		} else {
			stats.Added++
		}
	}
	return doc, true
}

func (l *Loader) parseFile(path, rel string) (domain.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.Document{}, &application.LoadError{Path: rel, Err: err}
	}

	doc, err := ParseDocument(rel, raw)
	if err != nil {
		return domain.Document{}, &application.LoadError{Path: rel, Err: err}
	}
	doc.SourcePath = path

	if doc.Lang.IsRich() && l.compiler != nil {
		rendered, err := l.compiler.Compile(doc.Content)
		if err != nil {
			return domain.Document{}, &application.LoadError{Path: rel, Err: err}
		}
		doc.Rendered = rendered
	}
	return doc, nil
}

func (l *Loader) pruneIndex(tx ports.IndexTx, seen map[string]bool, stats *domain.SyncStats) error {
	paths, err := l.index.Paths()
	if err != nil {
		return fmt.Errorf("failed to list index: %w", err)
	}
	for _, p := range paths {
		if seen[p] {
			continue
		}
		if err := tx.Delete(p); err != nil {
			return fmt.Errorf("failed to delete %s from index: %w", p, err)
		}
		stats.Deleted++
	}
	return nil
}

func isContentFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".mdx"
}
