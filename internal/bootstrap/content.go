// Package bootstrap wires the content adapters shared by the binaries.
package bootstrap

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"devfolio/internal/adapters/filesystem"
	"devfolio/internal/adapters/markdown"
	"devfolio/internal/adapters/sqlite"
	"devfolio/internal/application"
	"devfolio/internal/config"
	"devfolio/internal/domain"
)

// Content is a loaded document store and the adapters behind it
type Content struct {
	Store  *domain.Store
	Stats  *domain.SyncStats
	Loader *filesystem.Loader
	Index  *sqlite.Index // nil unless the index cache is enabled
}

// Open loads the content directory named by cfg. With cfg.Index the SQLite
// cache is opened first and kept open until Close.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Content, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	opts := []filesystem.LoaderOption{
		filesystem.WithCompiler(markdown.NewCompiler()),
		filesystem.WithLogger(logger),
	}

	c := &Content{}
	if cfg.Index {
		idx := sqlite.NewIndex()
		if err := idx.Open(cfg.ContentDir); err != nil {
			return nil, fmt.Errorf("failed to open index: %w", err)
		}
		c.Index = idx
		opts = append(opts, filesystem.WithIndex(idx))
	}

	c.Loader = filesystem.NewLoader(cfg.ContentDir, opts...)
	if err := c.Sync(ctx); err != nil {
		c.Close()
		return nil, err
	}

	logger.Info("content loaded",
		zap.String("dir", c.Loader.Root()),
		zap.Int("documents", c.Store.Len()),
		zap.Bool("index", c.Index != nil),
	)
	return c, nil
}

// Sync reloads the store from disk
func (c *Content) Sync(ctx context.Context) error {
	store, stats, err := c.Loader.Sync(ctx)
	if err != nil {
		return err
	}
	c.Store = store
	c.Stats = stats
	return nil
}

// RequireDocuments returns ErrEmptyContent when nothing was loaded
func (c *Content) RequireDocuments() error {
	if c.Store.Len() == 0 {
		return fmt.Errorf("%s: %w", c.Loader.Root(), application.ErrEmptyContent)
	}
	return nil
}

// Close releases the index
func (c *Content) Close() error {
	if c.Index == nil {
		return nil
	}
	return c.Index.Close()
}
