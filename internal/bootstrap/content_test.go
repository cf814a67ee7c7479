package bootstrap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"devfolio/internal/application"
	"devfolio/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestOpen_WithoutIndex(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "about.md"), "# About\n")
	writeFile(t, filepath.Join(dir, "works", "microbase.mdx"), "---\nicon: microscope\n---\n# Microbase\n")

	c, err := Open(context.Background(), &config.Config{ContentDir: dir}, nil)
	require.NoError(t, err)
	defer c.Close()

	require.Nil(t, c.Index)
	require.Equal(t, 2, c.Store.Len())
	doc, ok := c.Store.Get("/works/microbase")
	require.True(t, ok)
	require.NotEmpty(t, doc.Rendered, "mdx documents are precompiled")
	require.NoError(t, c.RequireDocuments())
}

func TestOpen_WithIndex(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "about.md"), "# About\n")

	c, err := Open(context.Background(), &config.Config{ContentDir: dir, Index: true}, nil)
	require.NoError(t, err)
	require.NotNil(t, c.Index)
	require.Equal(t, 1, c.Stats.Added)

	require.NoError(t, c.Sync(context.Background()))
	require.Equal(t, 1, c.Stats.Unchanged)
	require.NoError(t, c.Close())
}

func TestOpen_MissingDirectory(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{ContentDir: filepath.Join(t.TempDir(), "nope")}, nil)
	var loadErr *application.LoadError
	require.True(t, errors.As(err, &loadErr))
}

func TestRequireDocuments_Empty(t *testing.T) {
	c, err := Open(context.Background(), &config.Config{ContentDir: t.TempDir()}, nil)
	require.NoError(t, err)
	require.ErrorIs(t, c.RequireDocuments(), application.ErrEmptyContent)
}
