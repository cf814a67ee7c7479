package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devfolio/internal/domain"
)

func openTestIndex(t *testing.T) (*Index, string) {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	contentDir := t.TempDir()

	idx := NewIndex()
	require.NoError(t, idx.Open(contentDir))
	t.Cleanup(func() { idx.Close() })
	return idx, contentDir
}

func entry(path, id, content string) *domain.IndexEntry {
	return &domain.IndexEntry{
		SourcePath: path,
		Mtime:      42,
		Document: domain.Document{
			ID:       id,
			Filename: filepath.Base(path),
			Path:     "docs > " + filepath.Base(path),
			Icon:     domain.IconBriefcase,
			Lang:     domain.LangMDX,
			Module:   "works",
			Content:  content,
			Rendered: "<p>" + content + "</p>",
			Tags:     []string{"go", "db"},
		},
	}
}

func TestIndex_OpenCreatesDatabaseUnderDataHome(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	idx := NewIndex()
	require.NoError(t, idx.Open(t.TempDir()))
	defer idx.Close()

	assert.Equal(t, filepath.Join(dataHome, "devfolio"), filepath.Dir(idx.Path()))
	assert.False(t, idx.NeedsFullRebuild())
}

func TestIndex_MetaStoresSchemaAndContentHash(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	contentDir := t.TempDir()

	idx := NewIndex()
	require.NoError(t, idx.Open(contentDir))
	defer idx.Close()

	var version, hash string
	require.NoError(t, idx.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version))
	require.NoError(t, idx.db.QueryRow("SELECT value FROM meta WHERE key = 'content_path_hash'").Scan(&hash))
	assert.Equal(t, schemaVersion, version)
	assert.Equal(t, hashContentPath(contentDir), hash)
}

func TestIndex_UpsertAndGet(t *testing.T) {
	idx, _ := openTestIndex(t)

	require.NoError(t, idx.Upsert(entry("works/microbase.mdx", "works/microbase", "An embedded database")))

	got, err := idx.Get("works/microbase.mdx")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, int64(42), got.Mtime)
	assert.Equal(t, "works/microbase", got.Document.ID)
	assert.Equal(t, "/works/microbase", got.Document.Key)
	assert.Equal(t, domain.IconBriefcase, got.Document.Icon)
	assert.Equal(t, domain.LangMDX, got.Document.Lang)
	assert.Equal(t, []string{"go", "db"}, got.Document.Tags)
	assert.Equal(t, "<p>An embedded database</p>", got.Document.Rendered)

	missing, err := idx.Get("nope.md")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestIndex_SearchAndPaths(t *testing.T) {
	idx, _ := openTestIndex(t)
	require.NoError(t, idx.Upsert(entry("b.md", "b", "storage engines")))
	require.NoError(t, idx.Upsert(entry("a.md", "a", "100% coverage")))

	paths, err := idx.Paths()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md", "b.md"}, paths)

	found, err := idx.Search("STORAGE")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "b", found[0].Document.ID)

	found, err = idx.Search("100%")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "a", found[0].Document.ID)
}

func TestIndex_DeleteAndPrune(t *testing.T) {
	idx, _ := openTestIndex(t)
	for _, p := range []string{"a.md", "b.md", "c.md"} {
		require.NoError(t, idx.Upsert(entry(p, p, "x")))
	}

	require.NoError(t, idx.Delete("a.md"))
	removed, err := idx.Prune([]string{"b.md"})
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	paths, err := idx.Paths()
	require.NoError(t, err)
	assert.Equal(t, []string{"b.md"}, paths)
}

func TestIndex_TxAndLastSync(t *testing.T) {
	idx, _ := openTestIndex(t)

	last, err := idx.LastSync()
	require.NoError(t, err)
	assert.True(t, last.IsZero())

	tx, err := idx.BeginTx()
	require.NoError(t, err)
	require.NoError(t, tx.Upsert(entry("a.md", "a", "x")))
	require.NoError(t, tx.Rollback())

	got, err := idx.Get("a.md")
	require.NoError(t, err)
	assert.Nil(t, got, "rolled back write must not persist")

	at := time.Unix(1700000000, 123)
	tx, err = idx.BeginTx()
	require.NoError(t, err)
	require.NoError(t, tx.Upsert(entry("a.md", "a", "x")))
	require.NoError(t, tx.MarkSynced(at))
	require.NoError(t, tx.Commit())

	last, err = idx.LastSync()
	require.NoError(t, err)
	assert.True(t, at.Equal(last))
}

func TestIndex_ReopenKeepsEntries(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	contentDir := t.TempDir()

	idx := NewIndex()
	require.NoError(t, idx.Open(contentDir))
	require.NoError(t, idx.Upsert(entry("a.md", "a", "x")))
	require.NoError(t, idx.Close())

	idx = NewIndex()
	require.NoError(t, idx.Open(contentDir))
	defer idx.Close()

	got, err := idx.Get("a.md")
	require.NoError(t, err)
	assert.NotNil(t, got)
}
