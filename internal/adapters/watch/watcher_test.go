package watch

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func waitChange(t *testing.T, w *Watcher) Change {
	t.Helper()
	select {
	case c, ok := <-w.Changes():
		require.True(t, ok, "changes channel closed")
		return c
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change")
		return Change{}
	}
}

func TestNew_WatchesTreeSkippingHidden(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "works", "deep"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0755))

	w, err := New(root)
	require.NoError(t, err)
	defer w.fsWatcher.Close()

	dirs := w.Directories()
	require.Contains(t, dirs, root)
	require.Contains(t, dirs, filepath.Join(root, "works", "deep"))
	require.NotContains(t, dirs, filepath.Join(root, ".git"))
}

func TestWatcher_DebouncesContentWrites(t *testing.T) {
	root := t.TempDir()
	w, err := New(root, WithDebounce(50*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	target := filepath.Join(root, "about.md")
	require.NoError(t, os.WriteFile(target, []byte("one"), 0644))
	require.NoError(t, os.WriteFile(target, []byte("two"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0644))

	change := waitChange(t, w)
	require.Equal(t, []string{target}, change.Paths)

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	_, ok := <-w.Changes()
	require.False(t, ok, "changes should be closed after Run returns")
}

func TestWatcher_FollowsNewDirectories(t *testing.T) {
	root := t.TempDir()
	w, err := New(root, WithDebounce(50*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	sub := filepath.Join(root, "research")
	require.NoError(t, os.Mkdir(sub, 0755))
	change := waitChange(t, w)
	require.Contains(t, change.Paths, sub)

	target := filepath.Join(sub, "paper.md")
	require.NoError(t, os.WriteFile(target, []byte("# Paper"), 0644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-w.Changes():
			if slices.Contains(c.Paths, target) {
				return
			}
		case <-deadline:
			t.Fatal("write in new directory not reported")
		}
	}
}
