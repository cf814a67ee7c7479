package cmd

import (
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"devfolio/internal/adapters/watch"
	"devfolio/internal/domain"
)

var indexWatch bool

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Synchronise the content index",
	Long: `Scan the content directory and report what changed.

With --index the SQLite cache is updated so later loads only reparse
modified files. With --watch the command keeps running and resyncs
whenever a Markdown file changes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		c := GetContent()
		printStats(out, c.Stats, c.Store.Len())

		if !indexWatch {
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		w, err := watch.New(cfg.ContentDir, watch.WithLogger(logger))
		if err != nil {
			return err
		}
		go func() {
			if err := w.Run(ctx); err != nil && ctx.Err() == nil {
				logger.Error("watcher stopped", zap.Error(err))
			}
		}()

		fmt.Fprintf(out, "Watching %s (ctrl+c to stop)\n", cfg.ContentDir)
		for change := range w.Changes() {
			logger.Info("content changed", zap.Strings("paths", change.Paths))
			if err := c.Sync(ctx); err != nil {
				logger.Error("resync failed", zap.Error(err))
				continue
			}
			printStats(out, c.Stats, c.Store.Len())
		}
		return nil
	},
}

func printStats(out io.Writer, stats *domain.SyncStats, documents int) {
	fmt.Fprintf(out, "%d documents (%d scanned, %d skipped)", documents, stats.Scanned, stats.Skipped)
	if cfg.Index {
		fmt.Fprintf(out, " index: +%d ~%d -%d =%d", stats.Added, stats.Updated, stats.Deleted, stats.Unchanged)
	}
	fmt.Fprintf(out, " in %s\n", stats.Duration.Round(time.Microsecond))
}

func init() {
	indexCmd.Flags().BoolVar(&indexWatch, "watch", false, "resync when content changes")
	rootCmd.AddCommand(indexCmd)
}
