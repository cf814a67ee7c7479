package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"devfolio/internal/bootstrap"
	"devfolio/internal/config"
	"devfolio/internal/logging"
)

var (
	cfgFile string
	v       = viper.New()
	cfg     *config.Config
	logger  = zap.NewNop()
	content *bootstrap.Content
)

var rootCmd = &cobra.Command{
	Use:   "devfolio-cli",
	Short: "CLI for a devfolio content directory",
	Long: `devfolio-cli inspects the Markdown content behind the devfolio shell.

It provides commands to print the explorer tree, list, show and search
documents, export them as HTML, maintain the SQLite index and run terminal
commands non-interactively.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		if cfg, err = config.Load(v, cfgFile); err != nil {
			return err
		}
		if logger, err = logging.New(cfg.LogLevel, cfg.LogFile); err != nil {
			return err
		}
		content, err = bootstrap.Open(cmd.Context(), cfg, logger)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if content != nil {
			content.Close()
		}
		_ = logger.Sync()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	config.Setup(v)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/devfolio/config.yaml)")
	rootCmd.PersistentFlags().StringP("content", "c", config.DefaultContentDir, "path to the content directory")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("index", false, "use the SQLite index cache")
	_ = v.BindPFlag(config.KeyContentDir, rootCmd.PersistentFlags().Lookup("content"))
	_ = v.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag(config.KeyIndex, rootCmd.PersistentFlags().Lookup("index"))
}

// GetContent returns the loaded content
func GetContent() *bootstrap.Content {
	return content
}
