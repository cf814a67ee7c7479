package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"devfolio/internal/adapters/desktop"
	"devfolio/internal/adapters/editor"
	"devfolio/internal/adapters/markdown"
	"devfolio/internal/adapters/tui"
	"devfolio/internal/application/terminal"
	"devfolio/internal/application/workspace"
	"devfolio/internal/bootstrap"
	"devfolio/internal/config"
	"devfolio/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgFile := flag.String("config", "", "config file (default $XDG_CONFIG_HOME/devfolio/config.yaml)")
	contentDir := flag.String("content", "", "content directory (overrides "+config.KeyContentDir+")")
	open := flag.String("open", "", "document to open next to the profile")
	flag.Parse()

	v := viper.New()
	config.Setup(v)
	if *contentDir != "" {
		v.Set(config.KeyContentDir, *contentDir)
	}
	if *open != "" {
		v.Set(config.KeyInitialDocument, *open)
	}
	cfg, err := config.Load(v, *cfgFile)
	if err != nil {
		return err
	}

	// The alternate screen owns the terminal, so logs only go to a file
	logFile := cfg.LogFile
	if logFile == "" {
		logFile = config.DefaultLogFile()
	}
	logger, err := logging.NewFileOnly(cfg.LogLevel, logFile)
	if err != nil {
		return err
	}
	defer logger.Sync()

	content, err := bootstrap.Open(context.Background(), cfg, logger)
	if err != nil {
		return err
	}
	defer content.Close()
	if err := content.RequireDocuments(); err != nil {
		return err
	}

	ws := workspace.New(content.Store,
		workspace.WithLogger(logger),
		workspace.WithProfileID(cfg.ProfileID),
		workspace.WithInitialDocument(cfg.InitialDocument),
	)
	engine := terminal.NewEngine(content.Store, ws,
		terminal.WithDelay(cfg.ImportDelay),
		terminal.WithLogger(logger),
	)

	app := tui.NewApp(ws,
		tui.WithEngine(engine),
		tui.WithRenderer(markdown.NewTermRenderer(cfg.Theme)),
		tui.WithEditor(editor.NewOpener()),
		tui.WithURLOpener(desktop.NewOpener()),
		tui.WithClipboard(desktop.Clipboard{}),
		tui.WithLogger(logger),
	)

	logger.Info("shell started", zap.String("session", ws.SessionID()))
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("shell failed: %w", err)
	}
	return nil
}
