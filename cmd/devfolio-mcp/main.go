package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/viper"

	mcpadapter "devfolio/internal/adapters/mcp"
	"devfolio/internal/bootstrap"
	"devfolio/internal/config"
	"devfolio/internal/logging"
)

func main() {
	cfgFile := flag.String("config", "", "config file")
	contentFlag := flag.String("content", config.ContentDir(), "path to the content directory")
	flag.Parse()

	v := viper.New()
	config.Setup(v)
	v.Set(config.KeyContentDir, *contentFlag)
	cfg, err := config.Load(v, *cfgFile)
	if err != nil {
		log.Fatalf("devfolio-mcp: %v", err)
	}

	// stdout carries the protocol
	logger, err := logging.NewFileOnly(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("devfolio-mcp: %v", err)
	}
	defer logger.Sync()

	content, err := bootstrap.Open(context.Background(), cfg, logger)
	if err != nil {
		log.Fatalf("devfolio-mcp: %v", err)
	}
	defer content.Close()

	mcpServer := server.NewMCPServer(
		"devfolio-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, content.Store)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("devfolio-mcp: %v", err)
	}
}
