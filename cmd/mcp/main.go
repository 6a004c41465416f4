package main

import (
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/yanqian/cosmic-rhythm/internal/bootstrap"
	"github.com/yanqian/cosmic-rhythm/internal/infra/config"
	"github.com/yanqian/cosmic-rhythm/internal/interface/mcpserver"
	"github.com/yanqian/cosmic-rhythm/pkg/logger"
)

// stdout carries the protocol, so logs go to stderr.
func main() {
	appLogger := logger.NewTo(os.Stderr)
	cfg, err := config.Load()
	if err != nil {
		appLogger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	engines, err := bootstrap.NewEngines(cfg, appLogger)
	if err != nil {
		appLogger.Error("failed to build engines", "error", err)
		os.Exit(1)
	}
	defer engines.Close()

	tools := mcpserver.NewTools(engines.Biorhythm, engines.Maya, engines.Dress, appLogger)
	appLogger.Info("mcp server starting", "transport", "stdio", "version", mcpserver.Version)
	if err := server.ServeStdio(mcpserver.NewServer(tools)); err != nil {
		appLogger.Error("mcp server stopped with error", "error", err)
		engines.Close()
		os.Exit(1)
	}
}
