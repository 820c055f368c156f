package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/riskibarqy/league-matches/internal/app"
	"github.com/riskibarqy/league-matches/internal/config"
	"github.com/riskibarqy/league-matches/internal/observability"
	"github.com/riskibarqy/league-matches/internal/platform/logging"
)

// Serves the league tools over stdio. Stdout belongs to the protocol, so
// logs go to stderr.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.New(logging.Options{
		Level:       cfg.LogLevel,
		Format:      logging.FormatJSON,
		Output:      os.Stderr,
		ServiceName: cfg.ServiceName,
		Environment: cfg.AppEnv,
	})
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	// pprof would bind a port next to a stdio process; keep it off here.
	cfg.PprofEnabled = false
	telemetry, err := observability.Setup(cfg, logger)
	if err != nil {
		logger.Error("init observability", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := app.NewServices(cfg, logger).MCPServer(cfg, logger)
	logger.Info("mcp stdio server starting", "manifest", cfg.ManifestPath, "lookup_mode", cfg.LookupMode)
	runErr := server.Run(ctx, &mcp.StdioTransport{})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := telemetry.Shutdown(shutdownCtx, cfg.ShutdownTimeout); err != nil {
		logger.Error("observability shutdown failed", "error", err)
	}

	if runErr != nil && ctx.Err() == nil {
		logger.Error("mcp server failed", "error", runErr)
		_ = logger.Sync()
		os.Exit(1)
	}
}
