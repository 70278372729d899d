package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	corecfg "github.com/aevon-lab/sales-analytics/internal/core/config"
	"github.com/aevon-lab/sales-analytics/internal/ingestion"
	"github.com/aevon-lab/sales-analytics/internal/projection"
	"github.com/aevon-lab/sales-analytics/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", "salesd.yaml", "Path to configuration file")
	seedPath := flag.String("seed", "", "Import the given CSV into the store and exit")
	flag.Parse()

	// Local .env is optional; real environment variables win.
	_ = godotenv.Load()

	// 0. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// 1. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	slog.SetDefault(logger)
	slog.Info("Loaded config", "config", cfg)

	// 2. Initialize Storage (+ migrations for SQL stores)
	st, err := openStore(cfg.Database)
	if err != nil {
		slog.Error("Failed to initialize storage", "type", cfg.Database.Type, "error", err)
		os.Exit(1)
	}
	defer st.Close()

	// 3. Initialize Ingestion
	ingestionSvc := ingestion.NewService(st.store, cfg.Ingestion.MaxBodySizeMB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if *seedPath != "" {
		if _, err := ingestionSvc.ImportFile(ctx, *seedPath); err != nil {
			slog.Error("Seed import failed", "path", *seedPath, "error", err)
			os.Exit(1)
		}
		slog.Info("Seed import complete, exiting")
		return
	}

	if cfg.Ingestion.SeedFile != "" {
		if _, err := ingestionSvc.ImportFile(ctx, cfg.Ingestion.SeedFile); err != nil {
			slog.Error("Boot seed import failed", "path", cfg.Ingestion.SeedFile, "error", err)
			os.Exit(1)
		}
	}

	// 4. Initialize Projection (query API)
	projectionSvc := projection.NewService(st.store)

	// 5. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), st.db, cfg.Server.Mode, cfg.Server.CORSOrigins)
	ingestionSvc.RegisterRoutes(srv.Engine)
	projectionSvc.RegisterRoutes(srv.Engine)

	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
