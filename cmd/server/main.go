// File: cmd/server/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wedding_directory_backend/internal/config"
	"wedding_directory_backend/internal/freelancer"
	"wedding_directory_backend/internal/platform/database"
	"wedding_directory_backend/internal/platform/elasticsearch"
	"wedding_directory_backend/internal/platform/logger"

	"go.uber.org/zap"
)

// @title        Wedding Directory API
// @version      1.0
// @description  Directory of wedding freelancers: profiles, reviews and credentialed account management.
// @BasePath     /
func main() {
	cmd := "serve"
	args := os.Args[1:]
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	var err error
	switch cmd {
	case "serve":
		err = startServer()
	case "migrate":
		err = runMigrate()
	case "sync-freelancers":
		err = runSync(args)
	default:
		err = fmt.Errorf("unknown command %q (want serve, migrate or sync-freelancers)", cmd)
	}
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func startServer() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	server, cleanup, err := initializeServer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}
	defer cleanup()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		log.Printf("INFO: Received signal '%s'. Shutting down server...", sig)
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ServerTimeout)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("ERROR: Server forced to shutdown due to error: %v", err)
	} else {
		log.Println("INFO: Server shutdown complete.")
	}
	return nil
}

// runMigrate applies the schema and exits.
func runMigrate() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	appLogger, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = appLogger.Sync() }()

	db, err := database.NewGORM(cfg, appLogger)
	if err != nil {
		return err
	}
	defer database.CloseGORMDB(db, appLogger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	return database.Migrate(ctx, db, cfg, appLogger, schemaModels()...)
}

// runSync re-indexes every freelancer into Elasticsearch.
func runSync(args []string) error {
	fs := flag.NewFlagSet("sync-freelancers", flag.ExitOnError)
	batchSize := fs.Int("batch-size", 100, "Batch size for reading freelancers")
	esRefresh := fs.Bool("es-refresh", false, "Refresh the index once the bulk load completes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *batchSize <= 0 {
		return fmt.Errorf("batch-size must be positive, got %d", *batchSize)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration for sync: %w", err)
	}
	appLogger, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger for sync: %w", err)
	}
	defer func() { _ = appLogger.Sync() }()

	db, err := database.NewGORM(cfg, appLogger)
	if err != nil {
		return err
	}
	defer database.CloseGORMDB(db, appLogger)

	esClient, err := elasticsearch.NewClient(cfg, appLogger)
	if err != nil {
		return err
	}
	if esClient == nil {
		return errors.New("ELASTICSEARCH_URL is not set; nothing to sync")
	}

	ctx := context.Background()
	index := freelancer.NewElasticIndex(esClient, cfg.ElasticsearchIndex, appLogger)
	if err := index.EnsureIndex(ctx); err != nil {
		return err
	}

	appLogger.Info("Starting freelancer synchronization to Elasticsearch...",
		zap.Int("batchSize", *batchSize),
		zap.Bool("refresh", *esRefresh),
	)
	stats, err := index.Sync(ctx, freelancer.NewGORMRepository(db, appLogger), *batchSize, *esRefresh)
	appLogger.Info("Freelancer synchronization finished",
		zap.Uint64("indexed", stats.Indexed),
		zap.Uint64("failed", stats.Failed),
	)
	if err != nil {
		return err
	}
	if stats.Failed > 0 {
		return fmt.Errorf("%d freelancers failed to sync", stats.Failed)
	}
	return nil
}
