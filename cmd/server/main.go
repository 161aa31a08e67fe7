package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mtrunkat/namedrill/internal/api"
	"github.com/mtrunkat/namedrill/internal/factory"
	"github.com/mtrunkat/namedrill/internal/services/directory"
	redisstorage "github.com/mtrunkat/namedrill/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Build factory config from environment
	cfg := factory.Config{
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Pick the directory source from environment
	adapter := directoryFromEnv(logger)

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameManager:    app.GameManager,
		MasteryService: app.MasteryService,
		Directory:      adapter,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		app.GameManager.Shutdown()
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// directoryFromEnv builds the directory adapter from DIRECTORY_PATH and
// DIRECTORY_FORMAT ("json" or "html")
func directoryFromEnv(logger *slog.Logger) directory.Adapter {
	path := os.Getenv("DIRECTORY_PATH")
	if path == "" {
		path = "data/people.json"
	}

	if os.Getenv("DIRECTORY_FORMAT") == "html" {
		return directory.NewHTMLAdapter(path, directory.DefaultSelectors(), logger)
	}
	return directory.NewJSONAdapter(path)
}
