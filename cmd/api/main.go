package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorgonzola/infrastructure/config"
	"gorgonzola/infrastructure/di"
	"gorgonzola/interfaces/http/rest"

	"go.uber.org/zap"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err := di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
	logger := container.Logger

	if cfg.ConfigFile != "" {
		watcher, err := config.NewWatcher(cfg, logger)
		if err != nil {
			logger.Warn("Configuration hot reloading disabled", zap.Error(err))
		} else {
			defer watcher.Close()
			watcher.OnChange(func(next *config.Config) {
				if err := container.LogLevel.UnmarshalText([]byte(next.LogLevel)); err != nil {
					logger.Warn("Ignoring invalid log level", zap.String("level", next.LogLevel))
				}
				container.AdminSecret.Set(next.AdminSecret)
			})
		}
	}

	if cfg.SyncOnStart {
		result, err := container.SyncService.Run(ctx)
		if err != nil {
			logger.Error("Initial game data sync failed", zap.Error(err))
		} else {
			logger.Info("Initial game data sync finished",
				zap.Int("items", result.Items),
				zap.Int("recipes", result.Recipes),
			)
		}
	}

	router := rest.NewRouter(
		container.CommandBus,
		container.QueryBus,
		rest.Options{
			AdminSecret:       container.AdminSecret,
			RateLimiter:       container.RateLimiter,
			Collector:         container.Collector,
			ExposeMetrics:     true,
			TrustForwardedFor: cfg.TrustProxyHeaders,
			Debug:             cfg.Debug,
		},
		logger,
	)

	srv := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      router.Setup(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server",
			zap.String("address", cfg.ServerAddress),
			zap.String("environment", cfg.Environment),
			zap.String("storage", cfg.StorageBackend),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}

	container.Shutdown()
	log.Println("Server stopped")
}
