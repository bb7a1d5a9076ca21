package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/itchan-dev/forum/backend/internal/router"
	"github.com/itchan-dev/forum/backend/internal/setup"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	flag.Parse()

	// .env is optional, real environment wins
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := setup.SetupDependencies(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to setup dependencies: %w", err)
	}
	defer func() {
		if err := deps.Storage.Cleanup(); err != nil {
			logger.Log.Error("failed to close storage", "error", err)
		}
	}()

	server := &http.Server{
		Addr:         cfg.Public.HTTP.Addr,
		Handler:      router.New(deps),
		ReadTimeout:  cfg.Public.HTTP.ReadTimeout,
		WriteTimeout: cfg.Public.HTTP.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Log.Info("server started", "addr", server.Addr, "storage", cfg.Public.StorageDriver)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		logger.Log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
