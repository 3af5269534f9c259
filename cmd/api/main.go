package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/edmkit/edmkit/config"
	"github.com/edmkit/edmkit/internal/app"
	"github.com/edmkit/edmkit/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewLogger().WithField("error", err.Error()).Fatal("Failed to load configuration")
		os.Exit(1)
	}

	appLogger := logger.NewLoggerWithLevel(cfg.LogLevel)
	if err := runServer(cfg, appLogger); err != nil {
		os.Exit(1)
	}
}

func runServer(cfg *config.Config, appLogger logger.Logger) error {
	appInstance := app.NewApp(cfg, app.WithLogger(appLogger))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := appInstance.Initialize(ctx); err != nil {
		appLogger.WithField("error", err.Error()).Error("Failed to initialize application")
		return err
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	serverError := make(chan error, 1)
	go func() {
		serverError <- appInstance.Start()
	}()

	select {
	case err := <-serverError:
		if err != nil {
			appLogger.WithField("error", err.Error()).Error("Server error")
		}
		return err
	case sig := <-shutdown:
		appLogger.WithField("signal", sig.String()).Info("Shutdown signal received - starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := appInstance.Shutdown(shutdownCtx); err != nil {
			appLogger.WithField("error", err.Error()).Error("Graceful shutdown failed")
			return err
		}
		appLogger.Info("Server stopped")
		return nil
	}
}
