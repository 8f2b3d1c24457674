package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aokihara/kashikari/internal/auth"
	"github.com/aokihara/kashikari/internal/config"
	"github.com/aokihara/kashikari/internal/server"
	"github.com/aokihara/kashikari/internal/service"
	"github.com/aokihara/kashikari/internal/storage/sqlite"
	"github.com/aokihara/kashikari/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		slog.Error("Failed to open database", "path", cfg.DB.Path, "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Database ready", "path", cfg.DB.Path)

	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Expiry)

	handlers := server.NewHandlers(
		service.NewIdentityService(store, jwtManager),
		service.NewPartnerService(store),
		service.NewLedgerService(store),
		service.NewBalanceService(store),
		service.NewGroupService(store),
	)

	srv := server.New(cfg.HTTP, server.NewRouter(handlers, jwtManager, cfg.HTTP))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	case sig := <-quit:
		slog.Info("Signal received", "signal", sig.String())
		if err := srv.Shutdown(context.Background()); err != nil {
			slog.Error("Shutdown failed", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}
