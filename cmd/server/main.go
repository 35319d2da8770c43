package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dragonfire/config"
	"dragonfire/internal/adapters/auth"
	httpdelivery "dragonfire/internal/delivery/http"
	"dragonfire/internal/delivery/http/controllers"
	"dragonfire/internal/delivery/http/middleware"
	"dragonfire/internal/domain"
	"dragonfire/internal/repository/postgres"
	"dragonfire/internal/services"
)

const (
	serviceTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	gateway := postgres.NewGateway(cfg)

	if cfg.MigrateOnStart {
		dsn, err := gateway.DSN(domain.TrustElevated)
		if err != nil {
			logger.Error("migrations skipped", "err", err)
			os.Exit(1)
		}
		if err := postgres.RunMigrations(dsn, cfg.MigrationsPath); err != nil {
			logger.Error("migrations failed", "err", err)
			os.Exit(1)
		}
		logger.Info("migrations applied")
	}

	svc := services.NewEventService(gateway, cfg.AdminUserIDs, serviceTimeout)
	verifier := auth.NewJWTVerifier(cfg.AdminJWTSecret)
	eventController := controllers.NewEventController(logger, svc)

	mux := httpdelivery.NewRouter(eventController, middleware.RequireIdentity(verifier))
	handler := middleware.Logging(logger, middleware.CORS(cfg.CORSOrigins, mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
}
