package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/anonto42/boujee-triggers/internal/handlers"
	"github.com/anonto42/boujee-triggers/internal/metrics"
	"github.com/anonto42/boujee-triggers/internal/notifier"
	"github.com/anonto42/boujee-triggers/internal/repositories"
	"github.com/anonto42/boujee-triggers/internal/router"
	"github.com/anonto42/boujee-triggers/internal/triggers"
	"github.com/anonto42/boujee-triggers/internal/validators"
	"github.com/anonto42/boujee-triggers/pkg/config"
	"github.com/anonto42/boujee-triggers/pkg/firebase"
	"github.com/anonto42/boujee-triggers/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize Firebase
	firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath, cfg.FirebaseProjectID, zl)
	if err != nil {
		zl.Fatal("Failed to initialize Firebase", zap.Error(err))
	}
	defer func() {
		if err := firebaseApp.Close(); err != nil {
			zl.Error("Error closing firestore client", zap.Error(err))
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	fs := firebaseApp.FirestoreClient
	service := triggers.NewService(
		repositories.NewFirestoreUserRepository(fs),
		repositories.NewFirestoreTokenRepository(fs),
		repositories.NewFirestoreReviewRepository(fs),
		repositories.NewFirestoreProfileCopyRepository(fs),
		notifier.NewFCMNotifier(firebaseApp.MessagingClient, cfg.SendTimeout),
		metrics.New(reg),
		zl,
	)

	e := echo.New()
	e.HideBanner = true
	v := validators.NewValidator()
	e.Validator = v

	router.SetupMiddleware(e, zl)
	router.SetupRoutes(e, handlers.NewTriggerHandler(service, v, zl), cfg.TriggerJWTSecret, zl)

	metricsServer := &http.Server{
		Addr:    ":" + cfg.MetricsPort,
		Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	}
	go func() {
		zl.Info("Metrics server listening", zap.String("port", cfg.MetricsPort))
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Error("Metrics server stopped", zap.Error(err))
		}
	}()

	go func() {
		zl.Info("Trigger server listening", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Error("Trigger server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	zl.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zl.Error("Error shutting down trigger server", zap.Error(err))
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		zl.Error("Error shutting down metrics server", zap.Error(err))
	}
}
