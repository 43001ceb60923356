package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/microshop/services/api/routes"
	"github.com/microshop/services/internal/products"
	"github.com/microshop/services/pkg/config"
	"github.com/microshop/services/pkg/logger"
	"github.com/microshop/services/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "product-service"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "product-service",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	registry := prometheus.NewRegistry()
	deps := routes.Deps{
		Cfg:      cfg,
		Logg:     logg,
		Registry: registry,
		Metrics:  metrics.NewHTTPMetrics(registry),
	}

	server := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: routes.NewProductRouter(deps, products.NewService()),
	}

	run(logg, cfg, server)
}

// run starts the server and blocks until it stops or a shutdown signal
// drains it.
func run(logg *logger.Logger, cfg *config.Config, server *http.Server) {
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":       cfg.App.Env,
		"addr":      server.Addr,
		"root_path": cfg.App.RootPath,
	})
	logg.Info(ctx, "starting server")

	shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-shutdownCtx.Done():
		logg.Info(ctx, "shutdown signal received")
		drainCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(drainCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
	}
	logg.Info(ctx, "server stopped")
}
