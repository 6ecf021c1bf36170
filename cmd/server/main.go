/*
main.go - Application entry point

PURPOSE:
  Initializes and starts the rent ledger server.
  Handles configuration, logging, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load configuration (flags, env, .env, YAML)
  2. Initialize the slog logger
  3. Create API handler and router
  4. Start server with graceful shutdown

COMMAND-LINE FLAGS:
  -port      HTTP server port (default: 8080, env PORT)
  -config    YAML config file (env CONFIG_FILE)
  -env-file  .env file (default: ./.env when present)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (SHUTDOWN_TIMEOUT, default 30s)
  3. Exit

EXAMPLES:
  # Run on a different port
  ./server -port=3000

  # Human readable logs
  LOG_FORMAT=text LOG_LEVEL=debug ./server

SEE ALSO:
  - config/config.go: Configuration sources
  - api/server.go: Router configuration
  - api/handlers.go: HTTP handlers
*/
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/warp/rent-ledger/api"
	"github.com/warp/rent-ledger/config"
	"github.com/warp/rent-ledger/generic"
	"github.com/warp/rent-ledger/logging"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Init("rent-ledger", cfg.LogLevel, cfg.LogFormat)

	handler := api.NewHandler(api.Limits{
		MaxPeriodDays: cfg.MaxPeriodDays,
		MaxWeeklyRent: generic.NewAmountFromInt(cfg.MaxWeeklyRent),
	})
	router := api.NewRouter(handler, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		slog.Info("server started", "addr", server.Addr, "max_period_days", cfg.MaxPeriodDays, "max_weekly_rent", cfg.MaxWeeklyRent)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
