// Command crewd serves the journal assist crew over HTTP.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/journalassist/crew"
	"github.com/journalassist/crew/config"
	"github.com/journalassist/crew/logging"
	"github.com/journalassist/crew/server"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := logging.New(os.Stdout, cfg.Logging.Level, cfg.Logging.Format)

	c, err := crew.New(cfg, func(o *crew.Options) { o.Logger = logger })
	if err != nil {
		return fmt.Errorf("crew: %w", err)
	}

	logger.Info("crew ready",
		"provider", c.ModelInfo().Provider,
		"model", c.ModelInfo().Name,
		"port", cfg.Server.Port,
	)

	srv := server.New(c.Orchestrator(), c.Registry(), func(o *server.Options) {
		o.CORSOrigin = cfg.Server.CORSOrigin
		o.Logger = logger
	})

	addr := ":" + cfg.Server.Port
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      3 * time.Minute,
		IdleTimeout:       2 * time.Minute,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("starting server", "addr", addr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
		}
	}()

	<-done
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return httpSrv.Shutdown(shutdownCtx)
}
