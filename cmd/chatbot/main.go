package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/davidreifferscheidt/Chatbot/internal/adapter/gemini"
	"github.com/davidreifferscheidt/Chatbot/internal/adapter/httpserver"
	"github.com/davidreifferscheidt/Chatbot/internal/adapter/meteoblue"
	"github.com/davidreifferscheidt/Chatbot/internal/adapter/opencage"
	"github.com/davidreifferscheidt/Chatbot/internal/chat"
	"github.com/davidreifferscheidt/Chatbot/internal/config"
	"github.com/davidreifferscheidt/Chatbot/internal/observability"
)

func main() {
	// Local development convenience; a missing .env file is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	generator := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout, metrics, logger)
	geocoder := opencage.NewClient(cfg.OpenCageAPIKey, cfg.HTTPTimeout, metrics, logger)
	forecasts := meteoblue.NewClient(cfg.MeteoblueAPIKey, cfg.HTTPTimeout, metrics, logger)

	session := chat.NewSession(
		chat.NewInterpreter(generator, logger),
		geocoder,
		forecasts,
		chat.NewComposer(generator, logger),
		logger,
		metrics,
	)
	loop := chat.NewLoop(session, os.Stdin, os.Stdout, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Optional metrics endpoint (feature-flagged via METRICS_ADDR).
	var srv *httpserver.Server
	if cfg.MetricsAddr != "" {
		srv = httpserver.NewServer(cfg.MetricsAddr, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server error", "error", err)
			}
		}()
	}

	if err := loop.Run(ctx); err != nil {
		logger.Error("interactive loop error", "error", err)
	}
	stop()

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown error", "error", err)
		}
	}
}
