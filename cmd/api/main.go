// Copyright (c) 2026 Calyna. All rights reserved.
// Author: olena.koval.care@gmail.com

// Command api is the entry point for the Calyna HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Open the filesystem content store.
//  4. Wire the content resolver and the contact relay.
//  5. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/okoval/calyna/internal/api"
	"github.com/okoval/calyna/internal/contact"
	"github.com/okoval/calyna/internal/content"
	"github.com/okoval/calyna/internal/platform/config"
	"github.com/okoval/calyna/internal/platform/constants"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "calyna"))
	slog.SetDefault(log)

	log.Info("[Calyna] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "calyna"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("content_dir", cfg.ContentDir),
	)

	// Root context: cancelled on shutdown so background middleware
	// goroutines (rate limiter cleanup) stop with the server.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// ── 3. Content Store ──────────────────────────────────────────────────
	// A missing content root is not fatal: the store degrades to zero
	// documents and the readiness probe reports the problem.
	store := content.NewFSStore(cfg.ContentDir, log)
	if err := store.Ping(rootCtx); err != nil {
		log.Warn("content_root_unavailable", slog.Any("error", err))
	}

	// ── 4. Domain Wiring ──────────────────────────────────────────────────
	contentService := content.NewService(store, content.NewRenderer(), log)
	contentHandler := content.NewHandler(contentService)

	// Relay collaborators stay nil when unconfigured; the service reports
	// RELAY_MISCONFIGURED per submission instead of refusing to boot.
	var mailer contact.Mailer
	if cfg.ResendAPIKey != "" {
		mailer = contact.NewResendMailer(cfg.ResendAPIKey)
	} else {
		log.Warn("contact_relay_unconfigured", slog.String("missing", "RESEND_API_KEY"))
	}
	var verifier contact.Verifier
	if cfg.TurnstileSecretKey != "" {
		verifier = contact.NewTurnstileVerifier(cfg.TurnstileSecretKey)
	}

	contactService := contact.NewService(mailer, verifier, cfg.ContactTo, cfg.ContactFrom, log)
	contactHandler := contact.NewHandler(contactService)

	// ── 5. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckContentStore: func() error {
			return store.Ping(context.Background())
		},
	}, log)

	// ── 6. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Content:   contentHandler,
		Contact:   contactHandler,
	}

	server := api.NewServer(rootCtx, cfg, log, handlers)

	// ── 7. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
