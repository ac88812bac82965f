// Package main is the entry point for the devfolio server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"devfolio/internal/cache"
	"devfolio/internal/config"
	"devfolio/internal/database"
	"devfolio/internal/handlers"
	"devfolio/internal/router"
	"devfolio/internal/session"
	"devfolio/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"store", cfg.StoreBackend,
	)

	// Content stores: postgres for deployments, memory for database-free
	// local development.
	var (
		posts    store.BlogPosts
		projects store.Projects
		messages store.ContactMessages
	)
	switch cfg.StoreBackend {
	case "memory":
		posts = store.NewMemoryBlogPosts()
		projects = store.NewMemoryProjects()
		messages = store.NewMemoryContactMessages()
	default:
		db, err := database.Connect(cfg.DSN())
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		// Run pending migrations.
		if err := database.Migrate(db); err != nil {
			slog.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}

		// Seed development data (no-op if data already exists).
		if cfg.IsDev() {
			if err := database.Seed(db); err != nil {
				slog.Error("failed to seed database", "error", err)
				os.Exit(1)
			}
		}

		posts = store.NewBlogPostStore(db)
		projects = store.NewProjectStore(db)
		messages = store.NewContactMessageStore(db)
	}

	// Connect to Valkey (Redis-compatible, holds admin sessions).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// In non-development environments, mark cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// Read-through cache over the content stores. Mutation handlers mark
	// keys stale via the static invalidation table.
	syncer := cache.NewSyncer(handlers.NewFetcher(posts, projects), cfg.CacheTTL)

	adminHandlers, err := handlers.NewAdmin(sessionStore, cfg.AdminPassword, posts, projects, messages)
	if err != nil {
		slog.Error("failed to initialize admin gate", "error", err)
		os.Exit(1)
	}

	r := router.New(router.Config{
		Sessions:      sessionStore,
		BlogPosts:     handlers.NewBlogPosts(posts, syncer),
		Projects:      handlers.NewProjects(projects, syncer),
		Contact:       handlers.NewContact(messages),
		Admin:         adminHandlers,
		AdminPath:     cfg.AdminPath,
		SecureCookies: secureCookies,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
