package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/seedlinghq/seedling-engine/internal/analytics"
	"github.com/seedlinghq/seedling-engine/internal/enrich"
	"github.com/seedlinghq/seedling-engine/internal/server"
	"github.com/seedlinghq/seedling-engine/internal/session"
)

// #region main
func main() {
	dbPath := envOr("SEEDLING_DB", "seedling.db")
	host := envOr("SEEDLING_HOST", "0.0.0.0")
	port := envIntOr("SEEDLING_PORT", 8080)
	enrichURL := envOr("SEEDLING_ENRICH_URL", "")

	store, err := session.NewStore(dbPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	recorder, err := analytics.NewRecorder(store.DB())
	if err != nil {
		log.Fatalf("failed to init analytics: %v", err)
	}

	client := enrich.NewClient(enrich.DefaultConfig(enrichURL))
	if enrichURL == "" {
		log.Println("SEEDLING_ENRICH_URL not set, enrichment serves fallback insights")
	}

	config := server.DefaultConfig()
	config.Host = host
	config.Port = port

	srv, err := server.NewServer(config, store, recorder, client)
	if err != nil {
		log.Fatalf("failed to build server: %v", err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("server: %v", err)
		}
	case <-ctx.Done():
		log.Println("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}
}

// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("ignoring non-numeric %s=%q", key, v)
	}
	return fallback
}

// #endregion helpers
