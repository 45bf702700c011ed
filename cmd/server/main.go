package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/krafty-kitchen/api/internal/config"
	"github.com/krafty-kitchen/api/internal/poll"
	"github.com/krafty-kitchen/api/internal/router"
	"github.com/krafty-kitchen/api/internal/seed"
	"github.com/krafty-kitchen/api/internal/service"
	"github.com/krafty-kitchen/api/internal/storage"
)

const statsPollInterval = 5 * time.Second

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	store := storage.NewFile(cfg.DataFile)
	if err := seed.EnsureDefaults(store, time.Now()); err != nil {
		log.Fatalf("Unable to initialize store: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Operational heartbeat at the admin-overview cadence.
	stats := service.NewStatsService(store)
	go poll.Run(ctx, statsPollInterval, func() {
		snap, err := stats.Snapshot()
		if err != nil {
			log.Printf("ERROR: stats poll: %v", err)
			return
		}
		log.Printf("stats: %d active orders, %d total", snap.ActiveOrders, snap.TotalOrders)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router.New(cfg, store),
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("ERROR: shutdown: %v", err)
		}
	}()

	log.Printf("Starting server on :%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
