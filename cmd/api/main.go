package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/blackoutbot/blackout/internal/config"
	"github.com/blackoutbot/blackout/internal/content"
	"github.com/blackoutbot/blackout/internal/handlers"
	"github.com/blackoutbot/blackout/internal/logger"
	"github.com/blackoutbot/blackout/internal/middleware"
	"github.com/blackoutbot/blackout/internal/storage"
	"github.com/blackoutbot/blackout/pkg/dice"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg)

	log.Info("Starting Blackout API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"data_dir", cfg.DataDir)

	cache, err := content.NewCache(filepath.Join(cfg.DataDir, "messages.yaml"), log)
	if err != nil {
		log.Error("Failed to load message catalog", "error", err)
		os.Exit(1)
	}
	defer cache.Close()

	store := storage.NewRedisStorage(cfg.RedisURL, log)
	storageCtx, storageCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer storageCancel()

	if err := store.WaitForConnection(storageCtx); err != nil {
		log.Error("Failed to connect to storage", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()

	healthHandler := handlers.NewHealthHandler(store, cache, log)
	mux.Handle("/health", healthHandler)

	sessionHandler := handlers.NewSessionHandler(store, cache, dice.New(), log)
	mux.Handle("/v1/turn", sessionHandler)

	highscoresHandler := handlers.NewHighscoresHandler(store, log)
	mux.Handle("/v1/highscores", highscoresHandler)

	handler := middleware.RequestLogger(log)(mux)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	if err := store.Close(); err != nil {
		log.Error("Error closing storage connection", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("Server exited")
}
