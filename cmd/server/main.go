// Package main - Entry point for the gerber-estimate HTTP server
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"gerber-estimate/api"
	"gerber-estimate/internal/config"
	"gerber-estimate/internal/logging"
)

const version = "0.1.0"

func main() {
	cfgPath := flag.String("config", "", "Path to config file (.json or .hcl)")
	addr := flag.String("addr", "", "Server address (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			logging.Error("Failed to load config", zap.String("path", *cfgPath), zap.Error(err))
			os.Exit(1)
		}
		cfg = loaded
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Warn("Falling back to default logger", zap.Error(err))
	}
	defer logging.Sync()

	server := api.NewServer(api.Options{
		Version:        version,
		MaxUploadBytes: cfg.Server.MaxUploadBytes(),
		Logger:         logging.Named("api"),
	})
	httpServer := server.HTTPServer(cfg.Server.Addr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	logging.Info("gerber-estimate server starting",
		zap.String("version", version),
		zap.String("addr", cfg.Server.Addr),
		zap.Int("max_upload_mb", cfg.Server.MaxUploadMB),
	)

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Error("Server stopped", zap.Error(err))
		os.Exit(1)
	}
	logging.Info("Server shut down")
}
