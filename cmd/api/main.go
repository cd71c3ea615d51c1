package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"voice-assistant-nlu/config"
	_ "voice-assistant-nlu/docs" // Swagger docs
	"voice-assistant-nlu/internal/httpserver"
	"voice-assistant-nlu/internal/schema"
	"voice-assistant-nlu/pkg/log"
)

// @title       Voice Assistant NLU API
// @description Offline rule-based natural language understanding and dialogue state engine for multi-domain assistants.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Voice Assistant NLU...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Domain schemas
	registry, err := schema.Load(cfg.Domains.Dir)
	if err != nil {
		logger.Error(ctx, "Failed to load domain schemas: ", err)
		return
	}
	logger.Infof(ctx, "Loaded %d domain schemas from %s", registry.Count(), cfg.Domains.Dir)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Registry:    registry,
		Engine:      cfg.Engine,
		RateLimit:   cfg.RateLimit,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
