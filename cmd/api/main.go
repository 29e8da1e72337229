package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"growling-tummy/config"
	_ "growling-tummy/docs" // Swagger docs
	foodcartHTTP "growling-tummy/internal/foodcart/delivery/http"
	"growling-tummy/internal/foodcart/repository/memory"
	"growling-tummy/internal/foodcart/usecase"
	"growling-tummy/internal/httpserver"
	"growling-tummy/internal/middleware"
	"growling-tummy/internal/router"
	"growling-tummy/internal/webhook"
	"growling-tummy/pkg/log"
)

// @title       Growling Tummy Food-Cart API
// @description Conversational fulfillment for Dialogflow and Alexa, answering food-cart questions.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.basic BasicAuth
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Growling Tummy...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Food-cart domain
	repo := memory.New(logger)
	uc := usecase.New(repo, logger)
	queryRouter := router.New(uc, logger)

	// 4. Delivery
	webhookHandler := webhook.NewHandler(
		queryRouter,
		webhook.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		},
		webhook.AlexaConfig{
			Enabled:       cfg.Alexa.Enabled,
			ApplicationID: cfg.Alexa.ApplicationID,
		},
		logger,
	)
	mw := middleware.New(logger, middleware.BasicAuthConfig{
		Username:       cfg.Webhook.BasicAuthUsername,
		HashedPassword: cfg.Webhook.BasicAuthHashedPassword,
	})
	if cfg.Webhook.BasicAuthUsername == "" {
		logger.Warn(ctx, "Basic auth disabled: webhook.basic_auth_username is empty")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		TrustedProxies:  cfg.Webhook.TrustedProxies,
		Middleware:      mw,
		AlexaEnabled:    cfg.Alexa.Enabled,
		WebhookHandler:  webhookHandler,
		FoodCartHandler: foodcartHTTP.New(logger, uc),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// Report the public fulfillment URL when running behind ngrok
	if cfg.Ngrok.APIURL != "" {
		go announceNgrokURL(ctx, logger, cfg.Ngrok.APIURL, cfg.Alexa.Enabled)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
