package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	foodcartHTTP "growling-tummy/internal/foodcart/delivery/http"
	"growling-tummy/internal/middleware"
	"growling-tummy/pkg/log"
)

// WebhookHandler serves the fulfillment endpoints.
type WebhookHandler interface {
	HandleDialogflowWebhook(c *gin.Context)
	HandleAlexaWebhook(c *gin.Context)
	HandleQuery(c *gin.Context)
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	startedAt       time.Time

	mw              middleware.Middleware
	alexaEnabled    bool
	webhookHandler  WebhookHandler
	foodcartHandler foodcartHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	// TrustedProxies may set X-Forwarded-For and X-Real-IP. Empty trusts none.
	TrustedProxies  []string

	Middleware      middleware.Middleware
	AlexaEnabled    bool
	WebhookHandler  WebhookHandler
	FoodCartHandler foodcartHTTP.Handler
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		startedAt:       time.Now(),
		mw:              cfg.Middleware,
		alexaEnabled:    cfg.AlexaEnabled,
		webhookHandler:  cfg.WebhookHandler,
		foodcartHandler: cfg.FoodCartHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.webhookHandler == nil {
		return errors.New("webhook handler is required")
	}
	if srv.foodcartHandler == nil {
		return errors.New("foodcart handler is required")
	}
	return nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
