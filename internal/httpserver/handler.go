package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	foodcartHTTP "growling-tummy/internal/foodcart/delivery/http"
	"growling-tummy/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.AccessLog())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Running in production mode")
	} else {
		srv.l.Infof(ctx, "Running in %s mode", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	// Fulfillment webhooks sit behind basic auth
	hooks := srv.gin.Group("/webhook", srv.mw.BasicAuth())
	hooks.POST("/dialogflow", srv.webhookHandler.HandleDialogflowWebhook)
	srv.l.Infof(ctx, "Dialogflow webhook route registered at POST /webhook/dialogflow")

	if srv.alexaEnabled {
		hooks.POST("/alexa", srv.webhookHandler.HandleAlexaWebhook)
		srv.l.Infof(ctx, "Alexa webhook route registered at POST /webhook/alexa")
	} else {
		srv.l.Infof(ctx, "Alexa disabled, skipping webhook route")
	}

	api := srv.gin.Group("/api/v1")
	api.POST("/query", srv.webhookHandler.HandleQuery)
	foodcartHTTP.RegisterRoutes(api.Group("/foodcarts"), srv.foodcartHandler)
	srv.l.Infof(ctx, "REST routes registered under /api/v1")

	return nil
}
