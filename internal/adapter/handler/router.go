package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/dealinsight-dev/deal-insight/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	dealHandler    *Deal
	riskHandler    *Risk
	webhookHandler *Webhook
	serviceAuth    echo.MiddlewareFunc
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, dealHandler *Deal, riskHandler *Risk, webhookHandler *Webhook, serviceAuth echo.MiddlewareFunc) *Router {
	return &Router{
		cfg:            cfg,
		dealHandler:    dealHandler,
		riskHandler:    riskHandler,
		webhookHandler: webhookHandler,
		serviceAuth:    serviceAuth,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Operational endpoints, no auth
	e.GET("/health", rt.healthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	// Setup route groups
	rt.setupDealRoutes(v1)
	rt.setupWebhookRoutes(v1)
}

// setupDealRoutes configures deal, interaction, and risk routes. All of
// them require an organization-scoped service token.
func (rt *Router) setupDealRoutes(g *echo.Group) {
	dealGroup := g.Group("/deals", rt.serviceAuth)

	dealGroup.POST("", rt.dealHandler.CreateDeal)
	dealGroup.GET("", rt.dealHandler.ListDeals)
	dealGroup.GET("/:id", rt.dealHandler.GetDeal)
	dealGroup.PATCH("/:id/stage", rt.dealHandler.UpdateStage)
	dealGroup.DELETE("/:id", rt.dealHandler.DeleteDeal)

	dealGroup.POST("/:id/interactions", rt.dealHandler.RecordInteraction)
	dealGroup.GET("/:id/interactions", rt.dealHandler.ListInteractions)

	dealGroup.GET("/:id/risk", rt.riskHandler.GetRisk)
	dealGroup.POST("/:id/risk/refresh", rt.riskHandler.RefreshRisk)
	dealGroup.GET("/:id/risk/history", rt.riskHandler.GetRiskHistory)
	dealGroup.POST("/:id/risk/export", rt.riskHandler.ExportRisk)
}

// setupWebhookRoutes configures inbound webhook routes. Webhooks are
// authenticated by payload signature, not by service token.
func (rt *Router) setupWebhookRoutes(g *echo.Group) {
	webhookGroup := g.Group("/webhooks")

	webhookGroup.POST("/interactions", rt.webhookHandler.HandleInteractionEvent)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
