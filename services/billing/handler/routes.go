package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/contaflux/contaflux/internal/pkg/middleware"
	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/services/billing/handler/http"
)

// Handler coordinates the HTTP handlers for the billing service
type Handler struct {
	billingHandler *http.BillingHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(billingHandler *http.BillingHandler, cfg *models.Config) *Handler {
	return &Handler{
		billingHandler: billingHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the billing routes. The webhook is authenticated by
// the Asaas access token, everything else by JWT.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	webhooks := e.Group("/webhooks",
		middleware.ValidateWebhookToken(h.cfg.Asaas.WebhookToken))
	webhooks.POST("/asaas", h.billingHandler.HandleWebhook)

	protected := e.Group("/billing", middleware.JWTMiddleware(h.cfg))
	protected.POST("/checkout", h.billingHandler.CreateCheckout)
	protected.GET("/status", h.billingHandler.CheckStatus)
	protected.GET("/subscription", h.billingHandler.GetSubscription)
}
