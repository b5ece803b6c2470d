package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/contaflux/contaflux/internal/pkg/middleware"
	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/services/assistant/handler/http"
)

// Handler coordinates the HTTP handlers for the assistant service
type Handler struct {
	chatHandler *http.ChatHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(chatHandler *http.ChatHandler, cfg *models.Config) *Handler {
	return &Handler{
		chatHandler: chatHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the assistant routes behind JWT
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("/assistant", middleware.JWTMiddleware(h.cfg))
	protected.POST("/chat", h.chatHandler.Chat)
}
