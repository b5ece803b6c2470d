package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/contaflux/contaflux/internal/pkg/constants"
	"github.com/contaflux/contaflux/internal/pkg/middleware"
	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/services/auth/handler/http"
)

// Handler coordinates the HTTP handlers for the auth service
type Handler struct {
	authHandler *http.AuthHandler
	prefHandler *http.PreferenceHandler
	redisClient *redis.Client
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	prefHandler *http.PreferenceHandler,
	redisClient *redis.Client,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler: authHandler,
		prefHandler: prefHandler,
		redisClient: redisClient,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the auth routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes, rate limited per IP against credential stuffing
	authGroup := e.Group("/auth", middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RedisClient: h.redisClient,
		Key:         constants.KeyRateLimit,
		Limit:       10,
		Period:      time.Minute,
	}))
	authGroup.POST("/signup", h.authHandler.Signup)
	authGroup.POST("/login", h.authHandler.Login)

	// Protected routes with JWT middleware
	protected := e.Group("", middleware.JWTMiddleware(h.cfg))
	protected.GET("/me", h.authHandler.GetProfile)

	prefGroup := protected.Group("/preferences")
	prefGroup.GET("", h.prefHandler.GetPreferences)
	prefGroup.PUT("", h.prefHandler.SetPreference)
}
