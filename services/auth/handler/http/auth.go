package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/contaflux/contaflux/internal/pkg/logger"
	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/internal/pkg/requestcontext"
	"github.com/contaflux/contaflux/internal/utils"
	"github.com/contaflux/contaflux/services/auth"
)

// AuthHandler handles HTTP requests for signup, login and profile
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// Signup handles account creation requests
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.SignupRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for signup",
			logger.ErrorField(err),
			logger.String("endpoint", "Signup"),
		)
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.Signup(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			return utils.ConflictResponse(c, "Email already registered")
		}
		logger.Error("Failed to sign up user",
			logger.ErrorField(err),
			logger.String("email", utils.MaskEmail(req.Email)),
		)
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account created successfully", resp)
}

// Login handles credential verification requests
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Email and password are required")
	}

	resp, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid email or password")
		}
		logger.Error("Failed to log in user",
			logger.ErrorField(err),
			logger.String("email", utils.MaskEmail(req.Email)),
		)
		return utils.InternalServerErrorResponse(c, "Failed to log in")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged in successfully", resp)
}

// GetProfile returns the authenticated user's account row
func (h *AuthHandler) GetProfile(c echo.Context) error {
	userID, err := requestcontext.UserIDFromEcho(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	user, err := h.authUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to retrieve profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", user)
}
