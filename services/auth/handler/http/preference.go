package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/internal/pkg/requestcontext"
	"github.com/contaflux/contaflux/internal/utils"
	"github.com/contaflux/contaflux/services/auth"
)

// PreferenceHandler handles HTTP requests for user preference records
type PreferenceHandler struct {
	authUC auth.AuthUC
}

// NewPreferenceHandler creates a new preference handler
func NewPreferenceHandler(authUC auth.AuthUC) *PreferenceHandler {
	return &PreferenceHandler{
		authUC: authUC,
	}
}

type setPreferenceRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// GetPreferences returns all preference records for the authenticated user
func (h *PreferenceHandler) GetPreferences(c echo.Context) error {
	userID, err := requestcontext.UserIDFromEcho(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	prefs, err := h.authUC.GetPreferences(c.Request().Context(), userID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to retrieve preferences")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Preferences retrieved successfully", prefs)
}

// SetPreference upserts a keyed preference record for the authenticated user
func (h *PreferenceHandler) SetPreference(c echo.Context) error {
	userID, err := requestcontext.UserIDFromEcho(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	var req setPreferenceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Key == "" {
		return utils.BadRequestResponse(c, "Preference key is required")
	}

	var pref *models.UserPreference
	pref, err = h.authUC.SetPreference(c.Request().Context(), userID, req.Key, req.Value)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to set preference")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Preference saved successfully", pref)
}
