package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/contaflux/contaflux/internal/pkg/requestcontext"
	"github.com/contaflux/contaflux/internal/utils"
	"github.com/contaflux/contaflux/services/finance"
)

// SummaryHandler handles HTTP requests for the financial summary
type SummaryHandler struct {
	financeUC finance.FinanceUC
}

// NewSummaryHandler creates a new summary handler
func NewSummaryHandler(financeUC finance.FinanceUC) *SummaryHandler {
	return &SummaryHandler{
		financeUC: financeUC,
	}
}

// GetSummary returns the derived dashboard totals for a reference month.
// Defaults to the current month when no month parameter is given.
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	userID, err := requestcontext.UserIDFromEcho(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	refMonth := time.Now()
	if raw := c.QueryParam("month"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid month, expected YYYY-MM")
		}
		refMonth = parsed
	}

	summary, err := h.financeUC.GetSummary(c.Request().Context(), userID, refMonth)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to compute summary")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Summary computed successfully", summary)
}
