package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/internal/pkg/requestcontext"
	"github.com/contaflux/contaflux/internal/utils"
	"github.com/contaflux/contaflux/services/finance"
)

// TeamExpenseHandler handles HTTP requests for ancillary expense operations
type TeamExpenseHandler struct {
	financeUC finance.FinanceUC
}

// NewTeamExpenseHandler creates a new team expense handler
func NewTeamExpenseHandler(financeUC finance.FinanceUC) *TeamExpenseHandler {
	return &TeamExpenseHandler{
		financeUC: financeUC,
	}
}

// CreateTeamExpense records an ancillary expense
func (h *TeamExpenseHandler) CreateTeamExpense(c echo.Context) error {
	userID, err := requestcontext.UserIDFromEcho(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	var expense models.TeamExpense
	if err := c.Bind(&expense); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	created, err := h.financeUC.CreateTeamExpense(c.Request().Context(), userID, &expense)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Team expense created successfully", created)
}

// UpdateTeamExpense edits an ancillary expense
func (h *TeamExpenseHandler) UpdateTeamExpense(c echo.Context) error {
	userID, err := requestcontext.UserIDFromEcho(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid team expense ID")
	}

	var expense models.TeamExpense
	if err := c.Bind(&expense); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	expense.ID = id

	updated, err := h.financeUC.UpdateTeamExpense(c.Request().Context(), userID, &expense)
	if err != nil {
		if errors.Is(err, finance.ErrNotFound) {
			return utils.NotFoundResponse(c, "Team expense not found")
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Team expense updated successfully", updated)
}

// MarkTeamExpensePaid sets status=paid on an ancillary expense
func (h *TeamExpenseHandler) MarkTeamExpensePaid(c echo.Context) error {
	userID, err := requestcontext.UserIDFromEcho(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid team expense ID")
	}

	expense, err := h.financeUC.MarkTeamExpensePaid(c.Request().Context(), userID, id)
	if err != nil {
		if errors.Is(err, finance.ErrNotFound) {
			return utils.NotFoundResponse(c, "Team expense not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to mark team expense paid")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Team expense marked as paid", expense)
}

// DeleteTeamExpense soft-deletes an ancillary expense
func (h *TeamExpenseHandler) DeleteTeamExpense(c echo.Context) error {
	userID, err := requestcontext.UserIDFromEcho(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid team expense ID")
	}

	if err := h.financeUC.DeleteTeamExpense(c.Request().Context(), userID, id); err != nil {
		if errors.Is(err, finance.ErrNotFound) {
			return utils.NotFoundResponse(c, "Team expense not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to delete team expense")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Team expense deleted successfully", nil)
}

// ListTeamExpenses returns the user's ancillary expenses
func (h *TeamExpenseHandler) ListTeamExpenses(c echo.Context) error {
	userID, err := requestcontext.UserIDFromEcho(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	expenses, err := h.financeUC.ListTeamExpenses(c.Request().Context(), userID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list team expenses")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Team expenses retrieved successfully", expenses)
}
