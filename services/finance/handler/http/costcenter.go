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

// CostCenterHandler handles HTTP requests for cost centers and custom columns
type CostCenterHandler struct {
	financeUC finance.FinanceUC
}

// NewCostCenterHandler creates a new cost center handler
func NewCostCenterHandler(financeUC finance.FinanceUC) *CostCenterHandler {
	return &CostCenterHandler{
		financeUC: financeUC,
	}
}

// CreateCostCenter creates a named category bucket
func (h *CostCenterHandler) CreateCostCenter(c echo.Context) error {
	userID, err := requestcontext.UserIDFromEcho(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	var cc models.CostCenter
	if err := c.Bind(&cc); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	created, err := h.financeUC.CreateCostCenter(c.Request().Context(), userID, &cc)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Cost center created successfully", created)
}

// UpdateCostCenter edits a cost center
func (h *CostCenterHandler) UpdateCostCenter(c echo.Context) error {
	userID, err := requestcontext.UserIDFromEcho(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid cost center ID")
	}

	var cc models.CostCenter
	if err := c.Bind(&cc); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	cc.ID = id

	updated, err := h.financeUC.UpdateCostCenter(c.Request().Context(), userID, &cc)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Cost center updated successfully", updated)
}

// DeleteCostCenter removes a cost center
func (h *CostCenterHandler) DeleteCostCenter(c echo.Context) error {
	userID, err := requestcontext.UserIDFromEcho(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid cost center ID")
	}

	if err := h.financeUC.DeleteCostCenter(c.Request().Context(), userID, id); err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to delete cost center")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Cost center deleted successfully", nil)
}

// ListCostCenters returns the user's cost centers
func (h *CostCenterHandler) ListCostCenters(c echo.Context) error {
	userID, err := requestcontext.UserIDFromEcho(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	centers, err := h.financeUC.ListCostCenters(c.Request().Context(), userID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list cost centers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Cost centers retrieved successfully", centers)
}

type columnRequest struct {
	Name string `json:"name"`
}

// CreateColumn creates a grouping column at the next position
func (h *CostCenterHandler) CreateColumn(c echo.Context) error {
	userID, err := requestcontext.UserIDFromEcho(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	var req columnRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	col, err := h.financeUC.CreateColumn(c.Request().Context(), userID, req.Name)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Column created successfully", col)
}

// RenameColumn renames a grouping column
func (h *CostCenterHandler) RenameColumn(c echo.Context) error {
	userID, err := requestcontext.UserIDFromEcho(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid column ID")
	}

	var req columnRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	col, err := h.financeUC.RenameColumn(c.Request().Context(), userID, id, req.Name)
	if err != nil {
		if errors.Is(err, finance.ErrNotFound) {
			return utils.NotFoundResponse(c, "Column not found")
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Column renamed successfully", col)
}

// DeleteColumn removes a grouping column
func (h *CostCenterHandler) DeleteColumn(c echo.Context) error {
	userID, err := requestcontext.UserIDFromEcho(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid column ID")
	}

	if err := h.financeUC.DeleteColumn(c.Request().Context(), userID, id); err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to delete column")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Column deleted successfully", nil)
}

// ListColumns returns the user's grouping columns
func (h *CostCenterHandler) ListColumns(c echo.Context) error {
	userID, err := requestcontext.UserIDFromEcho(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	cols, err := h.financeUC.ListColumns(c.Request().Context(), userID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list columns")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Columns retrieved successfully", cols)
}

// SetMainColumn marks one column as the main one
func (h *CostCenterHandler) SetMainColumn(c echo.Context) error {
	userID, err := requestcontext.UserIDFromEcho(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid column ID")
	}

	if err := h.financeUC.SetMainColumn(c.Request().Context(), userID, id); err != nil {
		if errors.Is(err, finance.ErrNotFound) {
			return utils.NotFoundResponse(c, "Column not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to set main column")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Main column updated successfully", nil)
}
