package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/contaflux/contaflux/internal/pkg/logger"
	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/internal/pkg/requestcontext"
	"github.com/contaflux/contaflux/internal/utils"
	"github.com/contaflux/contaflux/services/finance"
)

// TransactionHandler handles HTTP requests for transaction operations
type TransactionHandler struct {
	financeUC finance.FinanceUC
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(financeUC finance.FinanceUC) *TransactionHandler {
	return &TransactionHandler{
		financeUC: financeUC,
	}
}

// CreateTransaction records a new entry, expanding installment plans
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := requestcontext.UserIDFromEcho(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	var req models.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	rows, err := h.financeUC.CreateTransaction(c.Request().Context(), userID, &req)
	if err != nil {
		logger.Error("Failed to create transaction",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()),
		)
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transaction created successfully", rows)
}

// ListTransactions returns the user's transactions, optionally month-filtered
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := requestcontext.UserIDFromEcho(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	var month *time.Time
	if raw := c.QueryParam("month"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid month, expected YYYY-MM")
		}
		month = &parsed
	}

	txs, err := h.financeUC.ListTransactions(c.Request().Context(), userID, month)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list transactions")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", txs)
}

// UpdateTransaction applies an edit to an existing entry
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, err := requestcontext.UserIDFromEcho(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	var req models.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	tx, err := h.financeUC.UpdateTransaction(c.Request().Context(), userID, id, &req)
	if err != nil {
		if errors.Is(err, finance.ErrNotFound) {
			return utils.NotFoundResponse(c, "Transaction not found")
		}
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction updated successfully", tx)
}

// MarkTransactionPaid sets status=paid and stamps the payment date
func (h *TransactionHandler) MarkTransactionPaid(c echo.Context) error {
	userID, err := requestcontext.UserIDFromEcho(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	tx, err := h.financeUC.MarkTransactionPaid(c.Request().Context(), userID, id)
	if err != nil {
		if errors.Is(err, finance.ErrNotFound) {
			return utils.NotFoundResponse(c, "Transaction not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to mark transaction paid")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction marked as paid", tx)
}

// DeleteTransaction soft-deletes an entry
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := requestcontext.UserIDFromEcho(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid user identity")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	if err := h.financeUC.DeleteTransaction(c.Request().Context(), userID, id); err != nil {
		if errors.Is(err, finance.ErrNotFound) {
			return utils.NotFoundResponse(c, "Transaction not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to delete transaction")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction deleted successfully", nil)
}
