package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/contaflux/contaflux/internal/pkg/middleware"
	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/services/finance/handler/http"
)

// Handler coordinates the HTTP handlers for the finance service
type Handler struct {
	transactionHandler *http.TransactionHandler
	costCenterHandler  *http.CostCenterHandler
	teamExpenseHandler *http.TeamExpenseHandler
	summaryHandler     *http.SummaryHandler
	cfg                *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	transactionHandler *http.TransactionHandler,
	costCenterHandler *http.CostCenterHandler,
	teamExpenseHandler *http.TeamExpenseHandler,
	summaryHandler *http.SummaryHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		transactionHandler: transactionHandler,
		costCenterHandler:  costCenterHandler,
		teamExpenseHandler: teamExpenseHandler,
		summaryHandler:     summaryHandler,
		cfg:                cfg,
	}
}

// RegisterRoutes registers the finance routes, all behind JWT
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("", middleware.JWTMiddleware(h.cfg))

	txGroup := protected.Group("/transactions")
	txGroup.POST("", h.transactionHandler.CreateTransaction)
	txGroup.GET("", h.transactionHandler.ListTransactions)
	txGroup.PUT("/:id", h.transactionHandler.UpdateTransaction)
	txGroup.POST("/:id/pay", h.transactionHandler.MarkTransactionPaid)
	txGroup.DELETE("/:id", h.transactionHandler.DeleteTransaction)

	ccGroup := protected.Group("/cost-centers")
	ccGroup.POST("", h.costCenterHandler.CreateCostCenter)
	ccGroup.GET("", h.costCenterHandler.ListCostCenters)
	ccGroup.PUT("/:id", h.costCenterHandler.UpdateCostCenter)
	ccGroup.DELETE("/:id", h.costCenterHandler.DeleteCostCenter)

	colGroup := protected.Group("/columns")
	colGroup.POST("", h.costCenterHandler.CreateColumn)
	colGroup.GET("", h.costCenterHandler.ListColumns)
	colGroup.PUT("/:id", h.costCenterHandler.RenameColumn)
	colGroup.POST("/:id/main", h.costCenterHandler.SetMainColumn)
	colGroup.DELETE("/:id", h.costCenterHandler.DeleteColumn)

	expGroup := protected.Group("/team-expenses")
	expGroup.POST("", h.teamExpenseHandler.CreateTeamExpense)
	expGroup.GET("", h.teamExpenseHandler.ListTeamExpenses)
	expGroup.PUT("/:id", h.teamExpenseHandler.UpdateTeamExpense)
	expGroup.POST("/:id/pay", h.teamExpenseHandler.MarkTeamExpensePaid)
	expGroup.DELETE("/:id", h.teamExpenseHandler.DeleteTeamExpense)

	protected.GET("/summary", h.summaryHandler.GetSummary)
}
