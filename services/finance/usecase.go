package finance

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/contaflux/contaflux/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/contaflux/contaflux/services/finance FinanceUC

// Errors the handlers translate into HTTP status codes
var (
	ErrNotFound = errors.New("record not found")
)

// FinanceUC represents the finance usecase interface
type FinanceUC interface {
	// Transactions
	CreateTransaction(ctx context.Context, userID uuid.UUID, req *models.CreateTransactionRequest) ([]models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, id uuid.UUID, req *models.UpdateTransactionRequest) (*models.Transaction, error)
	MarkTransactionPaid(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error
	ListTransactions(ctx context.Context, userID uuid.UUID, month *time.Time) ([]models.Transaction, error)

	// Cost centers
	CreateCostCenter(ctx context.Context, userID uuid.UUID, cc *models.CostCenter) (*models.CostCenter, error)
	UpdateCostCenter(ctx context.Context, userID uuid.UUID, cc *models.CostCenter) (*models.CostCenter, error)
	DeleteCostCenter(ctx context.Context, userID, id uuid.UUID) error
	ListCostCenters(ctx context.Context, userID uuid.UUID) ([]models.CostCenter, error)

	// Custom columns
	CreateColumn(ctx context.Context, userID uuid.UUID, name string) (*models.CustomColumn, error)
	RenameColumn(ctx context.Context, userID, id uuid.UUID, name string) (*models.CustomColumn, error)
	DeleteColumn(ctx context.Context, userID, id uuid.UUID) error
	ListColumns(ctx context.Context, userID uuid.UUID) ([]models.CustomColumn, error)
	SetMainColumn(ctx context.Context, userID, id uuid.UUID) error

	// Team expenses
	CreateTeamExpense(ctx context.Context, userID uuid.UUID, expense *models.TeamExpense) (*models.TeamExpense, error)
	UpdateTeamExpense(ctx context.Context, userID uuid.UUID, expense *models.TeamExpense) (*models.TeamExpense, error)
	MarkTeamExpensePaid(ctx context.Context, userID, id uuid.UUID) (*models.TeamExpense, error)
	DeleteTeamExpense(ctx context.Context, userID, id uuid.UUID) error
	ListTeamExpenses(ctx context.Context, userID uuid.UUID) ([]models.TeamExpense, error)

	// Summary
	GetSummary(ctx context.Context, userID uuid.UUID, refMonth time.Time) (*models.FinancialSummary, error)
}
