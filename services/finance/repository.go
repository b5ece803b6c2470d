package finance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/contaflux/contaflux/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/contaflux/contaflux/services/finance FinanceRepo

// FinanceRepo defines the finance repository interface
type FinanceRepo interface {
	// Transactions
	CreateTransactions(ctx context.Context, txs []models.Transaction) error
	GetTransaction(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, tx *models.Transaction) error
	SoftDeleteTransaction(ctx context.Context, userID, id uuid.UUID, deletedAt time.Time) error
	ListTransactions(ctx context.Context, userID uuid.UUID, month *time.Time) ([]models.Transaction, error)

	// Cost centers
	CreateCostCenter(ctx context.Context, cc *models.CostCenter) error
	UpdateCostCenter(ctx context.Context, cc *models.CostCenter) error
	DeleteCostCenter(ctx context.Context, userID, id uuid.UUID) error
	ListCostCenters(ctx context.Context, userID uuid.UUID) ([]models.CostCenter, error)

	// Custom columns
	CreateColumn(ctx context.Context, col *models.CustomColumn) error
	UpdateColumn(ctx context.Context, col *models.CustomColumn) error
	GetColumn(ctx context.Context, userID, id uuid.UUID) (*models.CustomColumn, error)
	DeleteColumn(ctx context.Context, userID, id uuid.UUID) error
	ListColumns(ctx context.Context, userID uuid.UUID) ([]models.CustomColumn, error)
	SetMainColumn(ctx context.Context, userID, id uuid.UUID) error

	// Team expenses
	CreateTeamExpense(ctx context.Context, expense *models.TeamExpense) error
	GetTeamExpense(ctx context.Context, userID, id uuid.UUID) (*models.TeamExpense, error)
	UpdateTeamExpense(ctx context.Context, expense *models.TeamExpense) error
	SoftDeleteTeamExpense(ctx context.Context, userID, id uuid.UUID, deletedAt time.Time) error
	ListTeamExpenses(ctx context.Context, userID uuid.UUID) ([]models.TeamExpense, error)
}
