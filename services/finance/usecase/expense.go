package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/services/finance"
)

// CreateTeamExpense records an ancillary expense
func (uc *FinanceUC) CreateTeamExpense(ctx context.Context, userID uuid.UUID, expense *models.TeamExpense) (*models.TeamExpense, error) {
	if expense.Description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if expense.Amount < 0 {
		return nil, fmt.Errorf("amount must be non-negative")
	}
	if expense.Status == "" {
		expense.Status = models.TransactionStatusPending
	}
	if expense.Status != models.TransactionStatusPending && expense.Status != models.TransactionStatusPaid {
		return nil, fmt.Errorf("status must be pending or paid")
	}
	if expense.Date.IsZero() {
		expense.Date = time.Now()
	}

	expense.ID = uuid.New()
	expense.UserID = userID
	now := time.Now()
	expense.CreatedAt = now
	expense.UpdatedAt = now

	if err := uc.financeRepo.CreateTeamExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create team expense: %w", err)
	}
	return expense, nil
}

// UpdateTeamExpense edits an ancillary expense
func (uc *FinanceUC) UpdateTeamExpense(ctx context.Context, userID uuid.UUID, expense *models.TeamExpense) (*models.TeamExpense, error) {
	existing, err := uc.financeRepo.GetTeamExpense(ctx, userID, expense.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team expense: %w", err)
	}
	if existing == nil {
		return nil, finance.ErrNotFound
	}

	if expense.Amount < 0 {
		return nil, fmt.Errorf("amount must be non-negative")
	}

	expense.UserID = userID
	expense.CreatedAt = existing.CreatedAt
	expense.UpdatedAt = time.Now()

	if err := uc.financeRepo.UpdateTeamExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update team expense: %w", err)
	}
	return expense, nil
}

// MarkTeamExpensePaid sets status=paid on an ancillary expense
func (uc *FinanceUC) MarkTeamExpensePaid(ctx context.Context, userID, id uuid.UUID) (*models.TeamExpense, error) {
	expense, err := uc.financeRepo.GetTeamExpense(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team expense: %w", err)
	}
	if expense == nil {
		return nil, finance.ErrNotFound
	}

	expense.Status = models.TransactionStatusPaid
	expense.UpdatedAt = time.Now()

	if err := uc.financeRepo.UpdateTeamExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to mark team expense paid: %w", err)
	}
	return expense, nil
}

// DeleteTeamExpense soft-deletes an ancillary expense
func (uc *FinanceUC) DeleteTeamExpense(ctx context.Context, userID, id uuid.UUID) error {
	expense, err := uc.financeRepo.GetTeamExpense(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("failed to get team expense: %w", err)
	}
	if expense == nil {
		return finance.ErrNotFound
	}

	if err := uc.financeRepo.SoftDeleteTeamExpense(ctx, userID, id, time.Now()); err != nil {
		return fmt.Errorf("failed to delete team expense: %w", err)
	}
	return nil
}

// ListTeamExpenses returns the user's non-deleted ancillary expenses
func (uc *FinanceUC) ListTeamExpenses(ctx context.Context, userID uuid.UUID) ([]models.TeamExpense, error) {
	expenses, err := uc.financeRepo.ListTeamExpenses(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team expenses: %w", err)
	}
	return expenses, nil
}
