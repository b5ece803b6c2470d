package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/contaflux/contaflux/internal/pkg/models"
)

// CreateTeamExpense inserts an ancillary expense row
func (r *FinanceRepo) CreateTeamExpense(ctx context.Context, expense *models.TeamExpense) error {
	query := `
		INSERT INTO team_expenses (id, user_id, description, amount, date, status, created_at, updated_at)
		VALUES (:id, :user_id, :description, :amount, :date, :status, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, expense); err != nil {
		return fmt.Errorf("failed to insert team expense: %w", err)
	}
	return nil
}

// GetTeamExpense retrieves one non-deleted ancillary expense scoped to the user.
// Returns nil without error when no row exists.
func (r *FinanceRepo) GetTeamExpense(ctx context.Context, userID, id uuid.UUID) (*models.TeamExpense, error) {
	query := `
		SELECT id, user_id, description, amount, date, status, created_at, updated_at, deleted_at
		FROM team_expenses
		WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
	`

	var expense models.TeamExpense
	err := r.db.GetContext(ctx, &expense, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get team expense: %w", err)
	}
	return &expense, nil
}

// UpdateTeamExpense overwrites an ancillary expense's mutable fields
func (r *FinanceRepo) UpdateTeamExpense(ctx context.Context, expense *models.TeamExpense) error {
	query := `
		UPDATE team_expenses
		SET description = :description, amount = :amount, date = :date,
			status = :status, updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id AND deleted_at IS NULL
	`

	result, err := r.db.NamedExecContext(ctx, query, expense)
	if err != nil {
		return fmt.Errorf("failed to update team expense: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("team expense not found")
	}
	return nil
}

// SoftDeleteTeamExpense stamps deleted_at on an ancillary expense
func (r *FinanceRepo) SoftDeleteTeamExpense(ctx context.Context, userID, id uuid.UUID, deletedAt time.Time) error {
	query := `
		UPDATE team_expenses
		SET deleted_at = $1, updated_at = $1
		WHERE id = $2 AND user_id = $3 AND deleted_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, deletedAt, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete team expense: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("team expense not found")
	}
	return nil
}

// ListTeamExpenses returns the user's non-deleted ancillary expenses, newest first
func (r *FinanceRepo) ListTeamExpenses(ctx context.Context, userID uuid.UUID) ([]models.TeamExpense, error) {
	query := `
		SELECT id, user_id, description, amount, date, status, created_at, updated_at, deleted_at
		FROM team_expenses
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY date DESC
	`

	expenses := []models.TeamExpense{}
	if err := r.db.SelectContext(ctx, &expenses, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list team expenses: %w", err)
	}
	return expenses, nil
}
