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

// CreateCostCenter inserts a cost center row
func (r *FinanceRepo) CreateCostCenter(ctx context.Context, cc *models.CostCenter) error {
	query := `
		INSERT INTO cost_centers (id, user_id, name, type, column_id, created_at, updated_at)
		VALUES (:id, :user_id, :name, :type, :column_id, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, cc); err != nil {
		return fmt.Errorf("failed to insert cost center: %w", err)
	}
	return nil
}

// UpdateCostCenter overwrites a cost center's name, type and column grouping
func (r *FinanceRepo) UpdateCostCenter(ctx context.Context, cc *models.CostCenter) error {
	query := `
		UPDATE cost_centers
		SET name = :name, type = :type, column_id = :column_id, updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id
	`

	result, err := r.db.NamedExecContext(ctx, query, cc)
	if err != nil {
		return fmt.Errorf("failed to update cost center: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("cost center not found")
	}
	return nil
}

// DeleteCostCenter removes a cost center and untags its transactions
func (r *FinanceRepo) DeleteCostCenter(ctx context.Context, userID, id uuid.UUID) error {
	dbTx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `
		UPDATE transactions SET cost_center_id = NULL
		WHERE cost_center_id = $1 AND user_id = $2
	`, id, userID); err != nil {
		return fmt.Errorf("failed to untag transactions: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, `
		DELETE FROM cost_centers WHERE id = $1 AND user_id = $2
	`, id, userID); err != nil {
		return fmt.Errorf("failed to delete cost center: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListCostCenters returns the user's cost centers ordered by name
func (r *FinanceRepo) ListCostCenters(ctx context.Context, userID uuid.UUID) ([]models.CostCenter, error) {
	query := `
		SELECT id, user_id, name, type, column_id, created_at, updated_at
		FROM cost_centers
		WHERE user_id = $1
		ORDER BY name
	`

	centers := []models.CostCenter{}
	if err := r.db.SelectContext(ctx, &centers, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list cost centers: %w", err)
	}
	return centers, nil
}

// CreateColumn inserts a custom column row
func (r *FinanceRepo) CreateColumn(ctx context.Context, col *models.CustomColumn) error {
	query := `
		INSERT INTO custom_columns (id, user_id, name, position, is_main, created_at, updated_at)
		VALUES (:id, :user_id, :name, :position, :is_main, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, col); err != nil {
		return fmt.Errorf("failed to insert column: %w", err)
	}
	return nil
}

// GetColumn retrieves one column scoped to the user.
// Returns nil without error when no row exists.
func (r *FinanceRepo) GetColumn(ctx context.Context, userID, id uuid.UUID) (*models.CustomColumn, error) {
	query := `
		SELECT id, user_id, name, position, is_main, created_at, updated_at
		FROM custom_columns
		WHERE id = $1 AND user_id = $2
	`

	var col models.CustomColumn
	err := r.db.GetContext(ctx, &col, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get column: %w", err)
	}
	return &col, nil
}

// UpdateColumn overwrites a column's name and position
func (r *FinanceRepo) UpdateColumn(ctx context.Context, col *models.CustomColumn) error {
	query := `
		UPDATE custom_columns
		SET name = :name, position = :position, updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id
	`

	result, err := r.db.NamedExecContext(ctx, query, col)
	if err != nil {
		return fmt.Errorf("failed to update column: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("column not found")
	}
	return nil
}

// DeleteColumn removes a column and ungroups its cost centers
func (r *FinanceRepo) DeleteColumn(ctx context.Context, userID, id uuid.UUID) error {
	dbTx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `
		UPDATE cost_centers SET column_id = NULL
		WHERE column_id = $1 AND user_id = $2
	`, id, userID); err != nil {
		return fmt.Errorf("failed to ungroup cost centers: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, `
		DELETE FROM custom_columns WHERE id = $1 AND user_id = $2
	`, id, userID); err != nil {
		return fmt.Errorf("failed to delete column: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListColumns returns the user's columns ordered by position
func (r *FinanceRepo) ListColumns(ctx context.Context, userID uuid.UUID) ([]models.CustomColumn, error) {
	query := `
		SELECT id, user_id, name, position, is_main, created_at, updated_at
		FROM custom_columns
		WHERE user_id = $1
		ORDER BY position
	`

	cols := []models.CustomColumn{}
	if err := r.db.SelectContext(ctx, &cols, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list columns: %w", err)
	}
	return cols, nil
}

// SetMainColumn swaps the main flag to the given column atomically:
// the previous main is cleared and the new one set in one transaction
func (r *FinanceRepo) SetMainColumn(ctx context.Context, userID, id uuid.UUID) error {
	dbTx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	now := time.Now()

	if _, err := dbTx.ExecContext(ctx, `
		UPDATE custom_columns SET is_main = FALSE, updated_at = $1
		WHERE user_id = $2 AND is_main = TRUE
	`, now, userID); err != nil {
		return fmt.Errorf("failed to clear main column: %w", err)
	}

	result, err := dbTx.ExecContext(ctx, `
		UPDATE custom_columns SET is_main = TRUE, updated_at = $1
		WHERE id = $2 AND user_id = $3
	`, now, id, userID)
	if err != nil {
		return fmt.Errorf("failed to set main column: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("column not found")
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
