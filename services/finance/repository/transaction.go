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

// CreateTransactions inserts one or more rows in a single database transaction,
// so an installment plan is stored all-or-nothing
func (r *FinanceRepo) CreateTransactions(ctx context.Context, txs []models.Transaction) error {
	dbTx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO transactions (id, user_id, description, amount, type,
			transaction_date, due_date, payment_date, status, cost_center_id,
			installment_number, installment_total, parent_id, is_installment,
			is_installment_parent, created_at, updated_at
		) VALUES (:id, :user_id, :description, :amount, :type,
			:transaction_date, :due_date, :payment_date, :status, :cost_center_id,
			:installment_number, :installment_total, :parent_id, :is_installment,
			:is_installment_parent, :created_at, :updated_at)
	`

	for i := range txs {
		if _, err := dbTx.NamedExecContext(ctx, query, &txs[i]); err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetTransaction retrieves one non-deleted row scoped to the user.
// Returns nil without error when no row exists.
func (r *FinanceRepo) GetTransaction(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error) {
	query := `
		SELECT t.id, t.user_id, t.description, t.amount, t.type,
			t.transaction_date, t.due_date, t.payment_date, t.status, t.cost_center_id,
			t.installment_number, t.installment_total, t.parent_id, t.is_installment,
			t.is_installment_parent, t.created_at, t.updated_at, t.deleted_at,
			COALESCE(c.name, '') AS cost_center_name
		FROM transactions t
		LEFT JOIN cost_centers c ON c.id = t.cost_center_id
		WHERE t.id = $1 AND t.user_id = $2 AND t.deleted_at IS NULL
	`

	var tx models.Transaction
	err := r.db.GetContext(ctx, &tx, query, id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &tx, nil
}

// UpdateTransaction overwrites an existing row's mutable fields
func (r *FinanceRepo) UpdateTransaction(ctx context.Context, tx *models.Transaction) error {
	query := `
		UPDATE transactions
		SET description = :description,
			amount = :amount,
			transaction_date = :transaction_date,
			due_date = :due_date,
			payment_date = :payment_date,
			status = :status,
			cost_center_id = :cost_center_id,
			updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id AND deleted_at IS NULL
	`

	result, err := r.db.NamedExecContext(ctx, query, tx)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("transaction not found")
	}

	return nil
}

// SoftDeleteTransaction stamps deleted_at; rows are never physically removed
func (r *FinanceRepo) SoftDeleteTransaction(ctx context.Context, userID, id uuid.UUID, deletedAt time.Time) error {
	query := `
		UPDATE transactions
		SET deleted_at = $1, updated_at = $1
		WHERE id = $2 AND user_id = $3 AND deleted_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, deletedAt, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("transaction not found")
	}

	return nil
}

// ListTransactions returns the user's non-deleted rows, newest first,
// optionally limited to the given calendar month
func (r *FinanceRepo) ListTransactions(ctx context.Context, userID uuid.UUID, month *time.Time) ([]models.Transaction, error) {
	query := `
		SELECT t.id, t.user_id, t.description, t.amount, t.type,
			t.transaction_date, t.due_date, t.payment_date, t.status, t.cost_center_id,
			t.installment_number, t.installment_total, t.parent_id, t.is_installment,
			t.is_installment_parent, t.created_at, t.updated_at, t.deleted_at,
			COALESCE(c.name, '') AS cost_center_name
		FROM transactions t
		LEFT JOIN cost_centers c ON c.id = t.cost_center_id
		WHERE t.user_id = $1 AND t.deleted_at IS NULL
	`
	args := []interface{}{userID}

	if month != nil {
		monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
		query += ` AND t.transaction_date >= $2 AND t.transaction_date < $3`
		args = append(args, monthStart, monthStart.AddDate(0, 1, 0))
	}

	query += ` ORDER BY t.transaction_date DESC, t.created_at DESC`

	txs := []models.Transaction{}
	if err := r.db.SelectContext(ctx, &txs, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return txs, nil
}
