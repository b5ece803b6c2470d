package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/services/finance"
)

func validateTransactionInput(txType string, amount float64, status string) error {
	if txType != models.TransactionTypeIncome && txType != models.TransactionTypeExpense {
		return fmt.Errorf("transaction type must be income or expense")
	}
	if amount < 0 {
		return fmt.Errorf("amount must be non-negative")
	}
	if status != models.TransactionStatusPending && status != models.TransactionStatusPaid {
		return fmt.Errorf("status must be pending or paid")
	}
	return nil
}

// CreateTransaction records a single entry, or expands an installment plan
// into a synthetic parent row plus one concrete row per installment.
func (uc *FinanceUC) CreateTransaction(ctx context.Context, userID uuid.UUID, req *models.CreateTransactionRequest) ([]models.Transaction, error) {
	if req.Status == "" {
		req.Status = models.TransactionStatusPending
	}
	if err := validateTransactionInput(req.Type, req.Amount, req.Status); err != nil {
		return nil, err
	}
	if req.Description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if req.TransactionDate.IsZero() {
		req.TransactionDate = time.Now()
	}

	var rows []models.Transaction
	if req.Installments > 1 {
		rows = expandInstallments(userID, req)
	} else {
		rows = []models.Transaction{{
			ID:              uuid.New(),
			UserID:          userID,
			Description:     req.Description,
			Amount:          req.Amount,
			Type:            req.Type,
			TransactionDate: req.TransactionDate,
			DueDate:         req.DueDate,
			Status:          req.Status,
			CostCenterID:    req.CostCenterID,
		}}
	}

	now := time.Now()
	for i := range rows {
		rows[i].CreatedAt = now
		rows[i].UpdatedAt = now
	}

	if err := uc.financeRepo.CreateTransactions(ctx, rows); err != nil {
		return nil, fmt.Errorf("failed to create transactions: %w", err)
	}

	return rows, nil
}

// expandInstallments builds the parent placeholder plus N concrete rows.
// The parent carries the full amount but is excluded from every aggregation.
func expandInstallments(userID uuid.UUID, req *models.CreateTransactionRequest) []models.Transaction {
	n := req.Installments
	parentID := uuid.New()
	perInstallment := req.Amount / float64(n)

	rows := make([]models.Transaction, 0, n+1)
	rows = append(rows, models.Transaction{
		ID:                  parentID,
		UserID:              userID,
		Description:         req.Description,
		Amount:              req.Amount,
		Type:                req.Type,
		TransactionDate:     req.TransactionDate,
		DueDate:             req.DueDate,
		Status:              req.Status,
		CostCenterID:        req.CostCenterID,
		InstallmentTotal:    n,
		IsInstallmentParent: true,
	})

	for i := 1; i <= n; i++ {
		txDate := req.TransactionDate.AddDate(0, i-1, 0)
		var dueDate *time.Time
		if req.DueDate != nil {
			d := req.DueDate.AddDate(0, i-1, 0)
			dueDate = &d
		}

		pid := parentID
		rows = append(rows, models.Transaction{
			ID:                uuid.New(),
			UserID:            userID,
			Description:       fmt.Sprintf("%s (%d/%d)", req.Description, i, n),
			Amount:            perInstallment,
			Type:              req.Type,
			TransactionDate:   txDate,
			DueDate:           dueDate,
			Status:            req.Status,
			CostCenterID:      req.CostCenterID,
			InstallmentNumber: i,
			InstallmentTotal:  n,
			ParentID:          &pid,
			IsInstallment:     true,
		})
	}

	return rows
}

// UpdateTransaction applies an edit to an existing row
func (uc *FinanceUC) UpdateTransaction(ctx context.Context, userID, id uuid.UUID, req *models.UpdateTransactionRequest) (*models.Transaction, error) {
	tx, err := uc.financeRepo.GetTransaction(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if tx == nil {
		return nil, finance.ErrNotFound
	}

	if req.Description != nil {
		tx.Description = *req.Description
	}
	if req.Amount != nil {
		if *req.Amount < 0 {
			return nil, fmt.Errorf("amount must be non-negative")
		}
		tx.Amount = *req.Amount
	}
	if req.TransactionDate != nil {
		tx.TransactionDate = *req.TransactionDate
	}
	if req.DueDate != nil {
		tx.DueDate = req.DueDate
	}
	if req.Status != nil {
		if *req.Status != models.TransactionStatusPending && *req.Status != models.TransactionStatusPaid {
			return nil, fmt.Errorf("status must be pending or paid")
		}
		tx.Status = *req.Status
	}
	if req.CostCenterID != nil {
		tx.CostCenterID = req.CostCenterID
	}
	tx.UpdatedAt = time.Now()

	if err := uc.financeRepo.UpdateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return tx, nil
}

// MarkTransactionPaid sets status=paid and stamps the payment date
func (uc *FinanceUC) MarkTransactionPaid(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error) {
	tx, err := uc.financeRepo.GetTransaction(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if tx == nil {
		return nil, finance.ErrNotFound
	}

	now := time.Now()
	tx.Status = models.TransactionStatusPaid
	tx.PaymentDate = &now
	tx.UpdatedAt = now

	if err := uc.financeRepo.UpdateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to mark transaction paid: %w", err)
	}

	return tx, nil
}

// DeleteTransaction soft-deletes a row by stamping deleted_at
func (uc *FinanceUC) DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error {
	tx, err := uc.financeRepo.GetTransaction(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("failed to get transaction: %w", err)
	}
	if tx == nil {
		return finance.ErrNotFound
	}

	if err := uc.financeRepo.SoftDeleteTransaction(ctx, userID, id, time.Now()); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return nil
}

// ListTransactions returns the user's non-deleted rows, optionally filtered to a month
func (uc *FinanceUC) ListTransactions(ctx context.Context, userID uuid.UUID, month *time.Time) ([]models.Transaction, error) {
	txs, err := uc.financeRepo.ListTransactions(ctx, userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}
