package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/services/finance"
)

// CreateCostCenter creates a named bucket transactions can be tagged with
func (uc *FinanceUC) CreateCostCenter(ctx context.Context, userID uuid.UUID, cc *models.CostCenter) (*models.CostCenter, error) {
	if cc.Name == "" {
		return nil, fmt.Errorf("cost center name is required")
	}
	if cc.Type != models.TransactionTypeIncome && cc.Type != models.TransactionTypeExpense {
		return nil, fmt.Errorf("cost center type must be income or expense")
	}

	cc.ID = uuid.New()
	cc.UserID = userID
	now := time.Now()
	cc.CreatedAt = now
	cc.UpdatedAt = now

	if err := uc.financeRepo.CreateCostCenter(ctx, cc); err != nil {
		return nil, fmt.Errorf("failed to create cost center: %w", err)
	}
	return cc, nil
}

// UpdateCostCenter edits a cost center's name, type or column grouping
func (uc *FinanceUC) UpdateCostCenter(ctx context.Context, userID uuid.UUID, cc *models.CostCenter) (*models.CostCenter, error) {
	if cc.Name == "" {
		return nil, fmt.Errorf("cost center name is required")
	}
	if cc.Type != models.TransactionTypeIncome && cc.Type != models.TransactionTypeExpense {
		return nil, fmt.Errorf("cost center type must be income or expense")
	}

	cc.UserID = userID
	cc.UpdatedAt = time.Now()

	if err := uc.financeRepo.UpdateCostCenter(ctx, cc); err != nil {
		return nil, fmt.Errorf("failed to update cost center: %w", err)
	}
	return cc, nil
}

// DeleteCostCenter removes a cost center; tagged transactions fall back to untagged
func (uc *FinanceUC) DeleteCostCenter(ctx context.Context, userID, id uuid.UUID) error {
	if err := uc.financeRepo.DeleteCostCenter(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete cost center: %w", err)
	}
	return nil
}

// ListCostCenters returns all the user's cost centers
func (uc *FinanceUC) ListCostCenters(ctx context.Context, userID uuid.UUID) ([]models.CostCenter, error) {
	centers, err := uc.financeRepo.ListCostCenters(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cost centers: %w", err)
	}
	return centers, nil
}

// CreateColumn creates a grouping column at the next position.
// The first column a user creates becomes the main one.
func (uc *FinanceUC) CreateColumn(ctx context.Context, userID uuid.UUID, name string) (*models.CustomColumn, error) {
	if name == "" {
		return nil, fmt.Errorf("column name is required")
	}

	existing, err := uc.financeRepo.ListColumns(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns: %w", err)
	}

	col := &models.CustomColumn{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     name,
		Position: len(existing) + 1,
		IsMain:   len(existing) == 0,
	}
	now := time.Now()
	col.CreatedAt = now
	col.UpdatedAt = now

	if err := uc.financeRepo.CreateColumn(ctx, col); err != nil {
		return nil, fmt.Errorf("failed to create column: %w", err)
	}
	return col, nil
}

// RenameColumn renames a grouping column
func (uc *FinanceUC) RenameColumn(ctx context.Context, userID, id uuid.UUID, name string) (*models.CustomColumn, error) {
	if name == "" {
		return nil, fmt.Errorf("column name is required")
	}

	col, err := uc.financeRepo.GetColumn(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get column: %w", err)
	}
	if col == nil {
		return nil, finance.ErrNotFound
	}

	col.Name = name
	col.UpdatedAt = time.Now()

	if err := uc.financeRepo.UpdateColumn(ctx, col); err != nil {
		return nil, fmt.Errorf("failed to rename column: %w", err)
	}
	return col, nil
}

// DeleteColumn removes a grouping column
func (uc *FinanceUC) DeleteColumn(ctx context.Context, userID, id uuid.UUID) error {
	if err := uc.financeRepo.DeleteColumn(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to delete column: %w", err)
	}
	return nil
}

// ListColumns returns the user's grouping columns ordered by position
func (uc *FinanceUC) ListColumns(ctx context.Context, userID uuid.UUID) ([]models.CustomColumn, error) {
	cols, err := uc.financeRepo.ListColumns(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list columns: %w", err)
	}
	return cols, nil
}

// SetMainColumn marks one column as main, clearing the previous main flag
// in the same database transaction
func (uc *FinanceUC) SetMainColumn(ctx context.Context, userID, id uuid.UUID) error {
	col, err := uc.financeRepo.GetColumn(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("failed to get column: %w", err)
	}
	if col == nil {
		return finance.ErrNotFound
	}

	if err := uc.financeRepo.SetMainColumn(ctx, userID, id); err != nil {
		return fmt.Errorf("failed to set main column: %w", err)
	}
	return nil
}
