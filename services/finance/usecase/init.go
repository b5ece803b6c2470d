package usecase

import (
	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/services/finance"
)

type FinanceUC struct {
	financeRepo finance.FinanceRepo
	cfg         *models.Config
}

// NewFinanceUC creates a new finance usecase instance
func NewFinanceUC(
	financeRepo finance.FinanceRepo,
	cfg *models.Config,
) *FinanceUC {
	return &FinanceUC{
		financeRepo: financeRepo,
		cfg:         cfg,
	}
}
