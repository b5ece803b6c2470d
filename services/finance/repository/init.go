package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/contaflux/contaflux/internal/pkg/models"
)

type FinanceRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewFinanceRepo creates a new finance repository instance
func NewFinanceRepo(cfg *models.Config, db *sqlx.DB) *FinanceRepo {
	return &FinanceRepo{
		cfg: cfg,
		db:  db,
	}
}
