package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/contaflux/contaflux/internal/pkg/models"
)

type AuthRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAuthRepo creates a new auth repository instance
func NewAuthRepo(cfg *models.Config, db *sqlx.DB) *AuthRepo {
	return &AuthRepo{
		cfg: cfg,
		db:  db,
	}
}
