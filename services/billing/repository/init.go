package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/contaflux/contaflux/internal/pkg/database"
	"github.com/contaflux/contaflux/internal/pkg/models"
)

type BillingRepo struct {
	cfg   *models.Config
	db    *sqlx.DB
	cache *database.RedisClient
}

// NewBillingRepo creates a new billing repository instance
func NewBillingRepo(cfg *models.Config, db *sqlx.DB, cache *database.RedisClient) *BillingRepo {
	return &BillingRepo{
		cfg:   cfg,
		db:    db,
		cache: cache,
	}
}
