package usecase

import (
	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/services/auth"
)

type AuthUC struct {
	authRepo auth.AuthRepo
	trials   auth.TrialCreator
	cfg      *models.Config
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	authRepo auth.AuthRepo,
	trials auth.TrialCreator,
	cfg *models.Config,
) *AuthUC {
	return &AuthUC{
		authRepo: authRepo,
		trials:   trials,
		cfg:      cfg,
	}
}
