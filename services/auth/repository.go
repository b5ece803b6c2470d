package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/contaflux/contaflux/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/contaflux/contaflux/services/auth AuthRepo,TrialCreator

// AuthRepo defines the auth repository interface
type AuthRepo interface {
	// User management
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// Preference management
	GetPreferences(ctx context.Context, userID uuid.UUID) ([]models.UserPreference, error)
	UpsertPreference(ctx context.Context, pref *models.UserPreference) error
}

// TrialCreator starts the initial trial subscription for a new account.
// Implemented by the billing repository.
type TrialCreator interface {
	CreateTrial(ctx context.Context, userID uuid.UUID, trialDays int) error
}
