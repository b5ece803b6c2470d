package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/contaflux/contaflux/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/contaflux/contaflux/services/auth AuthUC

// Errors the handlers translate into HTTP status codes
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthUC represents the auth usecase interface
type AuthUC interface {
	Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)

	// user preferences
	GetPreferences(ctx context.Context, userID uuid.UUID) ([]models.UserPreference, error)
	SetPreference(ctx context.Context, userID uuid.UUID, key, value string) (*models.UserPreference, error)
}
