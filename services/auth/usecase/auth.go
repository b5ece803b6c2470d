package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/contaflux/contaflux/internal/pkg/jwt"
	"github.com/contaflux/contaflux/internal/pkg/logger"
	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/internal/utils"
	"github.com/contaflux/contaflux/services/auth"
)

const minPasswordLength = 8

// Signup registers a new account, starts its trial subscription and returns a signed token
func (uc *AuthUC) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !utils.IsValidEmail(email) {
		return nil, fmt.Errorf("invalid email address")
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	existing, err := uc.authRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, auth.ErrEmailTaken
	}

	cost := uc.cfg.Auth.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		CompanyName:  req.CompanyName,
		IsActive:     true,
	}

	if err := uc.authRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// New accounts start on a trial row so the dashboard opens immediately
	if err := uc.trials.CreateTrial(ctx, user.ID, uc.cfg.Auth.TrialDays); err != nil {
		logger.Error("Failed to create trial subscription",
			logger.String("user_id", user.ID.String()),
			logger.Err(err))
		return nil, fmt.Errorf("failed to create trial subscription: %w", err)
	}

	return uc.issueToken(user)
}

// Login verifies credentials and returns a signed token
func (uc *AuthUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := uc.authRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	return uc.issueToken(user)
}

// GetProfile returns the account row for the authenticated user
func (uc *AuthUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := uc.authRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, auth.ErrUserNotFound
	}
	return user, nil
}

func (uc *AuthUC) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwt.GenerateToken(user.ID, user.Email, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}
