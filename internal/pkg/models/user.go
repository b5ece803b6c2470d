package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account holder in the system
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FullName     string    `json:"fullname" db:"fullname"`
	CompanyName  string    `json:"company_name" db:"company_name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
	IsActive     bool      `json:"is_active" db:"is_active"`
}

// SignupRequest represents a signup payload
type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FullName    string `json:"fullname"`
	CompanyName string `json:"company_name"`
}

// LoginRequest represents a login payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents the response for successful authentication
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	User      *User  `json:"user,omitempty"`
}

// Known preference keys written by the dashboard
const (
	PrefOnboardingTourSeen     = "onboarding_tour_seen"
	PrefRenewalBannerDismissed = "renewal_banner_dismissed"
	PrefTrialBannerDismissed   = "trial_banner_dismissed"
)

// UserPreference is a keyed per-user preference record
type UserPreference struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Key       string    `json:"key" db:"key"`
	Value     string    `json:"value" db:"value"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
