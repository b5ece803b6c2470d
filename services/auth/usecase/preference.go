package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/contaflux/contaflux/internal/pkg/models"
)

// GetPreferences returns all stored preference records for a user
func (uc *AuthUC) GetPreferences(ctx context.Context, userID uuid.UUID) ([]models.UserPreference, error) {
	prefs, err := uc.authRepo.GetPreferences(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	return prefs, nil
}

// SetPreference upserts a keyed preference record. Unknown keys are stored verbatim.
func (uc *AuthUC) SetPreference(ctx context.Context, userID uuid.UUID, key, value string) (*models.UserPreference, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("preference key is required")
	}

	pref := &models.UserPreference{
		UserID:    userID,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	if err := uc.authRepo.UpsertPreference(ctx, pref); err != nil {
		return nil, fmt.Errorf("failed to set preference: %w", err)
	}
	return pref, nil
}
