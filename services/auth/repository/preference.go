package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/contaflux/contaflux/internal/pkg/models"
)

// GetPreferences returns all preference records for a user
func (r *AuthRepo) GetPreferences(ctx context.Context, userID uuid.UUID) ([]models.UserPreference, error) {
	query := `
		SELECT user_id, key, value, updated_at
		FROM user_preferences
		WHERE user_id = $1
		ORDER BY key
	`

	prefs := []models.UserPreference{}
	err := r.db.SelectContext(ctx, &prefs, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	return prefs, nil
}

// UpsertPreference inserts or overwrites a preference record on (user_id, key)
func (r *AuthRepo) UpsertPreference(ctx context.Context, pref *models.UserPreference) error {
	query := `
		INSERT INTO user_preferences (user_id, key, value, updated_at)
		VALUES (:user_id, :key, :value, :updated_at)
		ON CONFLICT (user_id, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.NamedExecContext(ctx, query, pref)
	if err != nil {
		return fmt.Errorf("failed to upsert preference: %w", err)
	}

	return nil
}
