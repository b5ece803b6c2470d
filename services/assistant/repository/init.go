package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/contaflux/contaflux/internal/pkg/constants"
	"github.com/contaflux/contaflux/internal/pkg/database"
	"github.com/contaflux/contaflux/internal/pkg/models"
)

// Counter keys live slightly longer than a day so a midnight-straddling
// conversation still sees its own count
const usageKeyTTL = 25 * time.Hour

type AssistantRepo struct {
	cfg   *models.Config
	cache *database.RedisClient
}

// NewAssistantRepo creates a new assistant repository instance
func NewAssistantRepo(cfg *models.Config, cache *database.RedisClient) *AssistantRepo {
	return &AssistantRepo{
		cfg:   cfg,
		cache: cache,
	}
}

// IncrementDailyUsage bumps the user's counter for the day and returns the
// new count. The expiry is only stamped on first use.
func (r *AssistantRepo) IncrementDailyUsage(ctx context.Context, userID uuid.UUID, day string) (int64, error) {
	key := fmt.Sprintf(constants.KeyAssistantChatQuota, userID.String(), day)

	count, err := r.cache.Incr(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("failed to increment chat usage: %w", err)
	}

	if count == 1 {
		if err := r.cache.Expire(ctx, key, usageKeyTTL); err != nil {
			return count, fmt.Errorf("failed to expire chat usage key: %w", err)
		}
	}

	return count, nil
}
