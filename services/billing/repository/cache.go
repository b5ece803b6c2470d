package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/contaflux/contaflux/internal/pkg/constants"
	"github.com/contaflux/contaflux/internal/pkg/models"
)

const defaultStatusCacheTTL = 5 * time.Minute

// GetCachedStatus reads the cached gate answer. A missing key is not an error.
func (r *BillingRepo) GetCachedStatus(ctx context.Context, userID uuid.UUID) (*models.SubscriptionStatus, error) {
	key := fmt.Sprintf(constants.KeyBillingStatus, userID.String())

	raw, err := r.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read status cache: %w", err)
	}

	var status models.SubscriptionStatus
	if err := json.Unmarshal([]byte(raw), &status); err != nil {
		return nil, fmt.Errorf("failed to decode cached status: %w", err)
	}

	return &status, nil
}

// SetCachedStatus stores the gate answer with the configured TTL
func (r *BillingRepo) SetCachedStatus(ctx context.Context, userID uuid.UUID, status *models.SubscriptionStatus) error {
	key := fmt.Sprintf(constants.KeyBillingStatus, userID.String())

	payload, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to encode status: %w", err)
	}

	ttl := defaultStatusCacheTTL
	if r.cfg.Billing.StatusCacheTTL > 0 {
		ttl = time.Duration(r.cfg.Billing.StatusCacheTTL) * time.Second
	}

	if err := r.cache.Set(ctx, key, payload, ttl); err != nil {
		return fmt.Errorf("failed to write status cache: %w", err)
	}

	return nil
}

// InvalidateStatus drops the cached gate answer so the next check re-derives it
func (r *BillingRepo) InvalidateStatus(ctx context.Context, userID uuid.UUID) error {
	key := fmt.Sprintf(constants.KeyBillingStatus, userID.String())

	if err := r.cache.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to invalidate status cache: %w", err)
	}

	return nil
}
