package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contaflux/contaflux/internal/pkg/constants"
	"github.com/contaflux/contaflux/internal/pkg/database"
	"github.com/contaflux/contaflux/internal/pkg/models"
)

func newCacheRepo(t *testing.T) (*BillingRepo, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cfg := &models.Config{}
	cfg.Billing.StatusCacheTTL = 60
	return NewBillingRepo(cfg, nil, database.NewRedisClientFromClient(client)), mr
}

func TestStatusCache_RoundTrip(t *testing.T) {
	repo, mr := newCacheRepo(t)

	userID := uuid.New()
	planID := "monthly"
	end := time.Now().AddDate(0, 1, 0).Format(time.RFC3339)
	status := &models.SubscriptionStatus{
		Subscribed:      true,
		ProductID:       &planID,
		SubscriptionEnd: &end,
	}

	require.NoError(t, repo.SetCachedStatus(context.Background(), userID, status))

	got, err := repo.GetCachedStatus(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, status.Subscribed, got.Subscribed)
	assert.Equal(t, *status.ProductID, *got.ProductID)
	assert.Equal(t, *status.SubscriptionEnd, *got.SubscriptionEnd)

	// TTL comes from config
	key := fmt.Sprintf(constants.KeyBillingStatus, userID.String())
	assert.InDelta(t, 60*time.Second, mr.TTL(key), float64(time.Second))
}

func TestStatusCache_MissReturnsNil(t *testing.T) {
	repo, _ := newCacheRepo(t)

	got, err := repo.GetCachedStatus(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStatusCache_Invalidate(t *testing.T) {
	repo, mr := newCacheRepo(t)

	userID := uuid.New()
	status := &models.SubscriptionStatus{Subscribed: false}
	require.NoError(t, repo.SetCachedStatus(context.Background(), userID, status))

	require.NoError(t, repo.InvalidateStatus(context.Background(), userID))

	key := fmt.Sprintf(constants.KeyBillingStatus, userID.String())
	assert.False(t, mr.Exists(key))
}
