package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/services/billing"
)

func TestCheckStatus_CompEmailBypassesStorage(t *testing.T) {
	cfg := &models.Config{}
	cfg.Billing.CompEmails = []string{"parceiro@contaflux.com.br"}
	uc, _ := newBillingUC(t, cfg)

	status, err := uc.CheckStatus(context.Background(), uuid.New(), "Parceiro@ContaFlux.com.br")

	require.NoError(t, err)
	assert.True(t, status.Subscribed)
	require.NotNil(t, status.ProductID)
	assert.Equal(t, "comp", *status.ProductID)
	assert.Nil(t, status.SubscriptionEnd)
}

func TestCheckStatus_CacheHit(t *testing.T) {
	uc, m := newBillingUC(t, nil)

	userID := uuid.New()
	planID := "monthly"
	cached := &models.SubscriptionStatus{Subscribed: true, ProductID: &planID}

	m.repo.EXPECT().GetCachedStatus(gomock.Any(), userID).Return(cached, nil)

	status, err := uc.CheckStatus(context.Background(), userID, "maria@empresa.com.br")

	require.NoError(t, err)
	assert.Equal(t, cached, status)
}

func TestCheckStatus_DerivesAndCaches(t *testing.T) {
	testCases := []struct {
		name       string
		sub        *models.Subscription
		subscribed bool
	}{
		{
			name: "trial with future due date",
			sub: &models.Subscription{
				Status:      models.SubscriptionStatusTrial,
				PlanID:      "trial",
				NextDueDate: timePtr(time.Now().AddDate(0, 0, 3)),
			},
			subscribed: true,
		},
		{
			name: "expired trial",
			sub: &models.Subscription{
				Status:      models.SubscriptionStatusTrial,
				PlanID:      "trial",
				NextDueDate: timePtr(time.Now().AddDate(0, 0, -1)),
			},
			subscribed: false,
		},
		{
			name: "active with future due date",
			sub: &models.Subscription{
				Status:      models.SubscriptionStatusActive,
				PlanID:      "monthly",
				NextDueDate: timePtr(time.Now().AddDate(0, 1, 0)),
			},
			subscribed: true,
		},
		{
			name: "active with no due date",
			sub: &models.Subscription{
				Status: models.SubscriptionStatusActive,
				PlanID: "monthly",
			},
			subscribed: true,
		},
		{
			name: "overdue",
			sub: &models.Subscription{
				Status:      models.SubscriptionStatusOverdue,
				PlanID:      "monthly",
				NextDueDate: timePtr(time.Now().AddDate(0, 1, 0)),
			},
			subscribed: false,
		},
		{
			name:       "no row at all",
			sub:        nil,
			subscribed: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newBillingUC(t, nil)
			userID := uuid.New()

			m.repo.EXPECT().GetCachedStatus(gomock.Any(), userID).Return(nil, nil)
			m.repo.EXPECT().GetByUserID(gomock.Any(), userID).Return(tc.sub, nil)
			m.repo.EXPECT().SetCachedStatus(gomock.Any(), userID, gomock.Any()).Return(nil)

			status, err := uc.CheckStatus(context.Background(), userID, "maria@empresa.com.br")

			require.NoError(t, err)
			assert.Equal(t, tc.subscribed, status.Subscribed)
			if tc.subscribed {
				require.NotNil(t, status.ProductID)
				assert.Equal(t, tc.sub.PlanID, *status.ProductID)
			} else {
				assert.Nil(t, status.ProductID)
			}
		})
	}
}

func TestCheckStatus_CacheFailuresAreNonFatal(t *testing.T) {
	uc, m := newBillingUC(t, nil)

	userID := uuid.New()
	m.repo.EXPECT().GetCachedStatus(gomock.Any(), userID).Return(nil, assert.AnError)
	m.repo.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, nil)
	m.repo.EXPECT().SetCachedStatus(gomock.Any(), userID, gomock.Any()).Return(assert.AnError)

	status, err := uc.CheckStatus(context.Background(), userID, "maria@empresa.com.br")

	require.NoError(t, err)
	assert.False(t, status.Subscribed)
}

func TestGetSubscription(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		uc, m := newBillingUC(t, nil)

		userID := uuid.New()
		sub := &models.Subscription{ID: uuid.New(), UserID: userID}
		m.repo.EXPECT().GetByUserID(gomock.Any(), userID).Return(sub, nil)

		got, err := uc.GetSubscription(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, sub, got)
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newBillingUC(t, nil)

		userID := uuid.New()
		m.repo.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, nil)

		_, err := uc.GetSubscription(context.Background(), userID)
		assert.ErrorIs(t, err, billing.ErrSubscriptionNotFound)
	})
}

func timePtr(t time.Time) *time.Time {
	return &t
}
