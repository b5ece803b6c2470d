package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/services/billing/mocks"
)

type billingMocks struct {
	repo      *mocks.MockBillingRepo
	users     *mocks.MockUserGetter
	gateway   *mocks.MockAsaasGW
	publisher *mocks.MockEventPublisher
}

func newBillingUC(t *testing.T, cfg *models.Config) (*BillingUC, billingMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := billingMocks{
		repo:      mocks.NewMockBillingRepo(ctrl),
		users:     mocks.NewMockUserGetter(ctrl),
		gateway:   mocks.NewMockAsaasGW(ctrl),
		publisher: mocks.NewMockEventPublisher(ctrl),
	}
	if cfg == nil {
		cfg = &models.Config{}
	}
	return NewBillingUC(m.repo, m.users, m.gateway, m.publisher, cfg), m
}

func activeSub(asaasID string, cycle string, due time.Time) *models.Subscription {
	return &models.Subscription{
		ID:                  uuid.New(),
		UserID:              uuid.New(),
		AsaasSubscriptionID: asaasID,
		PlanID:              "monthly",
		BillingCycle:        cycle,
		Status:              models.SubscriptionStatusPending,
		NextDueDate:         &due,
	}
}

func TestHandleWebhook_UnknownSubscription(t *testing.T) {
	uc, m := newBillingUC(t, nil)

	m.repo.EXPECT().GetByAsaasSubscriptionID(gomock.Any(), "sub_missing").Return(nil, nil)

	result, err := uc.HandleWebhook(context.Background(), &models.WebhookEvent{
		Event:   models.EventPaymentConfirmed,
		Payment: models.WebhookPayment{Subscription: "sub_missing"},
	})

	require.NoError(t, err)
	assert.True(t, result.Received)
	assert.False(t, result.Processed)
	assert.Empty(t, result.NewStatus)
}

func TestHandleWebhook_PaymentConfirmedAdvancesDueDate(t *testing.T) {
	uc, m := newBillingUC(t, nil)

	due := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	sub := activeSub("sub_123", models.BillingCycleMonthly, due)

	m.repo.EXPECT().GetByAsaasSubscriptionID(gomock.Any(), "sub_123").Return(sub, nil)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updated *models.Subscription) error {
			assert.Equal(t, models.SubscriptionStatusActive, updated.Status)
			require.NotNil(t, updated.NextDueDate)
			assert.Equal(t, due.AddDate(0, 1, 0), *updated.NextDueDate)
			return nil
		})
	m.publisher.EXPECT().PublishSubscriptionUpdated(gomock.Any()).Return(nil)

	result, err := uc.HandleWebhook(context.Background(), &models.WebhookEvent{
		Event:   models.EventPaymentConfirmed,
		Payment: models.WebhookPayment{Subscription: "sub_123", DueDate: "2025-04-10"},
	})

	require.NoError(t, err)
	assert.True(t, result.Received)
	assert.True(t, result.Processed)
	assert.Equal(t, models.SubscriptionStatusActive, result.NewStatus)
	assert.Equal(t, "2025-05-10", result.NextDueDate)
}

func TestHandleWebhook_AdvancesFromPaymentDueDateNotToday(t *testing.T) {
	uc, m := newBillingUC(t, nil)

	// Stored due date differs from the payment's; the payment wins
	storedDue := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	sub := activeSub("sub_123", models.BillingCycleMonthly, storedDue)

	m.repo.EXPECT().GetByAsaasSubscriptionID(gomock.Any(), "sub_123").Return(sub, nil)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	m.publisher.EXPECT().PublishSubscriptionUpdated(gomock.Any()).Return(nil)

	result, err := uc.HandleWebhook(context.Background(), &models.WebhookEvent{
		Event:   models.EventPaymentReceived,
		Payment: models.WebhookPayment{Subscription: "sub_123", DueDate: "2025-04-15"},
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-05-15", result.NextDueDate)
}

func TestHandleWebhook_AdvancesFromPaymentDateWhenDueDateAbsent(t *testing.T) {
	uc, m := newBillingUC(t, nil)

	storedDue := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	sub := activeSub("sub_123", models.BillingCycleMonthly, storedDue)

	m.repo.EXPECT().GetByAsaasSubscriptionID(gomock.Any(), "sub_123").Return(sub, nil)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	m.publisher.EXPECT().PublishSubscriptionUpdated(gomock.Any()).Return(nil)

	result, err := uc.HandleWebhook(context.Background(), &models.WebhookEvent{
		Event:   models.EventPaymentConfirmed,
		Payment: models.WebhookPayment{Subscription: "sub_123", PaymentDate: "2025-04-10"},
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-05-10", result.NextDueDate)
}

func TestHandleWebhook_PaymentDateOnlyRedeliveryIsIdempotent(t *testing.T) {
	uc, m := newBillingUC(t, nil)

	due := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	first := activeSub("sub_123", models.BillingCycleMonthly, due)

	event := &models.WebhookEvent{
		Event:   models.EventPaymentConfirmed,
		Payment: models.WebhookPayment{Subscription: "sub_123", PaymentDate: "2025-04-10"},
	}

	m.repo.EXPECT().GetByAsaasSubscriptionID(gomock.Any(), "sub_123").Return(first, nil)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	m.publisher.EXPECT().PublishSubscriptionUpdated(gomock.Any()).Return(nil)

	firstResult, err := uc.HandleWebhook(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, "2025-05-10", firstResult.NextDueDate)

	// Redelivery sees the already-advanced row; the payment date must stay
	// the anchor so the overwrite lands on the same state
	second := activeSub("sub_123", models.BillingCycleMonthly, due.AddDate(0, 1, 0))
	second.Status = models.SubscriptionStatusActive

	m.repo.EXPECT().GetByAsaasSubscriptionID(gomock.Any(), "sub_123").Return(second, nil)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	m.publisher.EXPECT().PublishSubscriptionUpdated(gomock.Any()).Return(nil)

	secondResult, err := uc.HandleWebhook(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, firstResult.NextDueDate, secondResult.NextDueDate)
}

func TestHandleWebhook_CycleUnits(t *testing.T) {
	due := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		cycle    string
		expected string
	}{
		{models.BillingCycleMonthly, "2025-02-10"},
		{models.BillingCycleQuarterly, "2025-04-10"},
		{models.BillingCycleYearly, "2026-01-10"},
	}

	for _, tc := range testCases {
		t.Run(tc.cycle, func(t *testing.T) {
			uc, m := newBillingUC(t, nil)
			sub := activeSub("sub_cycle", tc.cycle, due)

			m.repo.EXPECT().GetByAsaasSubscriptionID(gomock.Any(), "sub_cycle").Return(sub, nil)
			m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			m.publisher.EXPECT().PublishSubscriptionUpdated(gomock.Any()).Return(nil)

			result, err := uc.HandleWebhook(context.Background(), &models.WebhookEvent{
				Event:   models.EventPaymentConfirmed,
				Payment: models.WebhookPayment{Subscription: "sub_cycle", DueDate: "2025-01-10"},
			})

			require.NoError(t, err)
			assert.Equal(t, tc.expected, result.NextDueDate)
		})
	}
}

func TestHandleWebhook_StatusOnlyEvents(t *testing.T) {
	due := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		event    string
		expected string
	}{
		{models.EventSubscriptionRenewed, models.SubscriptionStatusActive},
		{models.EventPaymentOverdue, models.SubscriptionStatusOverdue},
		{models.EventSubscriptionDeleted, models.SubscriptionStatusCancelled},
		{models.EventSubscriptionInactivated, models.SubscriptionStatusCancelled},
	}

	for _, tc := range testCases {
		t.Run(tc.event, func(t *testing.T) {
			uc, m := newBillingUC(t, nil)
			sub := activeSub("sub_123", models.BillingCycleMonthly, due)

			m.repo.EXPECT().GetByAsaasSubscriptionID(gomock.Any(), "sub_123").Return(sub, nil)
			m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, updated *models.Subscription) error {
					assert.Equal(t, tc.expected, updated.Status)
					// No due-date advancement for status-only events
					assert.Equal(t, due, *updated.NextDueDate)
					return nil
				})
			m.publisher.EXPECT().PublishSubscriptionUpdated(gomock.Any()).Return(nil)

			result, err := uc.HandleWebhook(context.Background(), &models.WebhookEvent{
				Event:   tc.event,
				Payment: models.WebhookPayment{Subscription: "sub_123"},
			})

			require.NoError(t, err)
			assert.True(t, result.Processed)
			assert.Equal(t, tc.expected, result.NewStatus)
		})
	}
}

func TestHandleWebhook_UnrecognizedEventIsNoOp(t *testing.T) {
	uc, m := newBillingUC(t, nil)

	due := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	sub := activeSub("sub_123", models.BillingCycleMonthly, due)

	m.repo.EXPECT().GetByAsaasSubscriptionID(gomock.Any(), "sub_123").Return(sub, nil)

	result, err := uc.HandleWebhook(context.Background(), &models.WebhookEvent{
		Event:   "PAYMENT_CHARGEBACK_REQUESTED",
		Payment: models.WebhookPayment{Subscription: "sub_123"},
	})

	require.NoError(t, err)
	assert.True(t, result.Received)
	assert.False(t, result.Processed)
}

func TestHandleWebhook_DuplicateDeliveryIsIdempotent(t *testing.T) {
	uc, m := newBillingUC(t, nil)

	due := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	first := activeSub("sub_123", models.BillingCycleMonthly, due)

	event := &models.WebhookEvent{
		Event:   models.EventPaymentConfirmed,
		Payment: models.WebhookPayment{Subscription: "sub_123", DueDate: "2025-04-10"},
	}

	m.repo.EXPECT().GetByAsaasSubscriptionID(gomock.Any(), "sub_123").Return(first, nil)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	m.publisher.EXPECT().PublishSubscriptionUpdated(gomock.Any()).Return(nil)

	firstResult, err := uc.HandleWebhook(context.Background(), event)
	require.NoError(t, err)

	// Redelivery sees the already-updated row; the full overwrite lands on the
	// same state because the advancement base is the payment's due date
	second := activeSub("sub_123", models.BillingCycleMonthly, due.AddDate(0, 1, 0))
	second.Status = models.SubscriptionStatusActive

	m.repo.EXPECT().GetByAsaasSubscriptionID(gomock.Any(), "sub_123").Return(second, nil)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	m.publisher.EXPECT().PublishSubscriptionUpdated(gomock.Any()).Return(nil)

	secondResult, err := uc.HandleWebhook(context.Background(), event)
	require.NoError(t, err)

	assert.Equal(t, firstResult.NewStatus, secondResult.NewStatus)
	assert.Equal(t, firstResult.NextDueDate, secondResult.NextDueDate)
}

func TestHandleWebhook_StoreFailure(t *testing.T) {
	uc, m := newBillingUC(t, nil)

	due := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	sub := activeSub("sub_123", models.BillingCycleMonthly, due)

	m.repo.EXPECT().GetByAsaasSubscriptionID(gomock.Any(), "sub_123").Return(sub, nil)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	_, err := uc.HandleWebhook(context.Background(), &models.WebhookEvent{
		Event:   models.EventPaymentConfirmed,
		Payment: models.WebhookPayment{Subscription: "sub_123"},
	})

	assert.Error(t, err)
}

func TestHandleWebhook_PublishFailureDoesNotFailTheWebhook(t *testing.T) {
	uc, m := newBillingUC(t, nil)

	due := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	sub := activeSub("sub_123", models.BillingCycleMonthly, due)

	m.repo.EXPECT().GetByAsaasSubscriptionID(gomock.Any(), "sub_123").Return(sub, nil)
	m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
	m.publisher.EXPECT().PublishSubscriptionUpdated(gomock.Any()).Return(errors.New("nats down"))

	result, err := uc.HandleWebhook(context.Background(), &models.WebhookEvent{
		Event:   models.EventPaymentConfirmed,
		Payment: models.WebhookPayment{Subscription: "sub_123"},
	})

	require.NoError(t, err)
	assert.True(t, result.Processed)
}
