package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contaflux/contaflux/internal/pkg/models"
)

func newMockRepo(t *testing.T) (*BillingRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "pgx")
	return NewBillingRepo(&models.Config{}, sqlxDB, nil), mock
}

func subscriptionColumns() []string {
	return []string{
		"id", "user_id", "asaas_customer_id", "asaas_subscription_id",
		"plan_id", "billing_cycle", "value", "status", "next_due_date",
		"created_at", "updated_at",
	}
}

func TestCreateTrial(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO subscriptions").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateTrial(context.Background(), uuid.New(), 7)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByAsaasSubscriptionID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		id := uuid.New()
		userID := uuid.New()
		now := time.Now()
		due := now.AddDate(0, 1, 0)
		rows := sqlmock.NewRows(subscriptionColumns()).
			AddRow(id, userID, "cus_001", "sub_001",
				"monthly", models.BillingCycleMonthly, 49.90, models.SubscriptionStatusActive, &due,
				now, now)

		mock.ExpectQuery("SELECT (.+) FROM subscriptions").
			WithArgs("sub_001").
			WillReturnRows(rows)

		sub, err := repo.GetByAsaasSubscriptionID(context.Background(), "sub_001")

		require.NoError(t, err)
		require.NotNil(t, sub)
		assert.Equal(t, userID, sub.UserID)
		assert.Equal(t, "sub_001", sub.AsaasSubscriptionID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown id returns nil without error", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM subscriptions").
			WithArgs("sub_missing").
			WillReturnRows(sqlmock.NewRows(subscriptionColumns()))

		sub, err := repo.GetByAsaasSubscriptionID(context.Background(), "sub_missing")

		require.NoError(t, err)
		assert.Nil(t, sub)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpsert(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO subscriptions").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Upsert(context.Background(), &models.Subscription{
		ID:     uuid.New(),
		UserID: uuid.New(),
		PlanID: "monthly",
		Status: models.SubscriptionStatusPending,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE subscriptions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.Subscription{ID: uuid.New()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}
