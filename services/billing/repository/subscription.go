package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/contaflux/contaflux/internal/pkg/models"
)

// TrialPlanID marks rows opened by signup rather than checkout
const TrialPlanID = "trial"

// CreateTrial opens the trial row for a new user. A user who somehow already
// has a subscription row keeps it untouched.
func (r *BillingRepo) CreateTrial(ctx context.Context, userID uuid.UUID, trialDays int) error {
	now := time.Now()
	trialEnd := now.AddDate(0, 0, trialDays)

	sub := &models.Subscription{
		ID:           uuid.New(),
		UserID:       userID,
		PlanID:       TrialPlanID,
		BillingCycle: models.BillingCycleMonthly,
		Status:       models.SubscriptionStatusTrial,
		NextDueDate:  &trialEnd,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	query := `
		INSERT INTO subscriptions (id, user_id, asaas_customer_id, asaas_subscription_id,
			plan_id, billing_cycle, value, status, next_due_date, created_at, updated_at
		) VALUES (:id, :user_id, :asaas_customer_id, :asaas_subscription_id,
			:plan_id, :billing_cycle, :value, :status, :next_due_date, :created_at, :updated_at)
		ON CONFLICT (user_id) DO NOTHING
	`

	if _, err := r.db.NamedExecContext(ctx, query, sub); err != nil {
		return fmt.Errorf("failed to create trial subscription: %w", err)
	}

	return nil
}

// GetByUserID retrieves the user's subscription row.
// Returns nil without error when no row exists.
func (r *BillingRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Subscription, error) {
	query := `
		SELECT id, user_id, asaas_customer_id, asaas_subscription_id,
			plan_id, billing_cycle, value, status, next_due_date, created_at, updated_at
		FROM subscriptions
		WHERE user_id = $1
	`

	var sub models.Subscription
	err := r.db.GetContext(ctx, &sub, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return &sub, nil
}

// GetByAsaasSubscriptionID retrieves the row the gateway's webhook refers to.
// Returns nil without error when no row matches.
func (r *BillingRepo) GetByAsaasSubscriptionID(ctx context.Context, asaasSubscriptionID string) (*models.Subscription, error) {
	query := `
		SELECT id, user_id, asaas_customer_id, asaas_subscription_id,
			plan_id, billing_cycle, value, status, next_due_date, created_at, updated_at
		FROM subscriptions
		WHERE asaas_subscription_id = $1
	`

	var sub models.Subscription
	err := r.db.GetContext(ctx, &sub, query, asaasSubscriptionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return &sub, nil
}

// Upsert stores the single billing row kept per user, replacing any previous
// plan or trial
func (r *BillingRepo) Upsert(ctx context.Context, sub *models.Subscription) error {
	query := `
		INSERT INTO subscriptions (id, user_id, asaas_customer_id, asaas_subscription_id,
			plan_id, billing_cycle, value, status, next_due_date, created_at, updated_at
		) VALUES (:id, :user_id, :asaas_customer_id, :asaas_subscription_id,
			:plan_id, :billing_cycle, :value, :status, :next_due_date, :created_at, :updated_at)
		ON CONFLICT (user_id) DO UPDATE
		SET asaas_customer_id = EXCLUDED.asaas_customer_id,
			asaas_subscription_id = EXCLUDED.asaas_subscription_id,
			plan_id = EXCLUDED.plan_id,
			billing_cycle = EXCLUDED.billing_cycle,
			value = EXCLUDED.value,
			status = EXCLUDED.status,
			next_due_date = EXCLUDED.next_due_date,
			updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.NamedExecContext(ctx, query, sub); err != nil {
		return fmt.Errorf("failed to upsert subscription: %w", err)
	}

	return nil
}

// Update overwrites an existing row's mutable fields
func (r *BillingRepo) Update(ctx context.Context, sub *models.Subscription) error {
	query := `
		UPDATE subscriptions
		SET status = :status,
			next_due_date = :next_due_date,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, sub)
	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("subscription not found")
	}

	return nil
}
