package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/contaflux/contaflux/internal/pkg/logger"
	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/services/billing"
)

const compProductID = "comp"

// CheckStatus answers the dashboard gate. Complimentary emails always pass
// without touching storage; everyone else gets the cached derivation of the
// subscription row.
func (uc *BillingUC) CheckStatus(ctx context.Context, userID uuid.UUID, email string) (*models.SubscriptionStatus, error) {
	if uc.isCompEmail(email) {
		productID := compProductID
		return &models.SubscriptionStatus{
			Subscribed: true,
			ProductID:  &productID,
		}, nil
	}

	cached, err := uc.billingRepo.GetCachedStatus(ctx, userID)
	if err != nil {
		logger.Warn("Status cache read failed",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()),
		)
	}
	if cached != nil {
		return cached, nil
	}

	sub, err := uc.billingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	status := deriveStatus(sub, time.Now())

	if err := uc.billingRepo.SetCachedStatus(ctx, userID, status); err != nil {
		logger.Warn("Status cache write failed",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()),
		)
	}

	return status, nil
}

// GetSubscription returns the raw row for banner rendering
func (uc *BillingUC) GetSubscription(ctx context.Context, userID uuid.UUID) (*models.Subscription, error) {
	sub, err := uc.billingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, billing.ErrSubscriptionNotFound
	}
	return sub, nil
}

func (uc *BillingUC) isCompEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	for _, comp := range uc.cfg.Billing.CompEmails {
		if strings.EqualFold(strings.TrimSpace(comp), email) {
			return true
		}
	}
	return false
}

// deriveStatus maps the stored row to the boolean gate the client checks.
// TRIAL counts only while its due date is in the future; ACTIVE counts with a
// future or absent due date. Expired trials report as not subscribed.
func deriveStatus(sub *models.Subscription, now time.Time) *models.SubscriptionStatus {
	if sub == nil {
		return &models.SubscriptionStatus{Subscribed: false}
	}

	subscribed := false
	switch sub.Status {
	case models.SubscriptionStatusTrial:
		subscribed = sub.NextDueDate != nil && sub.NextDueDate.After(now)
	case models.SubscriptionStatusActive:
		subscribed = sub.NextDueDate == nil || sub.NextDueDate.After(now)
	}

	if !subscribed {
		return &models.SubscriptionStatus{Subscribed: false}
	}

	planID := sub.PlanID
	status := &models.SubscriptionStatus{
		Subscribed: true,
		ProductID:  &planID,
	}
	if sub.NextDueDate != nil {
		end := sub.NextDueDate.Format(time.RFC3339)
		status.SubscriptionEnd = &end
	}
	return status
}
