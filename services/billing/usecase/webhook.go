package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/contaflux/contaflux/internal/pkg/logger"
	"github.com/contaflux/contaflux/internal/pkg/models"
)

const dueDateLayout = "2006-01-02"

// HandleWebhook applies an Asaas event to the local subscription row.
// Unknown subscription identifiers and unrecognized event names are benign
// no-ops so the gateway never retry-storms on business misses; only storage
// failures bubble up as errors.
func (uc *BillingUC) HandleWebhook(ctx context.Context, event *models.WebhookEvent) (*models.WebhookResult, error) {
	sub, err := uc.billingRepo.GetByAsaasSubscriptionID(ctx, event.Payment.Subscription)
	if err != nil {
		return nil, fmt.Errorf("failed to look up subscription: %w", err)
	}
	if sub == nil {
		logger.Warn("Webhook for unknown subscription",
			logger.String("event", event.Event),
			logger.String("asaas_subscription_id", event.Payment.Subscription),
		)
		return &models.WebhookResult{Received: true}, nil
	}

	var newStatus string
	advanceDue := false

	switch event.Event {
	case models.EventPaymentConfirmed, models.EventPaymentReceived:
		newStatus = models.SubscriptionStatusActive
		advanceDue = true
	case models.EventSubscriptionRenewed:
		newStatus = models.SubscriptionStatusActive
	case models.EventPaymentOverdue:
		newStatus = models.SubscriptionStatusOverdue
	case models.EventSubscriptionDeleted, models.EventSubscriptionInactivated:
		newStatus = models.SubscriptionStatusCancelled
	default:
		logger.Warn("Unhandled billing event",
			logger.String("event", event.Event),
			logger.String("asaas_subscription_id", event.Payment.Subscription),
		)
		return &models.WebhookResult{Received: true}, nil
	}

	sub.Status = newStatus
	if advanceDue {
		next := advanceDueDate(sub, &event.Payment)
		sub.NextDueDate = &next
	}
	sub.UpdatedAt = time.Now()

	// Full overwrite keeps duplicate deliveries idempotent
	if err := uc.billingRepo.Update(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to store subscription update: %w", err)
	}

	result := &models.WebhookResult{
		Received:  true,
		Processed: true,
		NewStatus: newStatus,
	}
	if sub.NextDueDate != nil {
		result.NextDueDate = sub.NextDueDate.Format(dueDateLayout)
	}

	if uc.publisher != nil {
		evt := &models.SubscriptionUpdatedEvent{
			UserID:      sub.UserID,
			Status:      newStatus,
			NextDueDate: result.NextDueDate,
		}
		if err := uc.publisher.PublishSubscriptionUpdated(evt); err != nil {
			logger.Error("Failed to publish subscription update",
				logger.ErrorField(err),
				logger.String("user_id", sub.UserID.String()),
			)
		}
	}

	logger.Info("Processed billing webhook",
		logger.String("event", event.Event),
		logger.String("user_id", sub.UserID.String()),
		logger.String("new_status", newStatus),
	)

	return result, nil
}

// advanceDueDate moves the due date forward by one billing-cycle unit.
// The base is the payment's own due or payment date, falling back to the
// stored one, never "today". Anchoring on the payment keeps redelivery
// idempotent and stops a late confirmation from shifting the billing cycle.
func advanceDueDate(sub *models.Subscription, payment *models.WebhookPayment) time.Time {
	base := time.Now()
	if sub.NextDueDate != nil {
		base = *sub.NextDueDate
	}
	if parsed, ok := parsePaymentDate(payment.PaymentDate); ok {
		base = parsed
	}
	if parsed, ok := parsePaymentDate(payment.DueDate); ok {
		base = parsed
	}

	switch sub.BillingCycle {
	case models.BillingCycleQuarterly:
		return base.AddDate(0, 3, 0)
	case models.BillingCycleYearly:
		return base.AddDate(1, 0, 0)
	default:
		return base.AddDate(0, 1, 0)
	}
}

func parsePaymentDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(dueDateLayout, value)
	if err != nil {
		return time.Time{}, false
	}
	return parsed, true
}
