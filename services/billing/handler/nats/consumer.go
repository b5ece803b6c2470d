package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/contaflux/contaflux/internal/pkg/constants"
	"github.com/contaflux/contaflux/internal/pkg/logger"
	"github.com/contaflux/contaflux/internal/pkg/models"
	natspkg "github.com/contaflux/contaflux/internal/pkg/nats"
	"github.com/contaflux/contaflux/services/billing"
)

// Handler consumes billing events and keeps the status cache honest
type Handler struct {
	billingRepo billing.BillingRepo
	consumer    *natspkg.Consumer
}

// NewHandler creates a new billing NATS handler
func NewHandler(billingRepo billing.BillingRepo) *Handler {
	return &Handler{
		billingRepo: billingRepo,
	}
}

// Start subscribes to subscription updates on the shared queue group
func (h *Handler) Start(client *natspkg.Client) error {
	consumer, err := natspkg.NewConsumerFromClient(
		client,
		constants.SubjectSubscriptionUpdated,
		constants.QueueGroupAPI,
		h.handleSubscriptionUpdated,
	)
	if err != nil {
		return fmt.Errorf("failed to subscribe to subscription updates: %w", err)
	}

	h.consumer = consumer
	return nil
}

// Stop tears down the subscription
func (h *Handler) Stop() {
	if h.consumer != nil {
		h.consumer.Stop()
	}
}

func (h *Handler) handleSubscriptionUpdated(data []byte) error {
	var event models.SubscriptionUpdatedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to decode subscription update: %w", err)
	}

	if err := h.billingRepo.InvalidateStatus(context.Background(), event.UserID); err != nil {
		return fmt.Errorf("failed to invalidate status cache: %w", err)
	}

	logger.Debug("Invalidated billing status cache",
		logger.String("user_id", event.UserID.String()),
		logger.String("status", event.Status),
	)
	return nil
}
