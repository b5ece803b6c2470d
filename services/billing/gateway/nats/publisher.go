package nats

import (
	"fmt"

	"github.com/contaflux/contaflux/internal/pkg/constants"
	"github.com/contaflux/contaflux/internal/pkg/models"
	natspkg "github.com/contaflux/contaflux/internal/pkg/nats"
)

// BillingGW publishes billing events on NATS
type BillingGW struct {
	producer *natspkg.Producer
}

// NewBillingGW creates a new billing gateway instance
func NewBillingGW(client *natspkg.Client) *BillingGW {
	return &BillingGW{
		producer: natspkg.NewProducerFromClient(client),
	}
}

// PublishSubscriptionUpdated announces a processed webhook so status caches
// can be invalidated
func (g *BillingGW) PublishSubscriptionUpdated(event *models.SubscriptionUpdatedEvent) error {
	if err := g.producer.Publish(constants.SubjectSubscriptionUpdated, event); err != nil {
		return fmt.Errorf("failed to publish subscription update: %w", err)
	}
	return nil
}
