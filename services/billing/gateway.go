package billing

import (
	"context"
	"time"

	"github.com/contaflux/contaflux/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/contaflux/contaflux/services/billing AsaasGW,EventPublisher

// AsaasSubscription is the upstream subscription reference returned on creation
type AsaasSubscription struct {
	ID     string
	Status string
}

// AsaasGW is the payment gateway client interface
type AsaasGW interface {
	// FindCustomerByCpfCnpj returns the customer ID, or empty when none exists
	FindCustomerByCpfCnpj(ctx context.Context, cpfCnpj string) (string, error)
	CreateCustomer(ctx context.Context, name, email, cpfCnpj string) (string, error)
	CreateSubscription(ctx context.Context, customerID string, plan models.Plan, nextDueDate time.Time) (*AsaasSubscription, error)
	// GetPaymentLink returns the hosted invoice URL, or nil when not yet available
	GetPaymentLink(ctx context.Context, subscriptionID string) (*string, error)
}

// EventPublisher publishes billing events for in-process consumers
type EventPublisher interface {
	PublishSubscriptionUpdated(event *models.SubscriptionUpdatedEvent) error
}
