package billing

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/contaflux/contaflux/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/contaflux/contaflux/services/billing BillingUC

// Errors the handlers translate into HTTP status codes
var (
	ErrUnknownPlan          = errors.New("unknown plan")
	ErrMissingCpfCnpj       = errors.New("cpfCnpj is required")
	ErrInvalidCpfCnpj       = errors.New("cpfCnpj is not a valid CPF or CNPJ")
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// BillingUC represents the billing usecase interface
type BillingUC interface {
	HandleWebhook(ctx context.Context, event *models.WebhookEvent) (*models.WebhookResult, error)
	CreateCheckout(ctx context.Context, userID uuid.UUID, req *models.CheckoutRequest) (*models.CheckoutResponse, error)
	CheckStatus(ctx context.Context, userID uuid.UUID, email string) (*models.SubscriptionStatus, error)
	GetSubscription(ctx context.Context, userID uuid.UUID) (*models.Subscription, error)
}
