package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/contaflux/contaflux/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/contaflux/contaflux/services/billing BillingRepo,UserGetter

// BillingRepo defines the billing repository interface. Subscription rows are
// keyed one-per-user; the derived status answer is cached in redis with a TTL.
type BillingRepo interface {
	// CreateTrial opens the trial subscription for a freshly signed-up user.
	// Also satisfies the trial hook the auth service expects.
	CreateTrial(ctx context.Context, userID uuid.UUID, trialDays int) error

	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Subscription, error)
	GetByAsaasSubscriptionID(ctx context.Context, asaasSubscriptionID string) (*models.Subscription, error)
	Upsert(ctx context.Context, sub *models.Subscription) error
	Update(ctx context.Context, sub *models.Subscription) error

	// Status cache
	GetCachedStatus(ctx context.Context, userID uuid.UUID) (*models.SubscriptionStatus, error)
	SetCachedStatus(ctx context.Context, userID uuid.UUID, status *models.SubscriptionStatus) error
	InvalidateStatus(ctx context.Context, userID uuid.UUID) error
}

// UserGetter provides the account fields needed when creating a payment
// gateway customer. Implemented by the auth repository.
type UserGetter interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
