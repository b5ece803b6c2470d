package usecase

import (
	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/services/billing"
)

type BillingUC struct {
	billingRepo billing.BillingRepo
	users       billing.UserGetter
	asaasGW     billing.AsaasGW
	publisher   billing.EventPublisher
	cfg         *models.Config
}

// NewBillingUC creates a new billing usecase instance
func NewBillingUC(
	billingRepo billing.BillingRepo,
	users billing.UserGetter,
	asaasGW billing.AsaasGW,
	publisher billing.EventPublisher,
	cfg *models.Config,
) *BillingUC {
	return &BillingUC{
		billingRepo: billingRepo,
		users:       users,
		asaasGW:     asaasGW,
		publisher:   publisher,
		cfg:         cfg,
	}
}
