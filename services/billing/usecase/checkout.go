package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/contaflux/contaflux/internal/pkg/logger"
	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/internal/utils"
	"github.com/contaflux/contaflux/services/billing"
)

// Plans is the fixed checkout offering; plan IDs arrive from the client
// and are never trusted for pricing.
var Plans = map[string]models.Plan{
	"monthly": {
		ID:           "monthly",
		Name:         "ContaFlux Mensal",
		BillingCycle: models.BillingCycleMonthly,
		Value:        49.90,
	},
	"quarterly": {
		ID:           "quarterly",
		Name:         "ContaFlux Trimestral",
		BillingCycle: models.BillingCycleQuarterly,
		Value:        134.70,
	},
	"yearly": {
		ID:           "yearly",
		Name:         "ContaFlux Anual",
		BillingCycle: models.BillingCycleYearly,
		Value:        478.80,
	},
}

// CreateCheckout validates the request, ensures an Asaas customer exists,
// creates the upstream subscription and stores the local row as PENDING.
func (uc *BillingUC) CreateCheckout(ctx context.Context, userID uuid.UUID, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	plan, ok := Plans[req.PlanID]
	if !ok {
		return nil, billing.ErrUnknownPlan
	}

	cpfCnpj := utils.NormalizeCpfCnpj(req.CpfCnpj)
	if cpfCnpj == "" {
		return nil, billing.ErrMissingCpfCnpj
	}
	if !utils.IsValidCpfCnpj(cpfCnpj) {
		return nil, billing.ErrInvalidCpfCnpj
	}

	user, err := uc.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	customerID, err := uc.ensureCustomer(ctx, userID, user, cpfCnpj)
	if err != nil {
		return nil, err
	}

	firstDueDate := time.Now().AddDate(0, 0, 1)
	asaasSub, err := uc.asaasGW.CreateSubscription(ctx, customerID, plan, firstDueDate)
	if err != nil {
		return nil, fmt.Errorf("failed to create upstream subscription: %w", err)
	}

	existing, err := uc.billingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	now := time.Now()
	sub := &models.Subscription{
		ID:                  uuid.New(),
		UserID:              userID,
		AsaasCustomerID:     customerID,
		AsaasSubscriptionID: asaasSub.ID,
		PlanID:              plan.ID,
		BillingCycle:        plan.BillingCycle,
		Value:               plan.Value,
		Status:              models.SubscriptionStatusPending,
		NextDueDate:         &firstDueDate,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if existing != nil {
		sub.ID = existing.ID
		sub.CreatedAt = existing.CreatedAt
	}

	if err := uc.billingRepo.Upsert(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to store subscription: %w", err)
	}

	if err := uc.billingRepo.InvalidateStatus(ctx, userID); err != nil {
		logger.Warn("Failed to invalidate status cache",
			logger.ErrorField(err),
			logger.String("user_id", userID.String()),
		)
	}

	url, err := uc.asaasGW.GetPaymentLink(ctx, asaasSub.ID)
	if err != nil {
		// The row is already stored; the client can retry the link later
		logger.Error("Failed to fetch payment link",
			logger.ErrorField(err),
			logger.String("asaas_subscription_id", asaasSub.ID),
		)
		url = nil
	}

	return &models.CheckoutResponse{
		URL:            url,
		SubscriptionID: asaasSub.ID,
		Status:         models.SubscriptionStatusPending,
	}, nil
}

func (uc *BillingUC) ensureCustomer(ctx context.Context, userID uuid.UUID, user *models.User, cpfCnpj string) (string, error) {
	existing, err := uc.billingRepo.GetByUserID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to get subscription: %w", err)
	}
	if existing != nil && existing.AsaasCustomerID != "" {
		return existing.AsaasCustomerID, nil
	}

	customerID, err := uc.asaasGW.FindCustomerByCpfCnpj(ctx, cpfCnpj)
	if err != nil {
		return "", fmt.Errorf("failed to find customer: %w", err)
	}
	if customerID != "" {
		return customerID, nil
	}

	customerID, err = uc.asaasGW.CreateCustomer(ctx, user.FullName, user.Email, cpfCnpj)
	if err != nil {
		return "", fmt.Errorf("failed to create customer: %w", err)
	}

	logger.Info("Created Asaas customer",
		logger.String("user_id", userID.String()),
		logger.String("cpf_cnpj", utils.MaskCpfCnpj(cpfCnpj)),
	)
	return customerID, nil
}
