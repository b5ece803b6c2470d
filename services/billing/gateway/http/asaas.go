package http

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/contaflux/contaflux/internal/pkg/http"
	"github.com/contaflux/contaflux/internal/pkg/logger"
	"github.com/contaflux/contaflux/internal/pkg/models"
	"github.com/contaflux/contaflux/internal/pkg/retry"
	"github.com/contaflux/contaflux/services/billing"
)

// AsaasGateway is a thin REST client for the Asaas billing API
type AsaasGateway struct {
	client  *http.Client
	retrier *retry.Retrier
}

// NewAsaasGateway creates the gateway client from config. Asaas authenticates
// by an access_token header, not a bearer token.
func NewAsaasGateway(cfg *models.Config, log *logger.ZapLogger) *AsaasGateway {
	client := http.NewClient(http.Config{
		BaseURL:    cfg.Asaas.BaseURL,
		Timeout:    time.Duration(cfg.Asaas.Timeout) * time.Second,
		AuthHeader: "access_token",
		AuthToken:  cfg.Asaas.APIKey,
	})

	retryConfig := retry.DefaultConfig()
	retryConfig.RetryableFunc = isRetryable

	return &AsaasGateway{
		client:  client,
		retrier: retry.New(retryConfig, log),
	}
}

// isRetryable allows retries on upstream 5xx and transport failures only;
// a 4xx means the request itself is wrong and will not heal.
func isRetryable(err error) bool {
	var statusErr *http.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= 500
	}
	return true
}

type asaasCustomer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	CpfCnpj string `json:"cpfCnpj"`
}

type asaasListResponse struct {
	Data []asaasCustomer `json:"data"`
}

type asaasSubscriptionResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type asaasPaymentsResponse struct {
	Data []struct {
		ID         string  `json:"id"`
		InvoiceURL *string `json:"invoiceUrl"`
	} `json:"data"`
}

// FindCustomerByCpfCnpj returns the first customer matching the document,
// or empty when none exists
func (g *AsaasGateway) FindCustomerByCpfCnpj(ctx context.Context, cpfCnpj string) (string, error) {
	endpoint := "/customers?cpfCnpj=" + url.QueryEscape(cpfCnpj)

	var list asaasListResponse
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.client.GetJSON(ctx, endpoint, &list)
	})
	if err != nil {
		return "", fmt.Errorf("failed to search customers: %w", err)
	}

	if len(list.Data) == 0 {
		return "", nil
	}
	return list.Data[0].ID, nil
}

// CreateCustomer registers a new Asaas customer
func (g *AsaasGateway) CreateCustomer(ctx context.Context, name, email, cpfCnpj string) (string, error) {
	body := asaasCustomer{
		Name:    name,
		Email:   email,
		CpfCnpj: cpfCnpj,
	}

	var created asaasCustomer
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.client.PostJSON(ctx, "/customers", body, &created)
	})
	if err != nil {
		return "", fmt.Errorf("failed to create customer: %w", err)
	}

	return created.ID, nil
}

// CreateSubscription opens a recurring subscription for the customer
func (g *AsaasGateway) CreateSubscription(ctx context.Context, customerID string, plan models.Plan, nextDueDate time.Time) (*billing.AsaasSubscription, error) {
	body := map[string]interface{}{
		"customer":    customerID,
		"billingType": "UNDEFINED",
		"value":       plan.Value,
		"cycle":       plan.BillingCycle,
		"description": plan.Name,
		"nextDueDate": nextDueDate.Format("2006-01-02"),
	}

	var created asaasSubscriptionResponse
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.client.PostJSON(ctx, "/subscriptions", body, &created)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	return &billing.AsaasSubscription{
		ID:     created.ID,
		Status: created.Status,
	}, nil
}

// GetPaymentLink returns the invoice URL of the subscription's first payment,
// or nil when Asaas has not generated it yet
func (g *AsaasGateway) GetPaymentLink(ctx context.Context, subscriptionID string) (*string, error) {
	endpoint := "/subscriptions/" + url.PathEscape(subscriptionID) + "/payments"

	var payments asaasPaymentsResponse
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.client.GetJSON(ctx, endpoint, &payments)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list subscription payments: %w", err)
	}

	if len(payments.Data) == 0 {
		return nil, nil
	}
	return payments.Data[0].InvoiceURL, nil
}
