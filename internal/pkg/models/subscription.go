package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription statuses
const (
	SubscriptionStatusPending   = "PENDING"
	SubscriptionStatusActive    = "ACTIVE"
	SubscriptionStatusOverdue   = "OVERDUE"
	SubscriptionStatusCancelled = "CANCELLED"
	SubscriptionStatusTrial     = "TRIAL"
)

// Billing cycles
const (
	BillingCycleMonthly   = "MONTHLY"
	BillingCycleQuarterly = "QUARTERLY"
	BillingCycleYearly    = "YEARLY"
)

// Asaas webhook event names
const (
	EventPaymentConfirmed        = "PAYMENT_CONFIRMED"
	EventPaymentReceived         = "PAYMENT_RECEIVED"
	EventPaymentOverdue          = "PAYMENT_OVERDUE"
	EventSubscriptionRenewed     = "SUBSCRIPTION_RENEWED"
	EventSubscriptionDeleted     = "SUBSCRIPTION_DELETED"
	EventSubscriptionInactivated = "SUBSCRIPTION_INACTIVATED"
)

// Subscription is the single billing row kept per user
type Subscription struct {
	ID                  uuid.UUID  `json:"id" db:"id"`
	UserID              uuid.UUID  `json:"user_id" db:"user_id"`
	AsaasCustomerID     string     `json:"asaas_customer_id" db:"asaas_customer_id"`
	AsaasSubscriptionID string     `json:"asaas_subscription_id" db:"asaas_subscription_id"`
	PlanID              string     `json:"plan_id" db:"plan_id"`
	BillingCycle        string     `json:"billing_cycle" db:"billing_cycle"`
	Value               float64    `json:"value" db:"value"`
	Status              string     `json:"status" db:"status"`
	NextDueDate         *time.Time `json:"next_due_date,omitempty" db:"next_due_date"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at" db:"updated_at"`
}

// WebhookPayment is the payment payload inside an Asaas webhook event
type WebhookPayment struct {
	ID           string  `json:"id"`
	Subscription string  `json:"subscription"`
	Status       string  `json:"status"`
	Value        float64 `json:"value"`
	DueDate      string  `json:"dueDate"`
	PaymentDate  string  `json:"paymentDate"`
}

// WebhookEvent is an inbound Asaas webhook body
type WebhookEvent struct {
	Event   string         `json:"event"`
	Payment WebhookPayment `json:"payment"`
}

// WebhookResult is the acknowledgment returned to the gateway
type WebhookResult struct {
	Received    bool   `json:"received"`
	Processed   bool   `json:"processed,omitempty"`
	NewStatus   string `json:"newStatus,omitempty"`
	NextDueDate string `json:"nextDueDate,omitempty"`
}

// Plan is a fixed checkout plan offering
type Plan struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	BillingCycle string  `json:"billing_cycle"`
	Value        float64 `json:"value"`
}

// CheckoutRequest represents a checkout creation payload
type CheckoutRequest struct {
	PlanID  string `json:"planId"`
	CpfCnpj string `json:"cpfCnpj"`
}

// CheckoutResponse is returned after creating an Asaas subscription
type CheckoutResponse struct {
	URL            *string `json:"url"`
	SubscriptionID string  `json:"subscriptionId"`
	Status         string  `json:"status"`
}

// SubscriptionStatus is the gate the dashboard checks on every protected entry
type SubscriptionStatus struct {
	Subscribed      bool    `json:"subscribed"`
	ProductID       *string `json:"product_id"`
	SubscriptionEnd *string `json:"subscription_end"`
}

// SubscriptionUpdatedEvent is published on NATS after a processed webhook
type SubscriptionUpdatedEvent struct {
	UserID      uuid.UUID `json:"user_id"`
	Status      string    `json:"status"`
	NextDueDate string    `json:"next_due_date,omitempty"`
}
