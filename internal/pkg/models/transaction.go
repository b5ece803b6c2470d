package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction types
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// Transaction statuses
const (
	TransactionStatusPending = "pending"
	TransactionStatusPaid    = "paid"
)

// Transaction represents a financial movement
type Transaction struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	UserID          uuid.UUID  `json:"user_id" db:"user_id"`
	Description     string     `json:"description" db:"description"`
	Amount          float64    `json:"amount" db:"amount"`
	Type            string     `json:"type" db:"type"`
	TransactionDate time.Time  `json:"transaction_date" db:"transaction_date"`
	DueDate         *time.Time `json:"due_date,omitempty" db:"due_date"`
	PaymentDate     *time.Time `json:"payment_date,omitempty" db:"payment_date"`
	Status          string     `json:"status" db:"status"`
	CostCenterID    *uuid.UUID `json:"cost_center_id,omitempty" db:"cost_center_id"`
	CostCenterName  string     `json:"cost_center_name,omitempty" db:"cost_center_name"`

	// Installment metadata. A row with IsInstallmentParent set is a display
	// placeholder for the whole plan and never enters monetary aggregations.
	InstallmentNumber   int        `json:"installment_number,omitempty" db:"installment_number"`
	InstallmentTotal    int        `json:"installment_total,omitempty" db:"installment_total"`
	ParentID            *uuid.UUID `json:"parent_id,omitempty" db:"parent_id"`
	IsInstallment       bool       `json:"is_installment" db:"is_installment"`
	IsInstallmentParent bool       `json:"is_installment_parent" db:"is_installment_parent"`

	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"-" db:"deleted_at"`
}

// CreateTransactionRequest represents a transaction creation payload.
// Installments > 1 expands the entry into a parent row plus one row per
// installment, splitting the amount evenly.
type CreateTransactionRequest struct {
	Description     string     `json:"description"`
	Amount          float64    `json:"amount"`
	Type            string     `json:"type"`
	TransactionDate time.Time  `json:"transaction_date"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	Status          string     `json:"status"`
	CostCenterID    *uuid.UUID `json:"cost_center_id,omitempty"`
	Installments    int        `json:"installments,omitempty"`
}

// UpdateTransactionRequest represents a transaction edit payload
type UpdateTransactionRequest struct {
	Description     *string    `json:"description,omitempty"`
	Amount          *float64   `json:"amount,omitempty"`
	TransactionDate *time.Time `json:"transaction_date,omitempty"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	Status          *string    `json:"status,omitempty"`
	CostCenterID    *uuid.UUID `json:"cost_center_id,omitempty"`
}

// TeamExpense is an ancillary expense tracked outside the main transaction
// table. It only contributes to the amount due in its month.
type TeamExpense struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	UserID      uuid.UUID  `json:"user_id" db:"user_id"`
	Description string     `json:"description" db:"description"`
	Amount      float64    `json:"amount" db:"amount"`
	Date        time.Time  `json:"date" db:"date"`
	Status      string     `json:"status" db:"status"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt   *time.Time `json:"-" db:"deleted_at"`
}
