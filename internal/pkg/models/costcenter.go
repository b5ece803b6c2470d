package models

import (
	"time"

	"github.com/google/uuid"
)

// CostCenter is a named bucket a transaction can be tagged with
type CostCenter struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	UserID    uuid.UUID  `json:"user_id" db:"user_id"`
	Name      string     `json:"name" db:"name"`
	Type      string     `json:"type" db:"type"` // income or expense
	ColumnID  *uuid.UUID `json:"column_id,omitempty" db:"column_id"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}

// CustomColumn is a user-defined grouping of cost centers for dashboard
// filtering. Exactly one column per user is marked as main.
type CustomColumn struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Position  int       `json:"position" db:"position"`
	IsMain    bool      `json:"is_main" db:"is_main"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
