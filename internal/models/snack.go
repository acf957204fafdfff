package models

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format for expiry and filter dates.
const DateLayout = "2006-01-02"

// SnackDB represents a stocked snack row in the database
type SnackDB struct {
	SnackID    uuid.UUID  `json:"snack_id" db:"snack_id"`       // Primary key
	Name       string     `json:"name" db:"name"`               // Unique snack name
	Quantity   int        `json:"quantity" db:"quantity"`       // Current stock, never negative
	ExpireDate *time.Time `json:"expire_date" db:"expire_date"` // Optional expiry date
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	CreatedBy  uuid.UUID  `json:"created_by" db:"created_by"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
	UpdatedBy  uuid.UUID  `json:"updated_by" db:"updated_by"`
}
