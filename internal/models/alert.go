package models

import (
	"time"

	"github.com/google/uuid"
)

// SnackAlertDB represents an expiry alert row. At most one alert exists
// per (snack_id, expire_date), enforced by a unique index.
type SnackAlertDB struct {
	AlertID    uuid.UUID `json:"alert_id" db:"alert_id"` // Primary key
	SnackID    uuid.UUID `json:"snack_id" db:"snack_id"`
	ExpireDate time.Time `json:"expire_date" db:"expire_date"`
	DaysLeft   int       `json:"days_left" db:"days_left"` // Whole days until expiry at generation time
	IsRead     bool      `json:"is_read" db:"is_read"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
