package models

import (
	"time"

	"github.com/google/uuid"
)

// History actions form a closed vocabulary. Rows are append-only and are
// never updated or deleted once written.
const (
	ActionAdd      = "add"
	ActionEdit     = "edit"
	ActionDelete   = "delete"
	ActionIncrease = "increase"
	ActionDecrease = "decrease"
	ActionApproved = "approved"
	ActionRejected = "rejected"
)

// SnackHistoryDB represents an audit record in the database.
// SnackID is a weak reference: it is kept after the snack row is deleted,
// so the column carries no foreign key.
type SnackHistoryDB struct {
	HistoryID uuid.UUID  `json:"history_id" db:"history_id"` // Primary key
	SnackID   *uuid.UUID `json:"snack_id" db:"snack_id"`     // Nil for request-level actions
	UserID    uuid.UUID  `json:"user_id" db:"user_id"`       // Actor
	Action    string     `json:"action" db:"action"`         // One of the Action constants
	Quantity  *int       `json:"quantity" db:"quantity"`     // Magnitude of the change
	Memo      *string    `json:"memo" db:"memo"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// SnackHistoryRow is a history entry joined with snack and actor names for
// the history page. SnackName is nil when the snack was deleted afterwards
// or the action concerned a request.
type SnackHistoryRow struct {
	HistoryID uuid.UUID `json:"history_id" db:"history_id"`
	SnackName *string   `json:"snack_name" db:"snack_name"`
	Username  *string   `json:"username" db:"username"`
	Action    string    `json:"action" db:"action"`
	Quantity  *int      `json:"quantity" db:"quantity"`
	Memo      *string   `json:"memo" db:"memo"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
