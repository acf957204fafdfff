package models

import (
	"time"

	"github.com/google/uuid"
)

// Request statuses. A request starts pending and ends in exactly one of
// the two terminal states.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// SnackRequestDB represents a snack request row in the database
type SnackRequestDB struct {
	RequestID  uuid.UUID  `json:"request_id" db:"request_id"` // Primary key
	Name       string     `json:"name" db:"name"`             // Requested snack name
	Quantity   int        `json:"quantity" db:"quantity"`     // Requested amount, positive
	Reason     *string    `json:"reason" db:"reason"`         // Optional free-form reason
	URL        *string    `json:"url" db:"url"`               // Optional product link
	Status     string     `json:"status" db:"status"`         // pending, approved or rejected
	CreatedBy  uuid.UUID  `json:"created_by" db:"created_by"` // Requester
	ApprovedBy *uuid.UUID `json:"approved_by" db:"approved_by"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

// SnackRequestRow is a request joined with the requester's username for
// the request list page.
type SnackRequestRow struct {
	SnackRequestDB
	RequesterName string `json:"requester_name" db:"requester_name"`
}
