package models

import (
	"time"

	"github.com/google/uuid"
)

// QuoteDB represents a motivational quote row.
type QuoteDB struct {
	QuoteID   uuid.UUID `json:"quote_id" db:"quote_id"` // Primary key
	Text      string    `json:"text" db:"text"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// QuoteCacheDB pins one quote to one calendar day. Created lazily on the
// first dashboard view of that day.
type QuoteCacheDB struct {
	CacheID uuid.UUID `json:"cache_id" db:"cache_id"` // Primary key
	Day     time.Time `json:"day" db:"day"`           // Unique calendar date
	QuoteID uuid.UUID `json:"quote_id" db:"quote_id"`
}
