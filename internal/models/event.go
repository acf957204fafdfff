package models

// StockEvent represents an inventory change published to Kafka after a
// mutation commits. Publishing is best-effort and never fails the mutation.
type StockEvent struct {
	EventID   string `json:"event_id"`           // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"`          // Timestamp is the Unix timestamp (in seconds) of the change.
	SnackID   string `json:"snack_id,omitempty"` // SnackID is empty for request-level actions.
	UserID    string `json:"user_id"`            // UserID is the actor that caused the change.
	Action    string `json:"action"`             // Action is one of the history action constants.
	Quantity  int    `json:"quantity"`           // Quantity is the magnitude of the change.
}
