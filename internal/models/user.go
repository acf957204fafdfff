package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is an explicit user role stored on the user row.
// It is assigned once at registration and never derived from the username.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `json:"user_id" db:"user_id"`           // Primary key
	Username     string    `json:"username" db:"username"`         // Unique username
	PasswordHash string    `json:"-" db:"password_hash"`           // Bcrypt hash
	Role         Role      `json:"role" db:"role"`                 // admin or member
	CreatedAt    time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}
