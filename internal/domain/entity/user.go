// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in to the service. Only admins reach the
// catalog management surfaces; the configurator itself needs no account.
type User struct {
	ID           uuid.UUID `json:"id"`    // The Global Unique Identifier (GUID) for the user.
	Email        string    `json:"email"` // Login identifier, unique across users.
	Name         string    `json:"name"`  // Display name.
	Role         Role      `json:"role"`  // Single role; "admin" unlocks the dashboard.
	PasswordHash string    `json:"-"`     // bcrypt hash, empty for Google-only accounts.
	GoogleSub    string    `json:"-"`     // Google "sub" claim once the account has signed in with Google.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user may manage the catalog.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
