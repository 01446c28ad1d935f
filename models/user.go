package models

import (
	"strings"
	"time"
)

// Role is the authorization level of a user account.
type Role string

const (
	// RoleUser can submit entries and see its own statistics.
	RoleUser Role = "user"
	// RoleAdmin can review every entry, export data and manage accounts.
	RoleAdmin Role = "admin"
)

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the login identifier. It is stored lowercase so that
	// lookups and the unique index are case-insensitive.
	Username string `json:"username"`

	// Password holds the bcrypt hash of the user's password.
	// It is never serialized.
	Password string `json:"-"`

	// Email is optional contact information.
	Email string `json:"email,omitempty"`

	// FullName is the display name; it is also the default submitter name
	// on new entries.
	FullName string `json:"full_name"`

	Role     Role `json:"role"`
	IsActive bool `json:"is_active"`

	// LastLogin is stamped on every successful login.
	LastLogin *time.Time `json:"last_login,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user has the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// NormalizeUsername returns the canonical form of a username as it is
// stored and compared: trimmed and lowercased.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
