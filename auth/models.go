// Package auth handles authentication and role-based authorization.
// This file defines the User model, the identity root of the whole system.
// Chat history and file metadata are not embedded here; they live in their
// own tables keyed by the user row.
package auth

import "time"

// Role values a user may hold. The set is closed: the store enforces it
// with a CHECK constraint and the service validates it at registration.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ValidRole reports whether role is one of the enumerated role values.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// User represents a user in the system. The registration number is the
// primary lookup key and is immutable after creation; the database id is an
// internal surrogate and never leaves the service.
type User struct {
	ID           int64     `json:"-"`
	RegNo        string    `json:"regNo"`
	PasswordHash string    `json:"-"` // Never serialized to any caller
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
