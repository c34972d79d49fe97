// Package auth provides authentication and authorization functionality.
// This file defines the request/response payloads (DTOs) of the /auth
// endpoints. The field names match what the React frontend already sends,
// so this wire contract cannot change without coordinating a frontend
// release.
package auth

import "time"

// RegisterRequest represents the registration request payload.
type RegisterRequest struct {
	RegNo    string `json:"regNo" example:"S2024001"`
	Password string `json:"password" example:"strongpassword123"`
	Role     string `json:"role" example:"user"`
}

// RegisterResponse is the public projection returned on successful
// registration. The password hash is never part of any response.
type RegisterResponse struct {
	Message   string    `json:"message" example:"User registered successfully"`
	RegNo     string    `json:"regNo" example:"S2024001"`
	Role      string    `json:"role" example:"user"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	RegNo    string `json:"regNo" example:"S2024001"`
	Password string `json:"password" example:"strongpassword123"`
}

// LoginResponse carries the signed token plus the role, which the frontend
// uses for client-side routing decisions.
type LoginResponse struct {
	Token     string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RegNo     string `json:"regNo" example:"S2024001"`
	Role      string `json:"role" example:"user"`
	ExpiresIn int64  `json:"expiresIn" example:"86400"` // Seconds until the token expires
}

// MeResponse echoes the verified claims of the presented token.
type MeResponse struct {
	RegNo     string `json:"regNo" example:"S2024001"`
	Role      string `json:"role" example:"user"`
	IssuedAt  int64  `json:"iat" example:"1700000000"`
	ExpiresAt int64  `json:"exp" example:"1700086400"`
}

// HealthResponse is the liveness payload of /auth/health.
type HealthResponse struct {
	Status    string    `json:"status" example:"Auth service is running"`
	Timestamp time.Time `json:"timestamp"`
}
