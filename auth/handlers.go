// Package auth, HTTP handlers for the /auth endpoints. This is the
// controller layer: decode the payload, do basic shape checks, call the
// service, and write a JSON response. The shared writeJSON/WriteError
// helpers at the bottom are used by every feature package in the service.
package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/user/archon-go/apperror"
	"github.com/user/archon-go/config"
)

// Handlers wraps the AuthService to provide HTTP handlers.
type Handlers struct {
	service *AuthService
	server  config.ServerConfig
}

// NewHandlers creates a new Handlers instance. The server configuration is
// needed for the environment gate on registration.
func NewHandlers(service *AuthService, server config.ServerConfig) *Handlers {
	return &Handlers{service: service, server: server}
}

// HandleHealth godoc
// @Summary Auth service liveness
// @Description Reports that the auth service is up.
// @Tags Auth
// @Produce json
// @Success 200 {object} auth.HealthResponse
// @Router /auth/health [get]
func (h *Handlers) HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{
			Status:    "Auth service is running",
			Timestamp: time.Now().UTC(),
		})
	}
}

// HandleRegister godoc
// @Summary User Registration
// @Description Registers a new user. This is a provisioning operation and is disabled entirely when the service runs in production mode.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "User registration details"
// @Success 201 {object} auth.RegisterResponse "User created successfully"
// @Failure 400 {object} apperror.ErrorResponse "Invalid input or missing fields"
// @Failure 403 {object} apperror.ErrorResponse "Registration disabled in production"
// @Failure 409 {object} apperror.ErrorResponse "Registration number already exists"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /auth/register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Environment gate: registration is a trusted-environment operation
		// and is shut off outright in production.
		if !h.server.RegistrationEnabled() {
			WriteError(w, r, apperror.NewUnauthorizedError("registration is disabled in production", nil))
			return
		}

		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		user, err := h.service.Register(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Message:   "User registered successfully",
			RegNo:     user.RegNo,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		})
	}
}

// HandleLogin godoc
// @Summary User Login
// @Description Logs in an existing user and returns a signed token plus the role for client-side routing.
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "User login credentials"
// @Success 200 {object} auth.LoginResponse "Login successful, token provided"
// @Failure 400 {object} apperror.ErrorResponse "Invalid input or missing fields"
// @Failure 401 {object} apperror.ErrorResponse "Invalid credentials"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /auth/login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		resp, err := h.service.Login(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// HandleMe godoc
// @Summary Decode the presented token
// @Description Echoes the verified claims of the caller's token. Runs behind the auth middleware with an empty role set: any authenticated identity.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.MeResponse "Decoded claims"
// @Failure 401 {object} apperror.ErrorResponse "Missing, invalid or expired token"
// @Router /auth/me [get]
func (h *Handlers) HandleMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			WriteError(w, r, apperror.NewAuthError("Access denied. No token provided.", nil))
			return
		}

		writeJSON(w, http.StatusOK, MeResponse{
			RegNo:     claims.RegNo,
			Role:      claims.Role,
			IssuedAt:  claims.IssuedAt.Unix(),
			ExpiresAt: claims.ExpiresAt.Unix(),
		})
	}
}

// writeJSON serializes data to JSON and writes it with the given status.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// WriteError converts any error into the standardized apperror response.
// Errors that are not AppErrors become a generic InternalError; their detail
// is logged server-side and never serialized to the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred", err)
	}

	if appErr.StatusCode() >= http.StatusInternalServerError {
		log.Printf("Error processing %s %s: %v", r.Method, r.URL.Path, appErr.Error())
	}

	writeJSON(w, appErr.StatusCode(), appErr.ToResponse())
}

// WriteJSON is the exported variant of writeJSON for sibling feature
// packages (chat, users) that share the response conventions.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, data)
}
