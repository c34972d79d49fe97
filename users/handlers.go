// Package users, HTTP handlers for the user and admin endpoints.
package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/user/archon-go/apperror"
	"github.com/user/archon-go/auth"
)

// UserHandlers wraps the UserService to provide HTTP handlers.
type UserHandlers struct {
	service *UserService
}

// NewUserHandlers creates new UserHandlers.
func NewUserHandlers(service *UserService) *UserHandlers {
	return &UserHandlers{service: service}
}

// HandleListUsers godoc
// @Summary List all users (admin)
// @Description Returns every user's public projection, newest first. Password hashes are never included.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users.UserListResponse "User list"
// @Failure 401 {object} apperror.ErrorResponse "Missing, invalid or expired token"
// @Failure 403 {object} apperror.ErrorResponse "Admin role required"
// @Router /api/admin/users [get]
func (h *UserHandlers) HandleListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.service.ListUsers(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleDeleteUser godoc
// @Summary Delete a user (admin)
// @Description Deletes the user with the given registration number. Admins cannot delete their own account.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param regNo path string true "Registration number of the user to delete"
// @Success 200 {object} users.DeletedUserResponse "Deleted summary"
// @Failure 400 {object} apperror.ErrorResponse "Self-deletion blocked"
// @Failure 401 {object} apperror.ErrorResponse "Missing, invalid or expired token"
// @Failure 403 {object} apperror.ErrorResponse "Admin role required"
// @Failure 404 {object} apperror.ErrorResponse "User not found"
// @Router /api/admin/users/{regNo} [delete]
func (h *UserHandlers) HandleDeleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Access denied. No token provided.", nil))
			return
		}

		targetRegNo := chi.URLParam(r, "regNo")
		resp, err := h.service.DeleteUser(r.Context(), claims.RegNo, targetRegNo)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleAnalytics godoc
// @Summary Aggregate counts (admin)
// @Description Returns user, admin and chat totals for the dashboard.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users.AnalyticsResponse "Aggregate counts"
// @Failure 401 {object} apperror.ErrorResponse "Missing, invalid or expired token"
// @Failure 403 {object} apperror.ErrorResponse "Admin role required"
// @Router /api/admin/analytics [get]
func (h *UserHandlers) HandleAnalytics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := h.service.Analytics(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleProfile godoc
// @Summary Get the caller's own profile
// @Description Returns the caller's public projection with chat and uploaded-file counts.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} users.ProfileResponse "Profile"
// @Failure 401 {object} apperror.ErrorResponse "Missing, invalid or expired token"
// @Failure 404 {object} apperror.ErrorResponse "User no longer exists"
// @Router /api/user/profile [get]
func (h *UserHandlers) HandleProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Access denied. No token provided.", nil))
			return
		}

		resp, err := h.service.Profile(r.Context(), claims.RegNo)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, resp)
	}
}
