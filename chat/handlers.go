// Package chat, HTTP handlers for the relay endpoints. Both handlers run
// behind the auth middleware with roles {user, admin}; by the time they
// execute, the verified identity and the raw bearer credential are in the
// request context.
package chat

import (
	"encoding/json"
	"net/http"

	"github.com/user/archon-go/apperror"
	"github.com/user/archon-go/auth"
)

// ChatHandlers wraps the ChatService to provide HTTP handlers.
type ChatHandlers struct {
	service *ChatService
}

// NewChatHandlers creates new ChatHandlers.
func NewChatHandlers(service *ChatService) *ChatHandlers {
	return &ChatHandlers{service: service}
}

// HandleChat godoc
// @Summary Relay a chat query to the assistant service
// @Description Forwards the query to the external assistant under the caller's credential and records the exchange in the caller's history.
// @Tags Chat
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param chatBody body chat.ChatRequest true "Chat query"
// @Success 200 {object} chat.ChatResponse "Relay succeeded"
// @Failure 400 {object} apperror.ErrorResponse "Empty query"
// @Failure 401 {object} apperror.ErrorResponse "Missing, invalid or expired token"
// @Failure 403 {object} apperror.ErrorResponse "Insufficient role"
// @Failure 502 {object} apperror.ErrorResponse "Assistant service unavailable"
// @Router /api/chat [post]
func (h *ChatHandlers) HandleChat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Access denied. No token provided.", nil))
			return
		}
		bearer, _ := auth.BearerFromContext(r.Context())

		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		resp, err := h.service.Relay(r.Context(), claims, bearer, req.Query)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleRecentChats godoc
// @Summary Get the caller's recent chat history
// @Description Returns the caller's own history only, most recent first, bounded by the configured limit.
// @Tags Chat
// @Produce json
// @Security BearerAuth
// @Success 200 {object} chat.RecentChatsResponse "Chat history"
// @Failure 401 {object} apperror.ErrorResponse "Missing, invalid or expired token"
// @Failure 403 {object} apperror.ErrorResponse "Insufficient role"
// @Router /api/user/recent-chats [get]
func (h *ChatHandlers) HandleRecentChats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := auth.ClaimsFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("Access denied. No token provided.", nil))
			return
		}

		resp, err := h.service.RecentChats(r.Context(), claims)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, resp)
	}
}
