// Package chat, relay service. Holds the business rules of the relay path:
// query validation, forwarding under the caller's credential, latency
// measurement, classification defaulting, and the exactly-one-record append
// on success. Failures on the upstream side write nothing, so a caller can
// always retry without duplicating history.
package chat

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/user/archon-go/apperror"
	"github.com/user/archon-go/auth"
	"github.com/user/archon-go/config"
)

// Defaults for the classification tags when the assistant omits them.
const (
	DefaultLanguage = "en"
	DefaultCategory = "general"
)

// ChatService relays queries and reads history.
type ChatService struct {
	store        ChatStore
	client       AssistantClient
	historyLimit int
}

// NewChatService creates a ChatService with its dependencies injected.
func NewChatService(store ChatStore, client AssistantClient, cfg config.ChatConfig) *ChatService {
	return &ChatService{
		store:        store,
		client:       client,
		historyLimit: cfg.HistoryLimit,
	}
}

// Relay forwards the query to the assistant service under the caller's
// credential and, on success, appends exactly one record to the caller's
// history. The identity comes from the verified claims, never from
// caller-supplied input. Upstream failures surface as 502 and leave the
// history untouched.
func (s *ChatService) Relay(ctx context.Context, claims *auth.Claims, bearerToken, query string) (*ChatResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperror.NewValidationError("query is required", nil)
	}

	start := time.Now()
	reply, err := s.client.Ask(ctx, bearerToken, query)
	if err != nil {
		log.Printf("Assistant relay failed for %s: %v", claims.RegNo, err)
		return nil, apperror.NewExternalServiceError("assistant service is unavailable", err)
	}
	responseTimeMs := time.Since(start).Milliseconds()

	// The caller hung up while the upstream call was in flight. The reply
	// has nobody to go to and no record may be written for a cancelled
	// request.
	if ctx.Err() != nil {
		return nil, apperror.NewExternalServiceError("request cancelled", ctx.Err())
	}

	language := reply.Language
	if language == "" {
		language = DefaultLanguage
	}
	category := reply.Category
	if category == "" {
		category = DefaultCategory
	}

	rec := &ChatRecord{
		Query:          query,
		Response:       reply.Response,
		Success:        true,
		ResponseTimeMs: responseTimeMs,
		Language:       language,
		Category:       category,
	}
	if err := s.store.AppendRecord(ctx, claims.RegNo, rec); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			// Valid token for a user deleted after issuance: the
			// stale-authority window of the stateless token design.
			return nil, apperror.NewNotFoundError("user not found", nil)
		}
		// The exchange was not durably recorded, so it is not reported as a
		// success either.
		return nil, apperror.NewDatabaseError("failed to record chat exchange", err)
	}

	return &ChatResponse{
		Answer:         rec.Response,
		Success:        rec.Success,
		ResponseTimeMs: rec.ResponseTimeMs,
		Language:       rec.Language,
		Category:       rec.Category,
	}, nil
}

// RecentChats returns the caller's own history, most recent first, bounded
// by the configured limit. There is no cross-identity read and no admin
// override on this path; that restriction is deliberate.
func (s *ChatService) RecentChats(ctx context.Context, claims *auth.Claims) (*RecentChatsResponse, error) {
	records, err := s.store.RecentByRegNo(ctx, claims.RegNo, s.historyLimit)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to load chat history", err)
	}
	return &RecentChatsResponse{
		RegNo:       claims.RegNo,
		RecentChats: records,
	}, nil
}
