// Package chat, assistant service client. The relay is a single synchronous
// JSON POST to the external inference service, carrying the caller's own
// bearer token so the upstream can apply its own policy, plus a generated
// correlation id for tracing a relay call across both services.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/user/archon-go/config"
)

// AssistantClient is the upstream contract the relay service depends on.
// Tests substitute stubs; the production implementation is HTTPAssistantClient.
type AssistantClient interface {
	// Ask forwards a query under the caller's credential and returns the
	// assistant's reply. Any transport, status, or decoding failure is
	// returned as an error; the caller maps it onto the upstream-failure
	// taxonomy.
	Ask(ctx context.Context, bearerToken, query string) (*AssistantReply, error)
}

// assistantRequest is the upstream wire request.
type assistantRequest struct {
	Message string `json:"message"`
}

// AssistantReply is the upstream wire response. Language and category are
// classification tags the assistant may omit; the service defaults them.
type AssistantReply struct {
	Response string `json:"response"`
	Language string `json:"language,omitempty"`
	Category string `json:"category,omitempty"`
}

// HTTPAssistantClient talks to the assistant service over HTTP/JSON.
type HTTPAssistantClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPAssistantClient creates a client for the configured assistant
// service. The client-level timeout bounds every relay call even if the
// inbound request context carries no deadline of its own.
func NewHTTPAssistantClient(cfg config.AssistantConfig) *HTTPAssistantClient {
	return &HTTPAssistantClient{
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// Ask performs the relay call. The context comes from the inbound request,
// so a dropped caller connection cancels the in-flight upstream call
// promptly rather than leaving it to run unobserved.
func (c *HTTPAssistantClient) Ask(ctx context.Context, bearerToken, query string) (*AssistantReply, error) {
	body, err := json.Marshal(assistantRequest{Message: query})
	if err != nil {
		return nil, fmt.Errorf("failed to encode assistant request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build assistant request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+bearerToken)
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("assistant request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain a little of the body for the server-side log; the caller
		// only ever sees the generic upstream-failure message.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("assistant returned status %d: %s", resp.StatusCode, snippet)
	}

	var reply AssistantReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("failed to decode assistant response: %w", err)
	}
	return &reply, nil
}
