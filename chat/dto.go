// Package chat, request/response payloads for the relay endpoints.
package chat

// ChatRequest is the relay request payload.
type ChatRequest struct {
	Query string `json:"query" example:"What are the library hours?"`
}

// ChatResponse is returned to the caller after a successful relay.
type ChatResponse struct {
	Answer         string `json:"answer" example:"The library is open from 8 AM to 10 PM."`
	Success        bool   `json:"success" example:"true"`
	ResponseTimeMs int64  `json:"responseTimeMs" example:"412"`
	Language       string `json:"language" example:"en"`
	Category       string `json:"category" example:"general"`
}

// RecentChatsResponse carries the caller's own chat history, most recent
// first, bounded by the configured history limit.
type RecentChatsResponse struct {
	RegNo       string       `json:"regNo" example:"S2024001"`
	RecentChats []ChatRecord `json:"recentChats"`
}
