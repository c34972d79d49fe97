// Package chat implements the role-gated chat relay: it forwards an
// authenticated caller's query to the external assistant service and
// durably records the exchange against the caller's profile.
// This file defines the ChatRecord model, one relayed exchange. Records are
// append-only: once written they are never mutated or removed by this
// service.
package chat

import "time"

// ChatRecord represents one relay exchange in a user's history.
type ChatRecord struct {
	ID             int64     `json:"-"`
	Query          string    `json:"query"`
	Response       string    `json:"response"`
	Success        bool      `json:"success"`
	ResponseTimeMs int64     `json:"responseTimeMs"`
	Language       string    `json:"language"`
	Category       string    `json:"category"`
	CreatedAt      time.Time `json:"createdAt"`
}
