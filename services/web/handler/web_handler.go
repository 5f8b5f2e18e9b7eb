package handler

import (
	"time"

	"rbay-web/internal/backend"
)

// WebHandler serves every browser-facing page and form action. All state it
// renders comes from the backend API; nothing is persisted locally.
type WebHandler struct {
	client backend.Client
	now    func() time.Time
}

// NewWebHandler creates the handler set backed by the given API client
func NewWebHandler(client backend.Client) *WebHandler {
	return &WebHandler{
		client: client,
		now:    time.Now,
	}
}
