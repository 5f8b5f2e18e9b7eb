package session

import (
	"context"
	"net/http"

	"rbay-web/internal/backend"
	"rbay-web/internal/models"
	"rbay-web/utils"
)

// Resolver turns an incoming request's auth cookie into a session record by
// asking the backend. Resolution never fails: any problem degrades to an
// anonymous view.
type Resolver struct {
	client backend.Client
}

// NewResolver creates a Resolver backed by the given client
func NewResolver(client backend.Client) *Resolver {
	return &Resolver{client: client}
}

// Resolve returns the viewer's session, or nil for anonymous viewers.
// A missing cookie short-circuits without a network call. A non-ok backend
// response or a transport failure is logged and treated as anonymous.
func (r *Resolver) Resolve(ctx context.Context, req *http.Request) *models.Session {
	cookie, err := req.Cookie(backend.AuthCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	sess, err := r.client.GetSession(ctx, cookie.Value)
	if err != nil {
		if apiErr, ok := err.(*backend.APIError); ok {
			// Not logged in, not an error
			utils.Debug("session not recognized", map[string]any{
				"status": apiErr.StatusCode,
			})
		} else {
			utils.Warn("failed to resolve session", map[string]any{
				"error": err.Error(),
			})
		}
		return nil
	}

	return sess
}
