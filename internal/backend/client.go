package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"rbay-web/internal/models"
	"rbay-web/internal/weberrors"
)

//go:generate mockgen -source=client.go -destination=mock_client.go -package=backend

// AuthCookieName is the cookie carrying the opaque session credential. The
// value is owned by the backend; this service only forwards it verbatim.
const AuthCookieName = "auth"

// Credentials is the signup/signin request payload
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewItemRequest is the item creation payload. Duration is the auction
// length in seconds.
type NewItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
}

// AuthResult carries the cookies the backend set on an auth response, to be
// relayed to the browser.
type AuthResult struct {
	Cookies []*http.Cookie
}

// Client is the backend API surface the frontend depends on. Every call
// attaches the viewer's auth cookie when one is present and exchanges JSON.
type Client interface {
	SignUp(ctx context.Context, creds Credentials) (*AuthResult, error)
	SignIn(ctx context.Context, creds Credentials) (*AuthResult, error)
	SignOut(ctx context.Context, authCookie string) (*AuthResult, error)
	GetSession(ctx context.Context, authCookie string) (*models.Session, error)
	CreateItem(ctx context.Context, authCookie string, req NewItemRequest) (*models.CreatedItem, error)
	GetItem(ctx context.Context, authCookie, itemID string) (*models.ItemResponse, error)
	PlaceBid(ctx context.Context, authCookie, itemID string, amount float64) error
	Like(ctx context.Context, authCookie, itemID string) (*models.LikeResponse, error)
	Unlike(ctx context.Context, authCookie, itemID string) (*models.LikeResponse, error)
	GetProfile(ctx context.Context, authCookie, userID string) (*models.ProfileResponse, error)
}

// APIError is a non-ok HTTP response from the backend. Message is the
// server-supplied error text when the body carried one, otherwise the
// endpoint's fallback text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// HTTPClient implements Client against a configured base URL
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient creates a backend client. A zero timeout falls back to ten
// seconds.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SignUp creates an account. The backend sets the auth cookie on success.
func (c *HTTPClient) SignUp(ctx context.Context, creds Credentials) (*AuthResult, error) {
	resp, _, err := c.do(ctx, http.MethodPost, "/api/auth/signup", "", creds, "Signup failed")
	if err != nil {
		return nil, err
	}
	return &AuthResult{Cookies: resp.Cookies()}, nil
}

// SignIn authenticates. The backend sets the auth cookie on success.
func (c *HTTPClient) SignIn(ctx context.Context, creds Credentials) (*AuthResult, error) {
	resp, _, err := c.do(ctx, http.MethodPost, "/api/auth/signin", "", creds, "Signin failed")
	if err != nil {
		return nil, err
	}
	return &AuthResult{Cookies: resp.Cookies()}, nil
}

// SignOut invalidates the session. Cookies in the result clear the browser
// credential.
func (c *HTTPClient) SignOut(ctx context.Context, authCookie string) (*AuthResult, error) {
	resp, _, err := c.do(ctx, http.MethodPost, "/api/auth/signout", authCookie, nil, "Signout failed")
	if err != nil {
		return nil, err
	}
	return &AuthResult{Cookies: resp.Cookies()}, nil
}

// GetSession resolves the auth cookie to a session record
func (c *HTTPClient) GetSession(ctx context.Context, authCookie string) (*models.Session, error) {
	_, raw, err := c.do(ctx, http.MethodGet, "/api/sessions", authCookie, nil, "Unable to resolve session")
	if err != nil {
		return nil, err
	}
	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("decode session response: %w", err)
	}
	return &session, nil
}

// CreateItem creates a listing and returns its id
func (c *HTTPClient) CreateItem(ctx context.Context, authCookie string, req NewItemRequest) (*models.CreatedItem, error) {
	_, raw, err := c.do(ctx, http.MethodPost, "/api/items/new", authCookie, req, "Unable to create item")
	if err != nil {
		return nil, err
	}
	var created models.CreatedItem
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, fmt.Errorf("decode create item response: %w", err)
	}
	return &created, nil
}

// GetItem fetches an item with its bid history and similar items, as seen
// by the viewer's session.
func (c *HTTPClient) GetItem(ctx context.Context, authCookie, itemID string) (*models.ItemResponse, error) {
	path := "/api/items/" + url.PathEscape(itemID)
	_, raw, err := c.do(ctx, http.MethodGet, path, authCookie, nil, "Unable to load item")
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, weberrors.ErrItemNotFound
		}
		return nil, err
	}
	var item models.ItemResponse
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("decode item response: %w", err)
	}
	return &item, nil
}

// PlaceBid submits a bid on an item
func (c *HTTPClient) PlaceBid(ctx context.Context, authCookie, itemID string, amount float64) error {
	path := "/api/items/" + url.PathEscape(itemID) + "/bids"
	body := map[string]float64{"amount": amount}
	_, _, err := c.do(ctx, http.MethodPost, path, authCookie, body, "Unable to place bid")
	return err
}

// Like marks the item liked by the viewer
func (c *HTTPClient) Like(ctx context.Context, authCookie, itemID string) (*models.LikeResponse, error) {
	return c.likeRequest(ctx, http.MethodPost, authCookie, itemID)
}

// Unlike removes the viewer's like from the item
func (c *HTTPClient) Unlike(ctx context.Context, authCookie, itemID string) (*models.LikeResponse, error) {
	return c.likeRequest(ctx, http.MethodDelete, authCookie, itemID)
}

func (c *HTTPClient) likeRequest(ctx context.Context, method, authCookie, itemID string) (*models.LikeResponse, error) {
	path := "/api/items/" + url.PathEscape(itemID) + "/likes"
	_, raw, err := c.do(ctx, method, path, authCookie, nil, "Unable to update like")
	if err != nil {
		return nil, err
	}
	// An empty or malformed success body still counts: the caller falls
	// back to locally computed state.
	var like models.LikeResponse
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &like)
	}
	return &like, nil
}

// GetProfile fetches a user's profile with shared and liked items
func (c *HTTPClient) GetProfile(ctx context.Context, authCookie, userID string) (*models.ProfileResponse, error) {
	path := "/api/users/" + url.PathEscape(userID)
	_, raw, err := c.do(ctx, http.MethodGet, path, authCookie, nil, "Unable to load user profile")
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, weberrors.ErrProfileNotFound
		}
		return nil, err
	}
	var profile models.ProfileResponse
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("decode profile response: %w", err)
	}
	return &profile, nil
}

// do executes one backend request. It attaches the auth cookie when
// present, encodes the body as JSON, and maps non-ok responses to APIError
// with a defensively parsed message.
func (c *HTTPClient) do(ctx context.Context, method, path, authCookie string, body any, fallback string) (*http.Response, []byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authCookie != "" {
		req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: authCookie})
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(raw, fallback),
		}
	}

	return resp, raw, nil
}

// errorMessage extracts the server-supplied error text from a non-ok body.
// A body that is not JSON, or carries neither field, yields the fallback.
func errorMessage(raw []byte, fallback string) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return fallback
}

func isStatus(err error, status int) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == status
}
