package integrationtests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"rbay-web/internal/backend"
	"rbay-web/internal/server"

	"github.com/gin-gonic/gin"
)

const validToken = "valid-token"

// newFakeBackend serves the slice of the marketplace API these tests need.
// It issues the auth cookie on signup/signin and recognizes it afterwards.
func newFakeBackend() http.Handler {
	mux := http.NewServeMux()

	authenticated := func(r *http.Request) bool {
		cookie, err := r.Cookie(backend.AuthCookieName)
		return err == nil && cookie.Value == validToken
	}

	mux.HandleFunc("/api/sessions", func(w http.ResponseWriter, r *http.Request) {
		if !authenticated(r) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":       "sess1",
			"userId":   "user1",
			"username": "alice",
		})
	})

	signIn := func(w http.ResponseWriter, r *http.Request) {
		var creds backend.Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil || creds.Username == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "missing credentials"})
			return
		}
		if creds.Username == "taken" {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{"error": "username taken"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: backend.AuthCookieName, Value: validToken, Path: "/"})
		w.Write([]byte(`{}`))
	}
	mux.HandleFunc("/api/auth/signup", signIn)
	mux.HandleFunc("/api/auth/signin", signIn)

	mux.HandleFunc("/api/auth/signout", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: backend.AuthCookieName, Value: "", Path: "/", MaxAge: -1})
		w.Write([]byte(`{}`))
	})

	mux.HandleFunc("/api/items/new", func(w http.ResponseWriter, r *http.Request) {
		if !authenticated(r) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "You must be signed in"})
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "item77"})
	})

	mux.HandleFunc("/api/items/item1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"item": map[string]any{
				"id":          "item1",
				"name":        "Vintage Chair",
				"description": "A very nice chair",
				"ownerId":     "user9",
				"price":       12.34,
				"bids":        3,
				"likes":       5,
				"endingAt":    time.Now().Add(25 * time.Hour).UnixMilli(),
				"createdAt":   time.Now().Add(-time.Hour).Format(time.RFC3339),
			},
			"userLikes": false,
			"history": []map[string]any{
				{"createdAt": time.Now().Add(-30 * time.Minute).Format(time.RFC3339), "amount": 12.34},
			},
			"similarItems": []any{},
		})
	})

	mux.HandleFunc("/api/items/item1/bids", func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]float64
		json.NewDecoder(r.Body).Decode(&payload)
		if payload["amount"] <= 12.34 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "bid too low"})
			return
		}
		w.Write([]byte(`{}`))
	})

	mux.HandleFunc("/api/items/item1/likes", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			json.NewEncoder(w).Encode(map[string]any{
				"userLikes": true,
				"item":      map[string]any{"likes": 6},
			})
		case http.MethodDelete:
			json.NewEncoder(w).Encode(map[string]any{
				"userLikes": false,
				"item":      map[string]any{"likes": 5},
			})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	mux.HandleFunc("/api/users/user9", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"username": "bob",
			"sharedItems": []map[string]any{
				{"id": "item1", "name": "Vintage Chair", "description": "A very nice chair", "price": 12.34, "bids": 3, "likes": 5},
			},
			"likedItems": []any{},
		})
	})

	return mux
}

// SetupTestRouter wires the real router against an in-process fake backend
func SetupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(newFakeBackend())
	t.Cleanup(srv.Close)

	client := backend.NewHTTPClient(srv.URL, 5*time.Second)
	return server.SetupRouter(client, "../../web/templates/*.html")
}

// ExecuteGet performs a GET, optionally carrying the auth cookie
func ExecuteGet(router *gin.Engine, path, authCookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authCookie != "" {
		req.AddCookie(&http.Cookie{Name: backend.AuthCookieName, Value: authCookie})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecutePostForm performs a form POST, optionally carrying the auth cookie
func ExecutePostForm(router *gin.Engine, path string, form url.Values, authCookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if authCookie != "" {
		req.AddCookie(&http.Cookie{Name: backend.AuthCookieName, Value: authCookie})
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
