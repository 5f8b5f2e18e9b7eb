package perftests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rbay-web/internal/backend"
	"rbay-web/internal/countdown"
	"rbay-web/internal/models"
	"rbay-web/internal/server"
	"rbay-web/services/web/helpers"

	"github.com/gin-gonic/gin"
)

// stubClient serves canned marketplace payloads in-process so the benchmarks
// measure rendering and routing cost, not network round trips.
type stubClient struct {
	session *models.Session
	item    models.ItemResponse
	profile models.ProfileResponse
}

func newStubClient() *stubClient {
	userID := "user1"
	return &stubClient{
		session: &models.Session{ID: "sess1", UserID: &userID, Username: "alice"},
		item: models.ItemResponse{
			Item: models.Item{
				ID:          "item1",
				Name:        "Vintage Chair",
				Description: "A very nice chair",
				OwnerID:     "user9",
				Price:       1234.56,
				Bids:        12,
				Likes:       5,
				EndingAt:    models.NewFlexTime(time.Now().Add(25 * time.Hour)),
				CreatedAt:   models.NewFlexTime(time.Now().Add(-time.Hour)),
			},
			History: []models.BidHistoryPoint{
				{CreatedAt: models.NewFlexTime(time.Now().Add(-30 * time.Minute)), Amount: 1200},
				{CreatedAt: models.NewFlexTime(time.Now().Add(-10 * time.Minute)), Amount: 1234.56},
			},
			SimilarItems: []models.Item{
				{ID: "item2", Name: "Ottoman", Description: "Matches the chair", Price: 400, Bids: 2},
			},
		},
		profile: models.ProfileResponse{
			Username: "bob",
			LikedItems: []models.Item{
				{ID: "item1", Name: "Vintage Chair", Description: "A very nice chair", Price: 1234.56, Bids: 12, Likes: 5},
			},
		},
	}
}

func (s *stubClient) SignUp(ctx context.Context, creds backend.Credentials) (*backend.AuthResult, error) {
	return &backend.AuthResult{}, nil
}

func (s *stubClient) SignIn(ctx context.Context, creds backend.Credentials) (*backend.AuthResult, error) {
	return &backend.AuthResult{}, nil
}

func (s *stubClient) SignOut(ctx context.Context, authCookie string) (*backend.AuthResult, error) {
	return &backend.AuthResult{}, nil
}

func (s *stubClient) GetSession(ctx context.Context, authCookie string) (*models.Session, error) {
	return s.session, nil
}

func (s *stubClient) CreateItem(ctx context.Context, authCookie string, req backend.NewItemRequest) (*models.CreatedItem, error) {
	return &models.CreatedItem{ID: "item1"}, nil
}

func (s *stubClient) GetItem(ctx context.Context, authCookie, itemID string) (*models.ItemResponse, error) {
	resp := s.item
	return &resp, nil
}

func (s *stubClient) PlaceBid(ctx context.Context, authCookie, itemID string, amount float64) error {
	return nil
}

func (s *stubClient) Like(ctx context.Context, authCookie, itemID string) (*models.LikeResponse, error) {
	liked := true
	count := 6
	return &models.LikeResponse{UserLikes: &liked, Item: &models.LikeItemState{Likes: &count}}, nil
}

func (s *stubClient) Unlike(ctx context.Context, authCookie, itemID string) (*models.LikeResponse, error) {
	liked := false
	count := 5
	return &models.LikeResponse{UserLikes: &liked, Item: &models.LikeItemState{Likes: &count}}, nil
}

func (s *stubClient) GetProfile(ctx context.Context, authCookie, userID string) (*models.ProfileResponse, error) {
	resp := s.profile
	return &resp, nil
}

func benchRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return server.SetupRouter(newStubClient(), "../../web/templates/*.html")
}

func serveGet(router *gin.Engine, path string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(&http.Cookie{Name: backend.AuthCookieName, Value: "bench-token"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

// Benchmark 1: item detail page - single-threaded render cost
func Benchmark_ItemPage_Render(b *testing.B) {
	router := benchRouter()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if code := serveGet(router, "/items/item1"); code != http.StatusOK {
			b.Fatalf("unexpected status: %d", code)
		}
	}
}

// Benchmark 2: item detail page - concurrent viewers
func Benchmark_ItemPage_Concurrent(b *testing.B) {
	router := benchRouter()

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if code := serveGet(router, "/items/item1"); code != http.StatusOK {
				b.Fatalf("unexpected status: %d", code)
			}
		}
	})
}

// Benchmark 3: profile page render
func Benchmark_ProfilePage_Render(b *testing.B) {
	router := benchRouter()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if code := serveGet(router, "/users/user9"); code != http.StatusOK {
			b.Fatalf("unexpected status: %d", code)
		}
	}
}

// Benchmark 4: countdown label computation across the unit boundaries
func Benchmark_CountdownLabel(b *testing.B) {
	now := time.Now()
	endings := []models.FlexTime{
		models.NewFlexTime(now.Add(45 * time.Second)),
		models.NewFlexTime(now.Add(90 * time.Minute)),
		models.NewFlexTime(now.Add(25 * time.Hour)),
		models.NewFlexTime(now.Add(-time.Minute)),
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = countdown.Label(endings[i%len(endings)], now)
	}
}

// Benchmark 5: currency formatting with comma grouping
func Benchmark_FormatCurrency(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_ = helpers.FormatCurrency(float64(i) + 0.99)
	}
}
