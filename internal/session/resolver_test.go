package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"rbay-web/internal/backend"
	"rbay-web/internal/models"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func requestWithCookie(value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if value != "" {
		req.AddCookie(&http.Cookie{Name: backend.AuthCookieName, Value: value})
	}
	return req
}

// An absent cookie resolves to anonymous without touching the backend
func TestResolver_NoCookie_NoNetworkCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := backend.NewMockClient(ctrl)
	// No EXPECT: any GetSession call fails the test.

	resolver := NewResolver(mockClient)
	sess := resolver.Resolve(context.Background(), requestWithCookie(""))
	require.Nil(t, sess)
}

func TestResolver_NonOKResponse_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := backend.NewMockClient(ctrl)
	mockClient.EXPECT().
		GetSession(gomock.Any(), "stale-token").
		Return(nil, &backend.APIError{StatusCode: http.StatusUnauthorized, Message: "Unable to resolve session"})

	resolver := NewResolver(mockClient)
	sess := resolver.Resolve(context.Background(), requestWithCookie("stale-token"))
	require.Nil(t, sess)
}

func TestResolver_TransportFailure_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := backend.NewMockClient(ctrl)
	mockClient.EXPECT().
		GetSession(gomock.Any(), "token").
		Return(nil, errors.New("backend request failed: connection refused"))

	resolver := NewResolver(mockClient)
	sess := resolver.Resolve(context.Background(), requestWithCookie("token"))
	require.Nil(t, sess)
}

func TestResolver_ValidCookie_ReturnsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := "user1"
	mockClient := backend.NewMockClient(ctrl)
	mockClient.EXPECT().
		GetSession(gomock.Any(), "token").
		Return(&models.Session{ID: "sess1", UserID: &userID, Username: "alice"}, nil)

	resolver := NewResolver(mockClient)
	sess := resolver.Resolve(context.Background(), requestWithCookie("token"))
	require.NotNil(t, sess)
	require.Equal(t, "alice", sess.Username)
	require.True(t, sess.LoggedIn())
}
