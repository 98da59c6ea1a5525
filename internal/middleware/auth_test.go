package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jonager/albumfied-server/internal/domain"
	"github.com/jonager/albumfied-server/internal/session"
)

type mockSessions struct {
	mock.Mock
}

func (m *mockSessions) Resolve(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

type mockUsers struct {
	mock.Mock
}

func (m *mockUsers) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func gateRouter(sessions SessionResolver, users UserLoader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequireSession(sessions, users))
	r.GET("/protected", func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": principal.UserID, "spotify_id": principal.SpotifyID})
	})
	return r
}

func TestRequireSession_NoToken(t *testing.T) {
	r := gateRouter(new(mockSessions), new(mockUsers))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestRequireSession_CookieHappyPath(t *testing.T) {
	sessions := new(mockSessions)
	users := new(mockUsers)
	sessions.On("Resolve", mock.Anything, "tok").Return("u1", nil)
	users.On("GetByID", mock.Anything, "u1").Return(&domain.User{
		ID:          "u1",
		SpotifyID:   "sp1",
		AccessToken: "access",
	}, nil)

	r := gateRouter(sessions, users)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"u1"`)
	assert.Contains(t, w.Body.String(), `"spotify_id":"sp1"`)
}

func TestRequireSession_BearerFallback(t *testing.T) {
	sessions := new(mockSessions)
	users := new(mockUsers)
	sessions.On("Resolve", mock.Anything, "tok").Return("u1", nil)
	users.On("GetByID", mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	r := gateRouter(sessions, users)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer tok")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireSession_InvalidSession(t *testing.T) {
	sessions := new(mockSessions)
	sessions.On("Resolve", mock.Anything, "bad").Return("", session.ErrInvalidToken)

	r := gateRouter(sessions, new(mockUsers))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireSession_UserGone(t *testing.T) {
	sessions := new(mockSessions)
	users := new(mockUsers)
	sessions.On("Resolve", mock.Anything, "tok").Return("u1", nil)
	users.On("GetByID", mock.Anything, "u1").Return(nil, domain.ErrUserNotFound)

	r := gateRouter(sessions, users)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer tok")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
