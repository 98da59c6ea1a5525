package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jonager/albumfied-server/internal/domain"
)

type stubSessions struct{ mock.Mock }

func (s *stubSessions) Resolve(ctx context.Context, token string) (string, error) {
	args := s.Called(ctx, token)
	return args.String(0), args.Error(1)
}

type stubUsers struct{ mock.Mock }

func (s *stubUsers) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := s.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func testRouter(t *testing.T) (*stubSessions, *stubUsers, http.Handler) {
	t.Helper()
	sessions := new(stubSessions)
	users := new(stubUsers)
	auth := NewAuthHandler(AuthHandlerConfig{
		Auth:        new(MockAuthenticator),
		Profiles:    new(MockProfileFetcher),
		Users:       new(MockUserDirectory),
		Sessions:    new(MockSessionManager),
		FrontendURL: "https://app.example",
	})
	router := NewRouter(RouterConfig{
		Auth:        auth,
		Playlist:    NewPlaylistHandler(new(MockPlaylistManager)),
		Spotify:     NewSpotifyHandler(new(MockCatalog)),
		Sessions:    sessions,
		Users:       users,
		FrontendURL: "https://app.example",
	})
	return sessions, users, router
}

func TestRouter_Health(t *testing.T) {
	_, _, router := testRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestRouter_ProtectedRoutesRejectAnonymous(t *testing.T) {
	_, _, router := testRouter(t)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/playlists"},
		{http.MethodPost, "/playlists"},
		{http.MethodPost, "/playlists/album"},
		{http.MethodGet, "/playlists/p1"},
		{http.MethodDelete, "/playlists/p1"},
		{http.MethodDelete, "/playlists/p1/a1"},
		{http.MethodGet, "/spotify/new-releases"},
		{http.MethodGet, "/spotify/search/radiohead"},
		{http.MethodGet, "/spotify/artists/a1"},
		{http.MethodGet, "/spotify/artists/a1/albums"},
		{http.MethodGet, "/spotify/artists/a1/related-artists"},
		{http.MethodGet, "/spotify/albums/0"},
		{http.MethodGet, "/spotify/albums/contains/a1"},
		{http.MethodGet, "/spotify/album/a1"},
		{http.MethodDelete, "/spotify/albums/a1"},
		{http.MethodPut, "/spotify/albums/save/a1"},
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
		assert.Contains(t, w.Body.String(), "UNAUTHORIZED", "%s %s", tc.method, tc.path)
	}
}

func TestRouter_AuthRoutesAreOpen(t *testing.T) {
	_, _, router := testRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/auth/session", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	_, _, router := testRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
