package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"

	"github.com/jonager/albumfied-server/internal/domain"
	"github.com/jonager/albumfied-server/internal/middleware"
	"github.com/jonager/albumfied-server/internal/spotify"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withPrincipal injects a resolved principal the way RequireSession would.
func withPrincipal(p *domain.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetPrincipal(c, p)
		c.Next()
	}
}

func testPrincipal() *domain.Principal {
	return &domain.Principal{
		UserID:    "user-1",
		SpotifyID: "spotify-1",
		Credentials: domain.Credentials{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
		},
	}
}

// MockPlaylistManager mocks PlaylistManager.
type MockPlaylistManager struct {
	mock.Mock
}

func (m *MockPlaylistManager) List(ctx context.Context, ownerID string) ([]*domain.Playlist, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistManager) Get(ctx context.Context, playlistID, ownerID string) (*domain.Playlist, error) {
	args := m.Called(ctx, playlistID, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistManager) Create(ctx context.Context, ownerID, name string) (*domain.Playlist, error) {
	args := m.Called(ctx, ownerID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistManager) AddAlbum(ctx context.Context, playlistID, ownerID string, entry domain.AlbumEntry) (*domain.Playlist, error) {
	args := m.Called(ctx, playlistID, ownerID, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistManager) RemoveAlbum(ctx context.Context, playlistID, ownerID, albumID string) (*domain.Playlist, error) {
	args := m.Called(ctx, playlistID, ownerID, albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistManager) Delete(ctx context.Context, playlistID, ownerID string) error {
	args := m.Called(ctx, playlistID, ownerID)
	return args.Error(0)
}

// MockCatalog mocks Catalog.
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) relayed(args mock.Arguments) (*spotify.Response, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*spotify.Response), args.Error(1)
}

func (m *MockCatalog) NewReleases(ctx context.Context, token, country, limit string) (*spotify.Response, error) {
	return m.relayed(m.Called(ctx, token, country, limit))
}

func (m *MockCatalog) Search(ctx context.Context, token, q, market string) (*spotify.Response, error) {
	return m.relayed(m.Called(ctx, token, q, market))
}

func (m *MockCatalog) Artist(ctx context.Context, token, artistID string) (*spotify.Response, error) {
	return m.relayed(m.Called(ctx, token, artistID))
}

func (m *MockCatalog) ArtistAlbums(ctx context.Context, token, artistID, market, limit, offset string) (*spotify.Response, error) {
	return m.relayed(m.Called(ctx, token, artistID, market, limit, offset))
}

func (m *MockCatalog) RelatedArtists(ctx context.Context, token, artistID string) (*spotify.Response, error) {
	return m.relayed(m.Called(ctx, token, artistID))
}

func (m *MockCatalog) SavedAlbums(ctx context.Context, token, offset, limit, market string) (*spotify.Response, error) {
	return m.relayed(m.Called(ctx, token, offset, limit, market))
}

func (m *MockCatalog) Album(ctx context.Context, token, albumID, market string) (*spotify.Response, error) {
	return m.relayed(m.Called(ctx, token, albumID, market))
}

func (m *MockCatalog) RemoveSavedAlbums(ctx context.Context, token, ids string) (*spotify.Response, error) {
	return m.relayed(m.Called(ctx, token, ids))
}

func (m *MockCatalog) ContainsSavedAlbums(ctx context.Context, token, ids string) (*spotify.Response, error) {
	return m.relayed(m.Called(ctx, token, ids))
}

func (m *MockCatalog) SaveAlbums(ctx context.Context, token, ids string) (*spotify.Response, error) {
	return m.relayed(m.Called(ctx, token, ids))
}

// MockAuthenticator mocks Authenticator.
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) AuthCodeURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *MockAuthenticator) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

// MockProfileFetcher mocks ProfileFetcher.
type MockProfileFetcher struct {
	mock.Mock
}

func (m *MockProfileFetcher) CurrentUserID(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

// MockUserDirectory mocks UserDirectory.
type MockUserDirectory struct {
	mock.Mock
}

func (m *MockUserDirectory) UpsertFromProvider(ctx context.Context, spotifyID, accessToken, refreshToken string) (*domain.User, error) {
	args := m.Called(ctx, spotifyID, accessToken, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockSessionManager mocks SessionManager.
type MockSessionManager struct {
	mock.Mock
}

func (m *MockSessionManager) Create(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionManager) Destroy(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
