package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jonager/albumfied-server/internal/domain"
)

// MockPlaylistRepository mocks repository.PlaylistRepository.
type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) GetByID(ctx context.Context, id string) (*domain.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Playlist, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) PushAlbumFront(ctx context.Context, playlistID, userID string, entry domain.AlbumEntry) error {
	args := m.Called(ctx, playlistID, userID, entry)
	return args.Error(0)
}

func (m *MockPlaylistRepository) PullAlbum(ctx context.Context, playlistID, userID, albumID string) error {
	args := m.Called(ctx, playlistID, userID, albumID)
	return args.Error(0)
}

func (m *MockPlaylistRepository) Delete(ctx context.Context, playlistID, userID string) error {
	args := m.Called(ctx, playlistID, userID)
	return args.Error(0)
}

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Upsert(ctx context.Context, spotifyID, accessToken, refreshToken string) (*domain.User, error) {
	args := m.Called(ctx, spotifyID, accessToken, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
