// Package service implements the application logic between handlers and
// repositories.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jonager/albumfied-server/internal/domain"
	"github.com/jonager/albumfied-server/internal/repository"
)

// PlaylistService owns playlist entities and the album-membership operations
// inside them. Every single-playlist operation enforces ownership before
// touching the record; membership mutations ride on the repository's atomic
// conditional updates.
type PlaylistService struct {
	playlists repository.PlaylistRepository
}

// NewPlaylistService creates a playlist service.
func NewPlaylistService(playlists repository.PlaylistRepository) *PlaylistService {
	return &PlaylistService{playlists: playlists}
}

// List returns all playlists owned by ownerID, most recently created first.
func (s *PlaylistService) List(ctx context.Context, ownerID string) ([]*domain.Playlist, error) {
	return s.playlists.ListByUser(ctx, ownerID)
}

// Get returns the playlist when it exists and is owned by ownerID.
func (s *PlaylistService) Get(ctx context.Context, playlistID, ownerID string) (*domain.Playlist, error) {
	playlist, err := s.playlists.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if !playlist.IsOwnedBy(ownerID) {
		return nil, domain.ErrForbidden
	}
	return playlist, nil
}

// Create creates an empty playlist for ownerID. Name uniqueness per owner is
// enforced by the store's unique index, not a lookup.
func (s *PlaylistService) Create(ctx context.Context, ownerID, name string) (*domain.Playlist, error) {
	if err := domain.ValidatePlaylistName(name); err != nil {
		return nil, err
	}

	playlist := &domain.Playlist{
		ID:        uuid.New().String(),
		UserID:    ownerID,
		Name:      name,
		Albums:    []domain.AlbumEntry{},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.playlists.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// AddAlbum inserts the entry at the front of the playlist's album sequence.
// Duplicate album ids fail with domain.ErrAlbumExists and leave the playlist
// unchanged.
func (s *PlaylistService) AddAlbum(ctx context.Context, playlistID, ownerID string, entry domain.AlbumEntry) (*domain.Playlist, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.Get(ctx, playlistID, ownerID); err != nil {
		return nil, err
	}

	entry.AddedAt = time.Now().UTC()
	if err := s.playlists.PushAlbumFront(ctx, playlistID, ownerID, entry); err != nil {
		return nil, err
	}

	return s.playlists.GetByID(ctx, playlistID)
}

// RemoveAlbum removes the entry with the given album id from the playlist.
func (s *PlaylistService) RemoveAlbum(ctx context.Context, playlistID, ownerID, albumID string) (*domain.Playlist, error) {
	if _, err := s.Get(ctx, playlistID, ownerID); err != nil {
		return nil, err
	}

	if err := s.playlists.PullAlbum(ctx, playlistID, ownerID, albumID); err != nil {
		return nil, err
	}

	return s.playlists.GetByID(ctx, playlistID)
}

// Delete removes the playlist entirely.
func (s *PlaylistService) Delete(ctx context.Context, playlistID, ownerID string) error {
	if _, err := s.Get(ctx, playlistID, ownerID); err != nil {
		return err
	}
	return s.playlists.Delete(ctx, playlistID, ownerID)
}
