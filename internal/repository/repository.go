// Package repository implements MongoDB persistence for users and playlists.
package repository

import (
	"context"

	"github.com/jonager/albumfied-server/internal/domain"
)

// UserRepository persists user records.
type UserRepository interface {
	// Upsert creates the user for spotifyID or replaces its stored
	// credentials, as one atomic operation, and returns the resulting record.
	Upsert(ctx context.Context, spotifyID, accessToken, refreshToken string) (*domain.User, error)
	// GetByID returns the user with the given internal id.
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// PlaylistRepository persists playlists and their embedded album entries.
// Membership mutations are conditional single-document updates so that the
// per-playlist album uniqueness holds under concurrent requests.
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *domain.Playlist) error
	GetByID(ctx context.Context, id string) (*domain.Playlist, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Playlist, error)
	// PushAlbumFront inserts entry at the front of the album sequence,
	// failing with domain.ErrAlbumExists when the album id is present.
	PushAlbumFront(ctx context.Context, playlistID, userID string, entry domain.AlbumEntry) error
	// PullAlbum removes the entry with the given album id, failing with
	// domain.ErrAlbumNotFound when no entry matches.
	PullAlbum(ctx context.Context, playlistID, userID, albumID string) error
	Delete(ctx context.Context, playlistID, userID string) error
}
