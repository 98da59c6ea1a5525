package domain

import "errors"

var (
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrInvalidSpotifyID = errors.New("invalid spotify id")
	ErrUserNotFound     = errors.New("user not found")

	ErrInvalidPlaylistID   = errors.New("invalid playlist id")
	ErrInvalidPlaylistName = errors.New("invalid playlist name")
	ErrPlaylistNameTooLong = errors.New("playlist name too long")
	ErrPlaylistNotFound    = errors.New("playlist not found")
	ErrPlaylistExists      = errors.New("playlist name already taken")

	ErrInvalidAlbum  = errors.New("invalid album")
	ErrAlbumExists   = errors.New("album already in playlist")
	ErrAlbumNotFound = errors.New("album not in playlist")

	ErrForbidden = errors.New("forbidden")
)
