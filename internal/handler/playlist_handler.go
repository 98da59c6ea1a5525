package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/jonager/albumfied-server/internal/domain"
	"github.com/jonager/albumfied-server/internal/middleware"
	errs "github.com/jonager/albumfied-server/pkg/errors"
	"github.com/jonager/albumfied-server/pkg/httputil"
)

// PlaylistManager is the playlist service surface the handler depends on.
type PlaylistManager interface {
	List(ctx context.Context, ownerID string) ([]*domain.Playlist, error)
	Get(ctx context.Context, playlistID, ownerID string) (*domain.Playlist, error)
	Create(ctx context.Context, ownerID, name string) (*domain.Playlist, error)
	AddAlbum(ctx context.Context, playlistID, ownerID string, entry domain.AlbumEntry) (*domain.Playlist, error)
	RemoveAlbum(ctx context.Context, playlistID, ownerID, albumID string) (*domain.Playlist, error)
	Delete(ctx context.Context, playlistID, ownerID string) error
}

// PlaylistHandler serves the /playlists routes.
type PlaylistHandler struct {
	service PlaylistManager
}

// NewPlaylistHandler creates a playlist handler.
func NewPlaylistHandler(service PlaylistManager) *PlaylistHandler {
	return &PlaylistHandler{service: service}
}

// List returns the caller's playlists.
// GET /playlists
func (h *PlaylistHandler) List(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httputil.ErrorResponse(c, errs.ErrUnauthorized)
		return
	}

	playlists, err := h.service.List(c.Request.Context(), principal.UserID)
	if err != nil {
		handleError(c, err)
		return
	}
	if playlists == nil {
		playlists = []*domain.Playlist{}
	}

	httputil.SuccessResponse(c, playlists)
}

// Get returns one playlist owned by the caller.
// GET /playlists/:id
func (h *PlaylistHandler) Get(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httputil.ErrorResponse(c, errs.ErrUnauthorized)
		return
	}

	playlist, err := h.service.Get(c.Request.Context(), c.Param("id"), principal.UserID)
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.SuccessResponse(c, playlist)
}

// Create creates an empty playlist.
// POST /playlists {"name": "..."}
func (h *PlaylistHandler) Create(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httputil.ErrorResponse(c, errs.ErrUnauthorized)
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ErrorResponse(c, errs.ErrInvalidInput.WithDetails(err.Error()))
		return
	}

	playlist, err := h.service.Create(c.Request.Context(), principal.UserID, req.Name)
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.SuccessResponse(c, playlist)
}

// addAlbumRequest mirrors the frontend payload for adding an album.
type addAlbumRequest struct {
	PlaylistID string `json:"playlistId" binding:"required"`
	AlbumToAdd struct {
		AlbumSpotifyID string `json:"albumSpotifyId" binding:"required"`
		AlbumImgURI    string `json:"albumImgURI"`
		AlbumName      string `json:"albumName" binding:"required"`
		ArtistID       string `json:"artistId" binding:"required"`
		ArtistName     string `json:"artistName" binding:"required"`
	} `json:"albumToAdd" binding:"required"`
}

// AddAlbum inserts an album at the front of a playlist.
// POST /playlists/album
func (h *PlaylistHandler) AddAlbum(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httputil.ErrorResponse(c, errs.ErrUnauthorized)
		return
	}

	var req addAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ErrorResponse(c, errs.ErrInvalidInput.WithDetails(err.Error()))
		return
	}

	entry := domain.AlbumEntry{
		AlbumID:     req.AlbumToAdd.AlbumSpotifyID,
		AlbumImgURI: req.AlbumToAdd.AlbumImgURI,
		AlbumName:   req.AlbumToAdd.AlbumName,
		ArtistID:    req.AlbumToAdd.ArtistID,
		ArtistName:  req.AlbumToAdd.ArtistName,
	}

	playlist, err := h.service.AddAlbum(c.Request.Context(), req.PlaylistID, principal.UserID, entry)
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.SuccessResponse(c, playlist)
}

// RemoveAlbum removes one album from a playlist.
// DELETE /playlists/:id/:albumId
func (h *PlaylistHandler) RemoveAlbum(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httputil.ErrorResponse(c, errs.ErrUnauthorized)
		return
	}

	playlist, err := h.service.RemoveAlbum(c.Request.Context(), c.Param("id"), principal.UserID, c.Param("albumId"))
	if err != nil {
		handleError(c, err)
		return
	}

	httputil.SuccessResponse(c, playlist)
}

// Delete removes an entire playlist.
// DELETE /playlists/:id
func (h *PlaylistHandler) Delete(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httputil.ErrorResponse(c, errs.ErrUnauthorized)
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.Param("id"), principal.UserID); err != nil {
		handleError(c, err)
		return
	}

	httputil.SuccessResponse(c, nil)
}
