package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/jonager/albumfied-server/internal/middleware"
	"github.com/jonager/albumfied-server/internal/spotify"
	errs "github.com/jonager/albumfied-server/pkg/errors"
	"github.com/jonager/albumfied-server/pkg/httputil"
)

// Catalog is the Spotify client surface the proxy handler depends on.
type Catalog interface {
	NewReleases(ctx context.Context, token, country, limit string) (*spotify.Response, error)
	Search(ctx context.Context, token, q, market string) (*spotify.Response, error)
	Artist(ctx context.Context, token, artistID string) (*spotify.Response, error)
	ArtistAlbums(ctx context.Context, token, artistID, market, limit, offset string) (*spotify.Response, error)
	RelatedArtists(ctx context.Context, token, artistID string) (*spotify.Response, error)
	SavedAlbums(ctx context.Context, token, offset, limit, market string) (*spotify.Response, error)
	Album(ctx context.Context, token, albumID, market string) (*spotify.Response, error)
	RemoveSavedAlbums(ctx context.Context, token, ids string) (*spotify.Response, error)
	ContainsSavedAlbums(ctx context.Context, token, ids string) (*spotify.Response, error)
	SaveAlbums(ctx context.Context, token, ids string) (*spotify.Response, error)
}

// SpotifyHandler relays catalog requests to the Spotify API with the
// caller's access token. Upstream status and body pass through verbatim.
type SpotifyHandler struct {
	catalog Catalog
}

// NewSpotifyHandler creates a catalog proxy handler.
func NewSpotifyHandler(catalog Catalog) *SpotifyHandler {
	return &SpotifyHandler{catalog: catalog}
}

func (h *SpotifyHandler) token(c *gin.Context) (string, bool) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		httputil.ErrorResponse(c, errs.ErrUnauthorized)
		return "", false
	}
	return principal.Credentials.AccessToken, true
}

func (h *SpotifyHandler) relay(c *gin.Context, resp *spotify.Response, err error) {
	if err != nil {
		handleError(c, err)
		return
	}
	c.Data(resp.StatusCode, "application/json", resp.Body)
}

// NewReleases proxies GET /browse/new-releases.
// GET /spotify/new-releases
func (h *SpotifyHandler) NewReleases(c *gin.Context) {
	token, ok := h.token(c)
	if !ok {
		return
	}
	resp, err := h.catalog.NewReleases(c.Request.Context(), token, c.Query("country"), c.Query("limit"))
	h.relay(c, resp, err)
}

// Search proxies an album+artist search.
// GET /spotify/search/:q
func (h *SpotifyHandler) Search(c *gin.Context) {
	token, ok := h.token(c)
	if !ok {
		return
	}
	resp, err := h.catalog.Search(c.Request.Context(), token, c.Param("q"), c.Query("market"))
	h.relay(c, resp, err)
}

// Artist proxies an artist profile lookup.
// GET /spotify/artists/:id
func (h *SpotifyHandler) Artist(c *gin.Context) {
	token, ok := h.token(c)
	if !ok {
		return
	}
	resp, err := h.catalog.Artist(c.Request.Context(), token, c.Param("id"))
	h.relay(c, resp, err)
}

// ArtistAlbums proxies an artist's album listing.
// GET /spotify/artists/:id/albums
func (h *SpotifyHandler) ArtistAlbums(c *gin.Context) {
	token, ok := h.token(c)
	if !ok {
		return
	}
	resp, err := h.catalog.ArtistAlbums(c.Request.Context(), token, c.Param("id"),
		c.Query("market"), c.Query("limit"), c.Query("offset"))
	h.relay(c, resp, err)
}

// RelatedArtists proxies the related-artists listing.
// GET /spotify/artists/:id/related-artists
func (h *SpotifyHandler) RelatedArtists(c *gin.Context) {
	token, ok := h.token(c)
	if !ok {
		return
	}
	resp, err := h.catalog.RelatedArtists(c.Request.Context(), token, c.Param("id"))
	h.relay(c, resp, err)
}

// SavedAlbums proxies the caller's saved-album library page.
// GET /spotify/albums/:offset
func (h *SpotifyHandler) SavedAlbums(c *gin.Context) {
	token, ok := h.token(c)
	if !ok {
		return
	}
	resp, err := h.catalog.SavedAlbums(c.Request.Context(), token, c.Param("offset"),
		c.Query("limit"), c.Query("market"))
	h.relay(c, resp, err)
}

// Album proxies a single album lookup.
// GET /spotify/album/:id
func (h *SpotifyHandler) Album(c *gin.Context) {
	token, ok := h.token(c)
	if !ok {
		return
	}
	resp, err := h.catalog.Album(c.Request.Context(), token, c.Param("id"), c.Query("market"))
	h.relay(c, resp, err)
}

// RemoveSavedAlbums proxies removal from the caller's library.
// DELETE /spotify/albums/:id
func (h *SpotifyHandler) RemoveSavedAlbums(c *gin.Context) {
	token, ok := h.token(c)
	if !ok {
		return
	}
	resp, err := h.catalog.RemoveSavedAlbums(c.Request.Context(), token, c.Param("id"))
	h.relay(c, resp, err)
}

// ContainsSavedAlbums proxies the library membership check.
// GET /spotify/albums/contains/:id
func (h *SpotifyHandler) ContainsSavedAlbums(c *gin.Context) {
	token, ok := h.token(c)
	if !ok {
		return
	}
	resp, err := h.catalog.ContainsSavedAlbums(c.Request.Context(), token, c.Param("id"))
	h.relay(c, resp, err)
}

// SaveAlbums proxies saving albums to the caller's library.
// PUT /spotify/albums/save/:id
func (h *SpotifyHandler) SaveAlbums(c *gin.Context) {
	token, ok := h.token(c)
	if !ok {
		return
	}
	resp, err := h.catalog.SaveAlbums(c.Request.Context(), token, c.Param("id"))
	h.relay(c, resp, err)
}
