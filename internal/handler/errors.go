// Package handler implements the HTTP handlers and route assembly.
package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/jonager/albumfied-server/internal/domain"
	"github.com/jonager/albumfied-server/internal/middleware"
	"github.com/jonager/albumfied-server/internal/spotify"
	errs "github.com/jonager/albumfied-server/pkg/errors"
	"github.com/jonager/albumfied-server/pkg/httputil"
)

// handleError maps domain and catalog errors onto the API error taxonomy and
// writes the JSON error envelope.
func handleError(c *gin.Context, err error) {
	var appErr *errs.Error

	switch {
	case errors.Is(err, domain.ErrPlaylistNotFound):
		appErr = errs.ErrPlaylistNotFound
	case errors.Is(err, domain.ErrAlbumNotFound):
		appErr = errs.ErrAlbumNotFound
	case errors.Is(err, domain.ErrUserNotFound):
		appErr = errs.ErrNotFound
	case errors.Is(err, spotify.ErrNotFound):
		appErr = errs.ErrNotFound
	case errors.Is(err, spotify.ErrNoMatches):
		appErr = errs.ErrNoMatches
	case errors.Is(err, spotify.ErrUpstream):
		appErr = errs.ErrUpstream

	case errors.Is(err, domain.ErrPlaylistExists):
		appErr = errs.ErrPlaylistExists
	case errors.Is(err, domain.ErrAlbumExists):
		appErr = errs.ErrAlbumExists

	case errors.Is(err, domain.ErrForbidden):
		appErr = errs.ErrForbidden

	case errors.Is(err, domain.ErrInvalidPlaylistName),
		errors.Is(err, domain.ErrPlaylistNameTooLong),
		errors.Is(err, domain.ErrInvalidPlaylistID),
		errors.Is(err, domain.ErrInvalidAlbum),
		errors.Is(err, domain.ErrInvalidUserID),
		errors.Is(err, domain.ErrInvalidSpotifyID):
		appErr = errs.ErrInvalidInput.WithDetails(err.Error())

	default:
		log.Error().
			Str("request_id", middleware.GetRequestID(c)).
			Err(err).
			Msg("unexpected handler error")
		appErr = errs.ErrInternal
	}

	httputil.ErrorResponse(c, appErr)
}
