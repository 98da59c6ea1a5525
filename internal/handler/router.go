package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jonager/albumfied-server/internal/middleware"
	errs "github.com/jonager/albumfied-server/pkg/errors"
	"github.com/jonager/albumfied-server/pkg/httputil"
)

// RouterConfig carries everything the router needs to assemble the API.
type RouterConfig struct {
	Auth     *AuthHandler
	Playlist *PlaylistHandler
	Spotify  *SpotifyHandler

	Sessions    middleware.SessionResolver
	Users       middleware.UserLoader
	FrontendURL string
}

// NewRouter assembles the gin engine with the full route table.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logging())
	router.Use(middleware.CORS(cfg.FrontendURL))

	router.GET("/health", func(c *gin.Context) {
		httputil.SuccessResponse(c, gin.H{"status": "healthy"})
	})

	auth := router.Group("/auth")
	{
		auth.GET("/spotify", cfg.Auth.Login)
		auth.GET("/callback", cfg.Auth.Callback)
		auth.DELETE("/session", cfg.Auth.Logout)
	}

	gate := middleware.RequireSession(cfg.Sessions, cfg.Users)

	playlists := router.Group("/playlists", gate)
	{
		playlists.GET("", cfg.Playlist.List)
		playlists.POST("", cfg.Playlist.Create)
		playlists.POST("/album", cfg.Playlist.AddAlbum)
		playlists.GET("/:id", cfg.Playlist.Get)
		playlists.DELETE("/:id", cfg.Playlist.Delete)
		playlists.DELETE("/:id/:albumId", cfg.Playlist.RemoveAlbum)
	}

	spotify := router.Group("/spotify", gate)
	{
		spotify.GET("/new-releases", cfg.Spotify.NewReleases)
		spotify.GET("/search/:q", cfg.Spotify.Search)
		spotify.GET("/artists/:id", cfg.Spotify.Artist)
		spotify.GET("/artists/:id/albums", cfg.Spotify.ArtistAlbums)
		spotify.GET("/artists/:id/related-artists", cfg.Spotify.RelatedArtists)
		spotify.GET("/albums/:offset", cfg.Spotify.SavedAlbums)
		spotify.GET("/albums/contains/:id", cfg.Spotify.ContainsSavedAlbums)
		spotify.GET("/album/:id", cfg.Spotify.Album)
		spotify.DELETE("/albums/:id", cfg.Spotify.RemoveSavedAlbums)
		spotify.PUT("/albums/save/:id", cfg.Spotify.SaveAlbums)
	}

	router.NoRoute(func(c *gin.Context) {
		httputil.ErrorResponse(c, errs.ErrNotFound)
	})

	return router
}
