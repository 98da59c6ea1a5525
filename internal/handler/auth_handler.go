package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/jonager/albumfied-server/internal/domain"
	"github.com/jonager/albumfied-server/internal/middleware"
	"github.com/jonager/albumfied-server/internal/session"
	"github.com/jonager/albumfied-server/pkg/httputil"
)

// stateCookieName holds the oauth state nonce between redirect and callback.
const stateCookieName = "albumfied_oauth_state"

// stateCookieMaxAge bounds how long a login attempt may stay in flight.
const stateCookieMaxAge = 10 * 60

// Authenticator runs the oauth2 authorization-code flow.
type Authenticator interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
}

// ProfileFetcher resolves the provider account id an access token belongs to.
type ProfileFetcher interface {
	CurrentUserID(ctx context.Context, token string) (string, error)
}

// UserDirectory records provider accounts and their current credentials.
type UserDirectory interface {
	UpsertFromProvider(ctx context.Context, spotifyID, accessToken, refreshToken string) (*domain.User, error)
}

// SessionManager issues and revokes session tokens.
type SessionManager interface {
	Create(ctx context.Context, userID string) (string, error)
	Destroy(ctx context.Context, token string) error
}

// AuthHandler serves the login, callback and logout routes.
type AuthHandler struct {
	auth        Authenticator
	profiles    ProfileFetcher
	users       UserDirectory
	sessions    SessionManager
	frontendURL string
	sessionTTL  int
	secure      bool
}

// AuthHandlerConfig wires the auth handler's collaborators.
type AuthHandlerConfig struct {
	Auth        Authenticator
	Profiles    ProfileFetcher
	Users       UserDirectory
	Sessions    SessionManager
	FrontendURL string
	// SessionTTLSeconds is the session cookie lifetime.
	SessionTTLSeconds int
	SecureCookies     bool
}

// NewAuthHandler creates an auth handler.
func NewAuthHandler(cfg AuthHandlerConfig) *AuthHandler {
	return &AuthHandler{
		auth:        cfg.Auth,
		profiles:    cfg.Profiles,
		users:       cfg.Users,
		sessions:    cfg.Sessions,
		frontendURL: cfg.FrontendURL,
		sessionTTL:  cfg.SessionTTLSeconds,
		secure:      cfg.SecureCookies,
	}
}

// Login starts the authorization-code flow.
// GET /auth/spotify
func (h *AuthHandler) Login(c *gin.Context) {
	state := uuid.New().String()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, state, stateCookieMaxAge, "/", "", h.secure, true)
	c.Redirect(http.StatusTemporaryRedirect, h.auth.AuthCodeURL(state))
}

// Callback completes the authorization-code flow, records the account and
// opens a session. Browser flow, so failures redirect instead of returning
// the JSON envelope.
// GET /auth/callback
func (h *AuthHandler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	state, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || c.Query("state") != state {
		h.failLogin(c, "oauth state mismatch", err)
		return
	}
	c.SetCookie(stateCookieName, "", -1, "/", "", h.secure, true)

	code := c.Query("code")
	if code == "" {
		h.failLogin(c, "oauth callback without code", nil)
		return
	}

	tok, err := h.auth.Exchange(ctx, code)
	if err != nil {
		h.failLogin(c, "oauth code exchange failed", err)
		return
	}

	spotifyID, err := h.profiles.CurrentUserID(ctx, tok.AccessToken)
	if err != nil {
		h.failLogin(c, "profile lookup failed", err)
		return
	}

	user, err := h.users.UpsertFromProvider(ctx, spotifyID, tok.AccessToken, tok.RefreshToken)
	if err != nil {
		h.failLogin(c, "account upsert failed", err)
		return
	}

	sessionToken, err := h.sessions.Create(ctx, user.ID)
	if err != nil {
		h.failLogin(c, "session create failed", err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, sessionToken, h.sessionTTL, "/", "", h.secure, true)

	q := url.Values{}
	q.Set("spotifyId", user.SpotifyID)
	q.Set("spotifyToken", tok.AccessToken)
	c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"/callback?"+q.Encode())
}

// Logout revokes the caller's session and clears the cookie. Idempotent.
// DELETE /auth/session
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(session.CookieName)
	if err == nil && token != "" {
		err := h.sessions.Destroy(c.Request.Context(), token)
		switch {
		case err == nil:
		case errors.Is(err, session.ErrInvalidToken), errors.Is(err, session.ErrSessionNotFound):
			// A cookie we cannot resolve has nothing left to revoke.
		default:
			handleError(c, err)
			return
		}
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", h.secure, true)
	httputil.SuccessResponse(c, nil)
}

func (h *AuthHandler) failLogin(c *gin.Context, msg string, err error) {
	log.Warn().
		Str("request_id", middleware.GetRequestID(c)).
		Err(err).
		Msg(msg)
	c.Redirect(http.StatusTemporaryRedirect, "/")
}
