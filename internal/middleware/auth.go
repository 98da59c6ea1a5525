package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/jonager/albumfied-server/internal/domain"
	"github.com/jonager/albumfied-server/internal/session"
	"github.com/jonager/albumfied-server/pkg/errors"
	"github.com/jonager/albumfied-server/pkg/httputil"
)

const principalKey = "principal"

// SessionResolver resolves a session token to an internal user id.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// UserLoader loads the user record backing a resolved session.
type UserLoader interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// RequireSession is the gate in front of every protected handler. It
// resolves the session cookie (or bearer token) into a Principal and rejects
// the request with a typed 401 otherwise.
func RequireSession(sessions SessionResolver, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			httputil.AbortWithError(c, errors.ErrUnauthorized)
			return
		}

		ctx := c.Request.Context()

		userID, err := sessions.Resolve(ctx, token)
		if err != nil {
			httputil.AbortWithError(c, errors.ErrUnauthorized)
			return
		}

		user, err := users.GetByID(ctx, userID)
		if err != nil {
			// A session pointing at a missing user is treated the same as no
			// session at all.
			log.Warn().
				Str("request_id", GetRequestID(c)).
				Str("user_id", userID).
				Msg("session resolved but user lookup failed")
			httputil.AbortWithError(c, errors.ErrUnauthorized)
			return
		}

		SetPrincipal(c, domain.PrincipalFromUser(user))
		c.Next()
	}
}

// sessionToken extracts the session token from the cookie, falling back to
// the Authorization header for non-browser clients.
func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(session.CookieName); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// SetPrincipal attaches a resolved principal to the request context.
func SetPrincipal(c *gin.Context, principal *domain.Principal) {
	c.Set(principalKey, principal)
	c.Set("user_id", principal.UserID)
}

// GetPrincipal returns the principal resolved by RequireSession.
func GetPrincipal(c *gin.Context) (*domain.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*domain.Principal)
	return principal, ok
}
