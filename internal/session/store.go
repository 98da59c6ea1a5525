// Package session implements the server-side session store. A session id
// lives in Redis pointing at the internal user id; the id travels to the
// browser inside a signed JWT cookie.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CookieName is the session cookie set after a successful login.
const CookieName = "albumfied_session"

var (
	// ErrInvalidToken is returned for tokens that fail signature or claim checks.
	ErrInvalidToken = errors.New("invalid session token")
	// ErrSessionNotFound is returned when the session id is unknown or expired.
	ErrSessionNotFound = errors.New("session not found")
)

// Claims are the JWT claims carried by the session cookie.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Store issues and resolves sessions.
type Store struct {
	rdb    *redis.Client
	secret []byte
	ttl    time.Duration
}

// NewStore creates a session store. ttl bounds both the Redis entry and the
// token expiry.
func NewStore(rdb *redis.Client, secret string, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Store{
		rdb:    rdb,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func sessionKey(id string) string {
	return "session:" + id
}

// Create opens a session for userID and returns the signed token for the
// cookie.
func (s *Store) Create(ctx context.Context, userID string) (string, error) {
	sessionID := uuid.New().String()

	if err := s.rdb.Set(ctx, sessionKey(sessionID), userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	now := time.Now()
	claims := &Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}

// Resolve validates the token and returns the user id its session points at.
func (s *Store) Resolve(ctx context.Context, token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}

	userID, err := s.rdb.Get(ctx, sessionKey(claims.SessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to load session: %w", err)
	}
	return userID, nil
}

// Destroy removes the session referenced by the token. Destroying an already
// absent session is not an error.
func (s *Store) Destroy(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return err
	}
	return s.rdb.Del(ctx, sessionKey(claims.SessionID)).Err()
}

func (s *Store) parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid || claims.SessionID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
