package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/jonager/albumfied-server/internal/domain"
	"github.com/jonager/albumfied-server/internal/repository"
)

// UserService maps Spotify accounts to internal user records.
type UserService struct {
	users repository.UserRepository
}

// NewUserService creates a user service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// UpsertFromProvider stores the credentials obtained from a successful
// authentication, creating the user record on first login. The whole
// operation is one atomic upsert, so concurrent logins for the same account
// cannot create duplicates or leave a half-written record.
func (s *UserService) UpsertFromProvider(ctx context.Context, spotifyID, accessToken, refreshToken string) (*domain.User, error) {
	if spotifyID == "" {
		return nil, domain.ErrInvalidSpotifyID
	}

	user, err := s.users.Upsert(ctx, spotifyID, accessToken, refreshToken)
	if err != nil {
		// Token values never reach the log.
		log.Ctx(ctx).Error().Err(err).Str("spotify_id", spotifyID).Msg("user upsert failed")
		return nil, err
	}
	return user, nil
}

// GetByID returns the user with the given internal id.
func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, domain.ErrInvalidUserID
	}
	return s.users.GetByID(ctx, id)
}
