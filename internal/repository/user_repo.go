package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jonager/albumfied-server/internal/domain"
)

type userRepository struct {
	col *mongo.Collection
}

// NewUserRepository creates a MongoDB-backed user repository.
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{col: db.Collection(usersCollection)}
}

// Upsert replaces the stored credentials for spotifyID, creating the record
// on first login. A single upsert against the unique spotify_id index keeps
// concurrent logins for the same account from creating duplicates.
func (r *userRepository) Upsert(ctx context.Context, spotifyID, accessToken, refreshToken string) (*domain.User, error) {
	user, err := r.upsertOnce(ctx, spotifyID, accessToken, refreshToken)
	if mongo.IsDuplicateKeyError(err) {
		// Two concurrent first logins can both take the insert branch; the
		// loser hits the unique index and succeeds as an update on retry.
		return r.upsertOnce(ctx, spotifyID, accessToken, refreshToken)
	}
	return user, err
}

func (r *userRepository) upsertOnce(ctx context.Context, spotifyID, accessToken, refreshToken string) (*domain.User, error) {
	filter := bson.M{"spotify_id": spotifyID}
	update := bson.M{
		"$set": bson.M{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
		"$setOnInsert": bson.M{
			"_id":        uuid.New().String(),
			"spotify_id": spotifyID,
			"created_at": time.Now().UTC(),
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var user domain.User
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user with the given internal id.
func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
