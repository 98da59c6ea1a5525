package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jonager/albumfied-server/internal/domain"
)

type playlistRepository struct {
	col *mongo.Collection
}

// NewPlaylistRepository creates a MongoDB-backed playlist repository.
func NewPlaylistRepository(db *mongo.Database) PlaylistRepository {
	return &playlistRepository{col: db.Collection(playlistsCollection)}
}

// Create inserts the playlist. The unique (user_id, name) index turns a
// concurrent create with the same name into a duplicate-key error, so there
// is no find-then-insert window.
func (r *playlistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	_, err := r.col.InsertOne(ctx, playlist)
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrPlaylistExists
	}
	return err
}

// GetByID loads a playlist by id regardless of owner. Ownership is the
// service layer's decision; loading by id alone lets it distinguish
// not-found from forbidden.
func (r *playlistRepository) GetByID(ctx context.Context, id string) (*domain.Playlist, error) {
	var playlist domain.Playlist
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&playlist)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrPlaylistNotFound
	}
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

// ListByUser returns the user's playlists, most recently created first.
func (r *playlistRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Playlist, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var playlists []*domain.Playlist
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}

// PushAlbumFront inserts entry at position 0 of the album sequence. The
// filter only matches when no existing entry carries the same album id, so
// the membership check and the insert are one atomic document update.
func (r *playlistRepository) PushAlbumFront(ctx context.Context, playlistID, userID string, entry domain.AlbumEntry) error {
	filter := bson.M{
		"_id":             playlistID,
		"user_id":         userID,
		"albums.album_id": bson.M{"$ne": entry.AlbumID},
	}
	update := bson.M{
		"$push": bson.M{
			"albums": bson.M{
				"$each":     bson.A{entry},
				"$position": 0,
			},
		},
	}

	result, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		// Either the album id is already present or the playlist vanished
		// after the caller's ownership load. Only an existing playlist
		// turns the non-match into a duplicate.
		count, err := r.col.CountDocuments(ctx, bson.M{"_id": playlistID, "user_id": userID})
		if err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrPlaylistNotFound
		}
		return domain.ErrAlbumExists
	}
	return nil
}

// PullAlbum removes the entry with the given album id. The insert path keeps
// album ids unique per playlist, so the pull removes at most one entry.
func (r *playlistRepository) PullAlbum(ctx context.Context, playlistID, userID, albumID string) error {
	filter := bson.M{"_id": playlistID, "user_id": userID}
	update := bson.M{
		"$pull": bson.M{
			"albums": bson.M{"album_id": albumID},
		},
	}

	result, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrPlaylistNotFound
	}
	if result.ModifiedCount == 0 {
		return domain.ErrAlbumNotFound
	}
	return nil
}

// Delete removes the playlist owned by userID.
func (r *playlistRepository) Delete(ctx context.Context, playlistID, userID string) error {
	result, err := r.col.DeleteOne(ctx, bson.M{"_id": playlistID, "user_id": userID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrPlaylistNotFound
	}
	return nil
}
