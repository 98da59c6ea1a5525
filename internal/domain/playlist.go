package domain

import "time"

// AlbumEntry is one catalog album inside a playlist. Entries only exist
// embedded in their playlist's album sequence; AlbumID is the sole
// de-duplication key within that sequence.
type AlbumEntry struct {
	AlbumID     string    `bson:"album_id" json:"albumId"`
	AlbumImgURI string    `bson:"album_img_uri" json:"albumImgURI"`
	AlbumName   string    `bson:"album_name" json:"albumName"`
	ArtistID    string    `bson:"artist_id" json:"artistId"`
	ArtistName  string    `bson:"artist_name" json:"artistName"`
	AddedAt     time.Time `bson:"added_at" json:"addedAt"`
}

// Validate verifies the entry carries the fields required for display.
func (e *AlbumEntry) Validate() error {
	if e.AlbumID == "" || e.AlbumName == "" || e.ArtistID == "" || e.ArtistName == "" {
		return ErrInvalidAlbum
	}
	return nil
}

// Playlist is a user-owned, ordered sequence of album entries. Albums are
// kept most-recently-added first. The owner never changes after creation.
type Playlist struct {
	ID        string       `bson:"_id" json:"id"`
	UserID    string       `bson:"user_id" json:"userId"`
	Name      string       `bson:"name" json:"name"`
	Albums    []AlbumEntry `bson:"albums" json:"albums"`
	CreatedAt time.Time    `bson:"created_at" json:"createdAt"`
}

// IsOwnedBy reports whether the playlist belongs to the given user.
func (p *Playlist) IsOwnedBy(userID string) bool {
	return p.UserID == userID
}

// HasAlbum reports whether an entry with the given album id exists.
func (p *Playlist) HasAlbum(albumID string) bool {
	for i := range p.Albums {
		if p.Albums[i].AlbumID == albumID {
			return true
		}
	}
	return false
}

// ValidatePlaylistName verifies a playlist display name.
func ValidatePlaylistName(name string) error {
	if name == "" {
		return ErrInvalidPlaylistName
	}
	if len(name) > 100 {
		return ErrPlaylistNameTooLong
	}
	return nil
}
