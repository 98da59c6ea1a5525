package domain

import "time"

// User maps a Spotify account to an internal record holding the account's
// current OAuth credentials. Created on first login, credentials replaced on
// every subsequent login.
type User struct {
	ID           string    `bson:"_id" json:"id"`
	SpotifyID    string    `bson:"spotify_id" json:"spotifyId"`
	AccessToken  string    `bson:"access_token" json:"-"`
	RefreshToken string    `bson:"refresh_token" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
}

// Credentials holds a user's provider tokens. Kept as its own type so it is
// never serialized into API responses or log fields.
type Credentials struct {
	AccessToken  string `json:"-"`
	RefreshToken string `json:"-"`
}

// Principal is the authenticated caller resolved by the session gate.
type Principal struct {
	UserID      string
	SpotifyID   string
	Credentials Credentials
}

// PrincipalFromUser builds a Principal from a stored user record.
func PrincipalFromUser(u *User) *Principal {
	return &Principal{
		UserID:    u.ID,
		SpotifyID: u.SpotifyID,
		Credentials: Credentials{
			AccessToken:  u.AccessToken,
			RefreshToken: u.RefreshToken,
		},
	}
}
