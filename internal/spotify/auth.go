// Package spotify talks to the Spotify accounts service and Web API on
// behalf of the authenticated user.
package spotify

import (
	"context"

	"golang.org/x/oauth2"
	spotifyoauth "golang.org/x/oauth2/spotify"
)

// Scopes requested during login. Library scopes cover the saved-albums
// endpoints; the rest match what the web player frontend needs.
var Scopes = []string{
	"user-library-read",
	"user-library-modify",
	"user-read-email",
	"user-read-private",
	"user-read-currently-playing",
	"streaming",
}

// Authenticator drives the OAuth authorization-code flow with Spotify.
type Authenticator struct {
	config *oauth2.Config
}

// NewAuthenticator creates an authenticator for the given OAuth application.
func NewAuthenticator(clientID, clientSecret, redirectURL string) *Authenticator {
	return &Authenticator{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       Scopes,
			Endpoint:     spotifyoauth.Endpoint,
		},
	}
}

// AuthCodeURL returns the Spotify consent page URL for the given state.
// show_dialog forces the account chooser even for already-approved users.
func (a *Authenticator) AuthCodeURL(state string) string {
	return a.config.AuthCodeURL(state, oauth2.SetAuthURLParam("show_dialog", "true"))
}

// Exchange trades the authorization code for access and refresh tokens.
func (a *Authenticator) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return a.config.Exchange(ctx, code)
}
