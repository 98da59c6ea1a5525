package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the Spotify Web API base.
const DefaultBaseURL = "https://api.spotify.com/v1"

var (
	// ErrNoMatches is returned when a search finds neither albums nor artists.
	ErrNoMatches = errors.New("no matching albums or artists")
	// ErrNotFound is returned when the catalog has no such entity.
	ErrNotFound = errors.New("not found in catalog")
	// ErrUpstream is returned when the catalog cannot be reached at all.
	ErrUpstream = errors.New("catalog unavailable")
)

// Response carries an upstream status and raw body so handlers can relay the
// provider payload verbatim.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the upstream answered with a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Config represents catalog client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client is a stateless per-request translator to the Spotify Web API. The
// caller's access token is passed per call and never stored.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a catalog client.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// do performs one authenticated request and returns the upstream response
// as-is. Only transport-level failures produce an error.
func (c *Client) do(ctx context.Context, method, path, token string, query url.Values) (*Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog response: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}

// CurrentUserID fetches the id of the account the token belongs to.
func (c *Client) CurrentUserID(ctx context.Context, token string) (string, error) {
	resp, err := c.do(ctx, http.MethodGet, "/me", token, nil)
	if err != nil {
		return "", err
	}
	if !resp.OK() {
		return "", fmt.Errorf("profile request returned status %d", resp.StatusCode)
	}

	var profile struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(resp.Body, &profile); err != nil {
		return "", fmt.Errorf("failed to decode profile: %w", err)
	}
	if profile.ID == "" {
		return "", fmt.Errorf("profile response missing id")
	}
	return profile.ID, nil
}

// NewReleases fetches featured new releases.
func (c *Client) NewReleases(ctx context.Context, token, country, limit string) (*Response, error) {
	query := url.Values{}
	query.Set("country", defaultString(country, "US"))
	query.Set("limit", defaultString(limit, "50"))
	return c.do(ctx, http.MethodGet, "/browse/new-releases", token, query)
}

// Search runs a free-text search across albums and artists. A successful
// search with zero album items and zero artist items fails with ErrNoMatches.
func (c *Client) Search(ctx context.Context, token, q, market string) (*Response, error) {
	query := url.Values{}
	query.Set("q", q)
	query.Set("type", "album,artist")
	query.Set("market", defaultString(market, "US"))

	resp, err := c.do(ctx, http.MethodGet, "/search", token, query)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return resp, nil
	}

	var result struct {
		Albums struct {
			Items []json.RawMessage `json:"items"`
		} `json:"albums"`
		Artists struct {
			Items []json.RawMessage `json:"items"`
		} `json:"artists"`
	}
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	if len(result.Albums.Items) == 0 && len(result.Artists.Items) == 0 {
		return nil, ErrNoMatches
	}
	return resp, nil
}

// Artist fetches catalog information for one artist.
func (c *Client) Artist(ctx context.Context, token, artistID string) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/artists/"+url.PathEscape(artistID), token, nil)
}

// ArtistAlbums lists an artist's albums.
func (c *Client) ArtistAlbums(ctx context.Context, token, artistID, market, limit, offset string) (*Response, error) {
	query := url.Values{}
	query.Set("include_groups", "album")
	query.Set("market", defaultString(market, "US"))
	query.Set("limit", defaultString(limit, "50"))
	query.Set("offset", defaultString(offset, "0"))
	return c.do(ctx, http.MethodGet, "/artists/"+url.PathEscape(artistID)+"/albums", token, query)
}

// RelatedArtists lists artists similar to the given artist.
func (c *Client) RelatedArtists(ctx context.Context, token, artistID string) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/artists/"+url.PathEscape(artistID)+"/related-artists", token, nil)
}

// SavedAlbums lists the caller's library albums.
func (c *Client) SavedAlbums(ctx context.Context, token, offset, limit, market string) (*Response, error) {
	query := url.Values{}
	query.Set("market", defaultString(market, "US"))
	query.Set("limit", defaultString(limit, "50"))
	query.Set("offset", defaultString(offset, "0"))
	return c.do(ctx, http.MethodGet, "/me/albums", token, query)
}

// Album fetches catalog information for a single album. A non-2xx upstream
// answer fails with ErrNotFound, matching the frontend's expectations.
func (c *Client) Album(ctx context.Context, token, albumID, market string) (*Response, error) {
	query := url.Values{}
	query.Set("market", defaultString(market, "US"))

	resp, err := c.do(ctx, http.MethodGet, "/albums/"+url.PathEscape(albumID), token, query)
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, ErrNotFound
	}
	return resp, nil
}

// RemoveSavedAlbums removes albums from the caller's library.
func (c *Client) RemoveSavedAlbums(ctx context.Context, token, ids string) (*Response, error) {
	query := url.Values{}
	query.Set("ids", ids)
	return c.do(ctx, http.MethodDelete, "/me/albums", token, query)
}

// ContainsSavedAlbums checks which album ids are in the caller's library.
func (c *Client) ContainsSavedAlbums(ctx context.Context, token, ids string) (*Response, error) {
	query := url.Values{}
	query.Set("ids", ids)
	return c.do(ctx, http.MethodGet, "/me/albums/contains", token, query)
}

// SaveAlbums saves album ids to the caller's library.
func (c *Client) SaveAlbums(ctx context.Context, token, ids string) (*Response, error) {
	query := url.Values{}
	query.Set("ids", ids)
	return c.do(ctx, http.MethodPut, "/me/albums", token, query)
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
