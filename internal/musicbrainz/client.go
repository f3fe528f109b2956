package musicbrainz

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/landonrogers/bippi/internal/model"
	"github.com/landonrogers/bippi/internal/musicbrainz/dto"
)

const (
	defaultBaseURL     = "https://musicbrainz.org/ws/2"
	defaultCoverArtURL = "https://coverartarchive.org"

	// MusicBrainz requires a contactable User-Agent for API access.
	userAgent = "bippi/0.1.0 (https://github.com/landonrogers/bippi)"
)

// Client queries the MusicBrainz web service and the Cover Art Archive.
//
// Client provides:
//   - Release search with a fielded or free-text query
//   - Release detail lookup including recordings and artist credits
//   - Front cover retrieval for a release
//
// Example usage:
//
//	client := musicbrainz.NewClient()
//
//	album, err := client.FindAlbum(ctx, "Sia - Some People Have Real Problems")
//	if album == nil && err == nil {
//	    // no matching release, fall back to another strategy
//	}
type Client struct {
	httpClient *http.Client
	userAgent  string

	// BaseURL is the MusicBrainz web service root.
	BaseURL string

	// CoverArtURL is the Cover Art Archive root.
	CoverArtURL string
}

// NewClient creates a client for the public MusicBrainz endpoints.
//
// The client is configured with:
//   - 15 second timeout
//   - An identifying User-Agent header, as MusicBrainz asks of API consumers
func NewClient() *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		userAgent:   userAgent,
		BaseURL:     defaultBaseURL,
		CoverArtURL: defaultCoverArtURL,
	}
}

// FindAlbum searches for a release matching query and returns it converted
// to the internal album model.
//
// A query with no matching release returns (nil, nil); that is a normal
// outcome, not an error. Errors are reserved for transport problems,
// non-success responses, unparseable payloads, and releases without tracks.
func (c *Client) FindAlbum(ctx context.Context, query string) (*model.Album, error) {
	params := url.Values{}
	params.Set("query", BuildReleaseQuery(query))
	params.Set("fmt", "json")
	params.Set("limit", "1")
	searchURL := c.BaseURL + "/release/?" + params.Encode()

	var search dto.JSONReleaseSearch
	if err := c.getJSON(ctx, searchURL, &search); err != nil {
		return nil, fmt.Errorf("search MusicBrainz releases: %w", err)
	}
	if len(search.Releases) == 0 {
		return nil, nil
	}

	detailURL := fmt.Sprintf("%s/release/%s?inc=recordings+artist-credits&fmt=json",
		c.BaseURL, search.Releases[0].ID)

	var release dto.JSONRelease
	if err := c.getJSON(ctx, detailURL, &release); err != nil {
		return nil, fmt.Errorf("fetch MusicBrainz release: %w", err)
	}

	return release.ToAlbum()
}

// CoverArt fetches the front cover image for a release from the Cover Art
// Archive. Releases without cover art return (nil, nil); that is a normal
// outcome, not an error.
func (c *Client) CoverArt(ctx context.Context, releaseID string) ([]byte, error) {
	coverURL := fmt.Sprintf("%s/release/%s/front", c.CoverArtURL, releaseID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, coverURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// getJSON performs a GET request and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
