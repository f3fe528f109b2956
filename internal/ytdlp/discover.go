package ytdlp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"strings"
)

// listing mirrors the top level of the tool's flat-search JSON output.
type listing struct {
	Entries []listingEntry `json:"entries"`
}

// listingEntry is one flat search result. The shape varies between
// extractors, so every field is optional and playlistURL probes them in
// priority order.
type listingEntry struct {
	Type       string `json:"_type"`
	IEKey      string `json:"ie_key"`
	URL        string `json:"url"`
	PlaylistID string `json:"playlist_id"`
	ID         string `json:"id"`
}

// FindAlbumPlaylist searches for a playlist matching an album query.
//
// It runs a flat (metadata-only) search for "<query> album" and scans
// the entries in order for the first one that can be turned into a
// playlist URL. Not finding one is a normal outcome reported as an
// empty string: a failed search process, unparseable output, and a
// listing without entries all mean "no playlist", not an error. Errors
// are reserved for a missing binary and spawn failures.
func (r *Runner) FindAlbumPlaylist(ctx context.Context, query string) (string, error) {
	cmd := exec.CommandContext(ctx, r.binary(), "--flat-playlist", "-J", AlbumSearch(query))

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := wrapRunError(cmd.Run()); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return "", nil
		}
		return "", err
	}

	var result listing
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		return "", nil
	}

	for _, entry := range result.Entries {
		if url, ok := entry.playlistURL(); ok {
			return url, nil
		}
	}
	return "", nil
}

// playlistURL derives a playlist URL from a search entry, trying the
// strongest signals first:
//
//  1. A URL that is already absolute and carries a list marker is taken
//     verbatim.
//  2. An entry declared as a playlist (by type or extractor) has its
//     URL normalized against the canonical origin.
//  3. A bare playlist-shaped id (PL/OL/RD prefix) becomes a canonical
//     playlist URL.
//
// Entries matching none of these are skipped.
func (e listingEntry) playlistURL() (string, bool) {
	fallbackID := e.PlaylistID
	if fallbackID == "" {
		fallbackID = e.ID
	}

	if e.URL != "" {
		if strings.Contains(e.URL, "://") && strings.Contains(e.URL, playlistMarker) {
			return e.URL, true
		}
		if e.Type == "playlist" || isPlaylistExtractor(e.IEKey) {
			return normalizePlaylistURL(e.URL, fallbackID), true
		}
	}

	if hasPlaylistID(fallbackID) {
		return siteOrigin + "/playlist?list=" + fallbackID, true
	}

	return "", false
}

func isPlaylistExtractor(ieKey string) bool {
	switch ieKey {
	case "YoutubeTab", "YoutubePlaylist", "YoutubeMix":
		return true
	}
	return false
}

func hasPlaylistID(id string) bool {
	return strings.HasPrefix(id, "PL") ||
		strings.HasPrefix(id, "OL") ||
		strings.HasPrefix(id, "RD")
}

// normalizePlaylistURL absolutizes the URL shapes extractors return for
// playlists: absolute URLs pass through, site-relative playlist and
// watch paths gain the canonical origin, and anything else falls back
// to building a playlist URL from the entry's id or, failing that,
// treating the value itself as a list id.
func normalizePlaylistURL(rawURL, fallbackID string) string {
	switch {
	case strings.Contains(rawURL, "://"):
		return rawURL
	case strings.HasPrefix(rawURL, "/playlist?"), strings.HasPrefix(rawURL, "/watch?"):
		return siteOrigin + rawURL
	case strings.HasPrefix(rawURL, "playlist?"), strings.HasPrefix(rawURL, "watch?"):
		return siteOrigin + "/" + rawURL
	case fallbackID != "":
		return siteOrigin + "/playlist?list=" + fallbackID
	default:
		return siteOrigin + "/playlist?list=" + rawURL
	}
}
