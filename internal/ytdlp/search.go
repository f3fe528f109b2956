package ytdlp

import (
	"strings"

	"github.com/landonrogers/bippi/internal/sanitize"
)

const (
	// singleSearchPrefix asks the downloader for the single best match.
	singleSearchPrefix = "ytsearch1:"

	// albumSearchPrefix asks for a page of candidates to scan for
	// playlists.
	albumSearchPrefix = "ytsearch10:"

	// playlistMarker is the query parameter that marks a URL as a
	// playlist rather than a single video.
	playlistMarker = "list="

	// siteOrigin absolutizes relative playlist paths returned by flat
	// searches.
	siteOrigin = "https://www.youtube.com"
)

// SingleSearch wraps a free-text query in a search directive that
// resolves to the single best audio match.
//
// Queries of the form "Artist - Song" lose the delimiter so the search
// engine sees plain terms. " audio" is appended unless the query already
// mentions audio, and music videos are excluded:
//
//	SingleSearch("Metallica - One")
//	// `ytsearch1:Metallica One audio -"music video"`
func SingleSearch(query string) string {
	terms := strings.TrimSpace(query)
	if artist, song, ok := sanitize.SplitDash(terms); ok {
		terms = artist + " " + song
	}

	if !strings.Contains(strings.ToLower(terms), "audio") {
		terms += " audio"
	}
	terms += ` -"music video"`

	return singleSearchPrefix + strings.TrimSpace(terms)
}

// AlbumSearch wraps a free-text query in the flat search directive used
// to discover album playlists.
func AlbumSearch(query string) string {
	return albumSearchPrefix + query + " album"
}

// LooksLikeURL reports whether target is already a concrete location: a
// URL, a www address, or a search directive. Such targets bypass alias
// and search resolution.
func LooksLikeURL(target string) bool {
	lowered := strings.ToLower(strings.TrimSpace(target))
	return strings.HasPrefix(lowered, "http://") ||
		strings.HasPrefix(lowered, "https://") ||
		strings.HasPrefix(lowered, "ytsearch") ||
		strings.HasPrefix(lowered, "www.") ||
		strings.Contains(lowered, "://")
}

// LooksLikePlaylist reports whether target carries a playlist marker.
// Playlist metadata flags are only safe on targets that really are
// playlists.
func LooksLikePlaylist(target string) bool {
	return strings.Contains(strings.ToLower(target), playlistMarker)
}
