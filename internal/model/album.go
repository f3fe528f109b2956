package model

// Album represents a release resolved from the metadata service.
//
// Album carries everything the download pipeline needs to fetch and tag
// an entire release:
//   - Artist and Title for search queries and embedded tags
//   - ReleaseDate for the date tag (empty when the service omits it)
//   - TotalDiscs to decide between disc-position and overall-index
//     filename prefixes
//   - Tracks in disc-major order with contiguous overall indexes
//
// An Album is constructed once per album invocation from a release detail
// payload and is never mutated afterward. An album with zero tracks is a
// conversion failure, not a valid Album.
type Album struct {
	// ID is the metadata service's release identifier. It is used to
	// fetch cover art and is empty for albums that did not come from
	// the metadata service.
	ID string

	// Title is the album title. Defaults to "Unknown Release" when the
	// service response has no title.
	Title string

	// Artist is the composed artist credit for the whole release.
	Artist string

	// ReleaseDate is the release date string as reported by the
	// metadata service ("2006-01-02" or just "2006"). Empty when
	// unknown.
	ReleaseDate string

	// TotalDiscs is the number of media that contributed at least one
	// track. Always >= 1 for a valid album.
	TotalDiscs int

	// Tracks lists every track in the order it was discovered across
	// media: disc 1 first, then disc 2, and so on.
	Tracks []Track
}

// TotalTracks returns the number of tracks on the album.
func (a *Album) TotalTracks() int {
	return len(a.Tracks)
}

// Year returns the four-digit release year, or "" when the release date
// is missing or too short to contain one.
func (a *Album) Year() string {
	if len(a.ReleaseDate) < 4 {
		return ""
	}
	return a.ReleaseDate[:4]
}
