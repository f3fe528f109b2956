// Package musicbrainz looks up authoritative release metadata.
//
// The Client searches the MusicBrainz web service for a release, fetches
// its full track listing, and converts the response into the internal
// album model. Queries of the form "Artist - Album" become fielded
// searches; anything else is passed through for the service's own
// relevance ranking:
//
//	client := musicbrainz.NewClient()
//	album, err := client.FindAlbum(ctx, "Metallica - Master of Puppets")
//	if err != nil {
//	    // transport or parse failure, or a release without tracks
//	}
//	if album == nil {
//	    // no matching release; callers fall back to other strategies
//	}
//
// Cover art comes from the Cover Art Archive through the same client; a
// release without a front cover is (nil, nil), not an error.
package musicbrainz
