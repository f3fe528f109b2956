package audio

import (
	"fmt"
	"strings"

	"github.com/landonrogers/bippi/internal/model"
	"github.com/landonrogers/bippi/internal/sanitize"
)

// M3UFileName returns the playlist filename for an album, derived from
// the sanitized album title.
//
// Example:
//
//	M3UFileName(album) // "Some People Have Real Problems.m3u"
func M3UFileName(album *model.Album) string {
	return sanitize.Filename(album.Title) + ".m3u"
}

// M3UPlaylist generates extended M3U content for a fully downloaded
// album.
//
// Entries appear in overall track order and reference the concrete
// filenames the download produced, relative to the playlist's own
// directory. Tracks with a known duration get an #EXTINF line; tracks
// without one are listed bare.
//
// Example output:
//
//	#EXTM3U
//	#EXTINF:241,Sia - Little Black Sandals
//	02 - Little Black Sandals.mp3
func M3UPlaylist(album *model.Album, format string) string {
	var sb strings.Builder

	sb.WriteString("#EXTM3U\n")
	for _, track := range album.Tracks {
		if track.Duration > 0 {
			sb.WriteString(fmt.Sprintf("#EXTINF:%d,%s - %s\n",
				int(track.Duration), album.Artist, track.Title))
		}
		sb.WriteString(track.FileName(album.TotalDiscs, format) + "\n")
	}

	return sb.String()
}
