package download

import (
	"fmt"
	"strconv"

	"github.com/landonrogers/bippi/internal/model"
	"github.com/landonrogers/bippi/internal/ytdlp"
)

// trackJob builds the downloader invocation for one album track: a
// single-result search for "<artist> <title> <album>", the track's
// numbered output path, and the release's embedded tag set.
func trackJob(album *model.Album, track model.Track, dest, format string) ytdlp.Job {
	terms := fmt.Sprintf("%s %s %s", album.Artist, track.Title, album.Title)

	return ytdlp.Job{
		Target:         ytdlp.SingleSearch(terms),
		OutputTemplate: track.OutputTemplate(dest, album.TotalDiscs),
		Format:         format,
		Tags:           trackTags(album, track),
	}
}

// trackTags assembles the embedded tag set in its fixed order: artist,
// album, album_artist, title, track, then disc (multi-disc releases
// only) and date (when the release has one).
func trackTags(album *model.Album, track model.Track) []ytdlp.Tag {
	tags := []ytdlp.Tag{
		{Key: "artist", Value: album.Artist},
		{Key: "album", Value: album.Title},
		{Key: "album_artist", Value: album.Artist},
		{Key: "title", Value: track.Title},
		{Key: "track", Value: fmt.Sprintf("%02d/%d", track.OverallIndex, album.TotalTracks())},
	}

	if album.TotalDiscs > 1 {
		tags = append(tags, ytdlp.Tag{Key: "disc", Value: strconv.Itoa(track.Disc)})
	}
	if album.ReleaseDate != "" {
		tags = append(tags, ytdlp.Tag{Key: "date", Value: album.ReleaseDate})
	}

	return tags
}
