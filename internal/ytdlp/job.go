package ytdlp

import (
	"strings"

	"github.com/landonrogers/bippi/internal/sanitize"
)

// Tag is one metadata key/value pair embedded into the downloaded file
// through the tool's ffmpeg postprocessor. Values are stored raw; Args
// escapes and quotes them.
type Tag struct {
	Key   string
	Value string
}

// Job describes a single downloader invocation: what to fetch, where to
// write it, and which metadata to embed.
type Job struct {
	// Target is a URL or search directive. It is always passed last so
	// it cannot be mistaken for a flag.
	Target string

	// OutputTemplate is the output path handed to the tool, with the
	// extension left as a placeholder for the transcoder.
	OutputTemplate string

	// Format is the audio format to transcode to (mp3, m4a, flac, ...).
	Format string

	// Playlist selects whole-playlist download instead of single-item.
	Playlist bool

	// ParseAlbumMeta maps the playlist title onto the album tag and the
	// playlist index onto the track number. Only set when Target is
	// itself a playlist; applying it to a single video would mistag the
	// result.
	ParseAlbumMeta bool

	// Tags carries ffmpeg -metadata pairs in the order they are
	// emitted.
	Tags []Tag
}

// Args assembles the tool's argument list for the job.
func (j Job) Args() []string {
	args := []string{
		"--ignore-errors",
		"--continue",
		"-x",
		"--audio-format", j.Format,
		"--output", j.OutputTemplate,
		"--embed-metadata",
	}

	if j.Playlist {
		args = append(args, "--yes-playlist")
	} else {
		args = append(args, "--no-playlist")
	}

	if j.ParseAlbumMeta {
		args = append(args,
			"--parse-metadata", "%(playlist_title|)s:%(meta_album)s",
			"--parse-metadata", "%(playlist_index)02d:%(meta_track_number)s",
		)
	}

	if len(j.Tags) > 0 {
		args = append(args, "--postprocessor-args", j.metadataArgs())
	}

	return append(args, j.Target)
}

// metadataArgs renders the tags as an ffmpeg argument string. Every
// value is escaped and quoted so titles containing quotes survive the
// shell-style splitting ffmpeg applies to its arguments.
func (j Job) metadataArgs() string {
	parts := make([]string, 0, len(j.Tags))
	for _, tag := range j.Tags {
		parts = append(parts, "-metadata "+tag.Key+"="+sanitize.MetadataValue(tag.Value))
	}
	return "ffmpeg:" + strings.Join(parts, " ")
}
