package model

import (
	"fmt"
	"path/filepath"

	"github.com/landonrogers/bippi/internal/sanitize"
)

// Track represents a single track within a resolved album.
//
// Positions follow the metadata service's track listing:
//   - Disc is the medium the track belongs to (1-indexed)
//   - Position is the track's place on its own disc (1-indexed)
//   - OverallIndex is the track's place across the whole album,
//     contiguous from 1 regardless of disc boundaries
type Track struct {
	// Title is the track title, already resolved through the
	// title/recording/placeholder fallback chain.
	Title string

	// Disc is the disc number this track appears on.
	Disc int

	// Position is the track number within its disc.
	Position int

	// OverallIndex is the 1-based running index across all discs.
	OverallIndex int

	// Duration is the track length in seconds, or 0 when the metadata
	// service did not report one. Used for extended playlist entries.
	Duration float64
}

// FilePrefix returns the zero-padded filename prefix for the track.
//
// Multi-disc albums use "<disc>-<position>" so files group by disc;
// single-disc albums use the overall index:
//
//	track.FilePrefix(2) // "01-03"
//	track.FilePrefix(1) // "07"
func (t Track) FilePrefix(totalDiscs int) string {
	if totalDiscs > 1 {
		return fmt.Sprintf("%02d-%02d", t.Disc, t.Position)
	}
	return fmt.Sprintf("%02d", t.OverallIndex)
}

// OutputTemplate returns the downloader output template for the track,
// joined under the destination directory. The extension placeholder is
// left for the downloader to fill in after transcoding.
//
// Example:
//
//	track.OutputTemplate("/music", 1) // "/music/04 - Song Title.%(ext)s"
func (t Track) OutputTemplate(destination string, totalDiscs int) string {
	name := fmt.Sprintf("%s - %s.%%(ext)s", t.FilePrefix(totalDiscs), sanitize.Filename(t.Title))
	return filepath.Join(destination, name)
}

// FileName returns the concrete filename the downloader will produce for
// the track once transcoded to the given format.
func (t Track) FileName(totalDiscs int, format string) string {
	return fmt.Sprintf("%s - %s.%s", t.FilePrefix(totalDiscs), sanitize.Filename(t.Title), format)
}

// FilePath returns the concrete on-disk path for the downloaded track.
// Used after a download completes, for tagging and playlist entries.
func (t Track) FilePath(destination string, totalDiscs int, format string) string {
	return filepath.Join(destination, t.FileName(totalDiscs, format))
}
