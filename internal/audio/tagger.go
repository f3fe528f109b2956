package audio

import (
	"fmt"
	"strconv"

	"github.com/bogem/id3v2"

	"github.com/landonrogers/bippi/internal/model"
)

// Tagger writes ID3 tags to MP3 files.
//
// The downloader embeds a best-effort tag set through its ffmpeg
// postprocessor; the Tagger replaces it with authoritative release
// metadata after the file is on disk.
//
// Example:
//
//	tagger := NewTagger()
//	err := tagger.Retag(path, album, track, artworkBytes)
//	if err != nil {
//	    log.Printf("failed to tag %s: %v", path, err)
//	}
type Tagger struct{}

// NewTagger creates a new Tagger.
func NewTagger() *Tagger {
	return &Tagger{}
}

// Retag rewrites the ID3 frames of the MP3 at path with the release's
// values:
//
//   - TPE1 / TPE2: artist and album artist
//   - TALB / TIT2: album and track title
//   - TRCK: zero-padded "NN/total" across all discs
//   - TPOS: disc number, written for multi-disc releases only
//   - TDRC and TYER: release date and year, when the release has one
//   - APIC: front cover, when artwork bytes are provided
//
// Existing frames for these IDs are overwritten; any other frames in
// the file are preserved.
func (t *Tagger) Retag(path string, album *model.Album, track model.Track, artwork []byte) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer tag.Close()

	tag.SetArtist(album.Artist)
	tag.SetAlbum(album.Title)
	tag.SetTitle(track.Title)
	tag.AddTextFrame("TPE2", id3v2.EncodingUTF8, album.Artist)
	tag.AddTextFrame("TRCK", id3v2.EncodingUTF8,
		fmt.Sprintf("%02d/%d", track.OverallIndex, album.TotalTracks()))

	if album.TotalDiscs > 1 {
		tag.AddTextFrame("TPOS", id3v2.EncodingUTF8, strconv.Itoa(track.Disc))
	}

	if album.ReleaseDate != "" {
		tag.AddTextFrame("TDRC", id3v2.EncodingUTF8, album.ReleaseDate)
		if year := album.Year(); year != "" {
			tag.AddTextFrame("TYER", id3v2.EncodingUTF8, year)
		}
	}

	if artwork != nil {
		t.updateArtwork(tag, artwork)
	}

	return tag.Save()
}

// updateArtwork replaces any attached pictures with a single front cover.
func (t *Tagger) updateArtwork(tag *id3v2.Tag, artwork []byte) {
	tag.DeleteFrames(tag.CommonID("Attached picture"))

	pic := id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     artwork,
	}
	tag.AddAttachedPicture(pic)
}
