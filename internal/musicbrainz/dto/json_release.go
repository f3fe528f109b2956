package dto

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/landonrogers/bippi/internal/model"
)

// ErrNoTracks is returned when a release detail payload contains no usable
// tracks. This is a hard conversion failure, distinct from "no release
// found": a matched release with an empty track list cannot be downloaded.
var ErrNoTracks = errors.New("MusicBrainz release does not contain any tracks")

// JSONReleaseSearch represents the release search response.
type JSONReleaseSearch struct {
	Releases []JSONReleaseSearchEntry `json:"releases"`
}

// JSONReleaseSearchEntry is one candidate release in a search response.
type JSONReleaseSearchEntry struct {
	ID string `json:"id"`
}

// JSONRelease represents the release detail payload, requested with
// recordings and artist credits included. Every field is optional; the
// conversion applies fallbacks for anything missing.
type JSONRelease struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Date         string             `json:"date"`
	ArtistCredit []JSONArtistCredit `json:"artist-credit"`
	Media        []JSONMedium       `json:"media"`
}

// JSONArtistCredit is one entry of a release's artist credit list. Name is
// a pointer because an absent name falls back to the nested artist while a
// present empty one does not.
type JSONArtistCredit struct {
	Name       *string     `json:"name"`
	JoinPhrase string      `json:"joinphrase"`
	Artist     *JSONArtist `json:"artist"`
}

// JSONArtist holds the nested artist record of a credit.
type JSONArtist struct {
	Name string `json:"name"`
}

// JSONMedium is one disc/volume of a release.
type JSONMedium struct {
	Position *int        `json:"position"`
	Tracks   []JSONTrack `json:"tracks"`
}

// JSONTrack is one track on a medium.
type JSONTrack struct {
	Position  *int           `json:"position"`
	Number    string         `json:"number"`
	Title     string         `json:"title"`
	Length    int            `json:"length"` // milliseconds
	Recording *JSONRecording `json:"recording"`
}

// JSONRecording holds the recording a track points at.
type JSONRecording struct {
	Title  string `json:"title"`
	Length int    `json:"length"` // milliseconds
}

// ToAlbum converts a release detail payload into a model.Album.
//
// Fallbacks, in order:
//   - Album title: "Unknown Release" when absent
//   - Artist: composed artist credit, then nested names joined with
//     " & ", then "Unknown Artist"
//   - Disc number: the medium's declared position, or its 1-based index
//     among all media (including skipped empty ones)
//   - Track title: own title, then recording title, then "Track <n>"
//   - Track position: declared position, then the parsed number string,
//     then the 1-based index within the medium
//
// Media without tracks are skipped. Overall indexes are assigned in
// discovery order across all media, starting at 1 with no gaps. A payload
// that yields zero tracks fails with ErrNoTracks.
func (r *JSONRelease) ToAlbum() (*model.Album, error) {
	title := r.Title
	if title == "" {
		title = "Unknown Release"
	}

	artist := creditedArtist(r.ArtistCredit)
	if artist == "" {
		artist = "Unknown Artist"
	}

	var tracks []model.Track
	discsWithTracks := 0

	for mediumIndex, medium := range r.Media {
		if len(medium.Tracks) == 0 {
			continue
		}
		discsWithTracks++

		disc := mediumIndex + 1
		if medium.Position != nil {
			disc = *medium.Position
		}

		for indexOnDisc, jt := range medium.Tracks {
			tracks = append(tracks, jt.toTrack(disc, indexOnDisc, len(tracks)+1))
		}
	}

	if len(tracks) == 0 {
		return nil, ErrNoTracks
	}

	totalDiscs := discsWithTracks
	if totalDiscs == 0 {
		totalDiscs = 1
	}

	return &model.Album{
		ID:          r.ID,
		Title:       title,
		Artist:      artist,
		ReleaseDate: r.Date,
		TotalDiscs:  totalDiscs,
		Tracks:      tracks,
	}, nil
}

// toTrack converts one track entry. indexOnDisc is 0-based within the
// medium; overallIndex is the 1-based running count across the album.
func (jt JSONTrack) toTrack(disc, indexOnDisc, overallIndex int) model.Track {
	title := jt.Title
	if title == "" && jt.Recording != nil {
		title = jt.Recording.Title
	}
	if title == "" {
		title = fmt.Sprintf("Track %d", indexOnDisc+1)
	}

	position := indexOnDisc + 1
	if jt.Position != nil {
		position = *jt.Position
	} else if n, err := strconv.Atoi(jt.Number); err == nil {
		position = n
	}

	lengthMS := jt.Length
	if lengthMS == 0 && jt.Recording != nil {
		lengthMS = jt.Recording.Length
	}

	return model.Track{
		Title:        title,
		Disc:         disc,
		Position:     position,
		OverallIndex: overallIndex,
		Duration:     float64(lengthMS) / 1000,
	}
}

// creditedArtist composes the display artist from the credit list.
//
// Each credit contributes its name (falling back to the nested artist's
// name when no name is given at all) immediately followed by its join
// phrase. When that composition is empty, the available nested artist
// names are joined with " & " instead.
func creditedArtist(credits []JSONArtistCredit) string {
	if len(credits) == 0 {
		return ""
	}

	var composed strings.Builder
	for _, credit := range credits {
		switch {
		case credit.Name != nil:
			composed.WriteString(*credit.Name)
		case credit.Artist != nil:
			composed.WriteString(credit.Artist.Name)
		}
		composed.WriteString(credit.JoinPhrase)
	}
	if composed.Len() > 0 {
		return composed.String()
	}

	var names []string
	for _, credit := range credits {
		if credit.Artist != nil && credit.Artist.Name != "" {
			names = append(names, credit.Artist.Name)
		}
	}
	return strings.Join(names, " & ")
}
