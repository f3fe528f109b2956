package download

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/landonrogers/bippi/internal/model"
)

func twoDiscAlbum() *model.Album {
	return &model.Album{
		Title:       "Physical Graffiti",
		Artist:      "Led Zeppelin",
		ReleaseDate: "1975-02-24",
		TotalDiscs:  2,
		Tracks: []model.Track{
			{Title: "Custard Pie", Disc: 1, Position: 1, OverallIndex: 1},
			{Title: "Kashmir", Disc: 2, Position: 1, OverallIndex: 2},
		},
	}
}

func TestTrackTags_FullSet(t *testing.T) {
	album := twoDiscAlbum()
	tags := trackTags(album, album.Tracks[1])

	wantKeys := []string{"artist", "album", "album_artist", "title", "track", "disc", "date"}
	if len(tags) != len(wantKeys) {
		t.Fatalf("got %d tags, want %d: %+v", len(tags), len(wantKeys), tags)
	}
	for i, key := range wantKeys {
		if tags[i].Key != key {
			t.Errorf("tags[%d].Key = %q, want %q", i, tags[i].Key, key)
		}
	}

	wantValues := map[string]string{
		"artist":       "Led Zeppelin",
		"album":        "Physical Graffiti",
		"album_artist": "Led Zeppelin",
		"title":        "Kashmir",
		"track":        "02/2",
		"disc":         "2",
		"date":         "1975-02-24",
	}
	for _, tag := range tags {
		if want := wantValues[tag.Key]; tag.Value != want {
			t.Errorf("tag %s = %q, want %q", tag.Key, tag.Value, want)
		}
	}
}

func TestTrackTags_OptionalTagsOmitted(t *testing.T) {
	album := &model.Album{
		Title:      "Demo",
		Artist:     "Somebody",
		TotalDiscs: 1,
		Tracks: []model.Track{
			{Title: "Only Song", Disc: 1, Position: 1, OverallIndex: 1},
		},
	}
	tags := trackTags(album, album.Tracks[0])

	for _, tag := range tags {
		if tag.Key == "disc" {
			t.Error("single-disc albums must not carry a disc tag")
		}
		if tag.Key == "date" {
			t.Error("albums without a release date must not carry a date tag")
		}
	}
	if len(tags) != 5 {
		t.Errorf("got %d tags, want 5: %+v", len(tags), tags)
	}
}

func TestTrackJob(t *testing.T) {
	album := &model.Album{
		Title:      "Album",
		Artist:     "Artist",
		TotalDiscs: 1,
		Tracks: []model.Track{
			{Title: "Track/Name", Disc: 1, Position: 1, OverallIndex: 1},
		},
	}
	job := trackJob(album, album.Tracks[0], "/music", "mp3")

	if job.Playlist {
		t.Error("track jobs are single downloads, not playlists")
	}
	if job.ParseAlbumMeta {
		t.Error("track jobs carry explicit tags, not parsed playlist metadata")
	}
	if job.Format != "mp3" {
		t.Errorf("Format = %q, want %q", job.Format, "mp3")
	}

	wantTemplate := filepath.Join("/music", "01 - Track_Name.%(ext)s")
	if job.OutputTemplate != wantTemplate {
		t.Errorf("OutputTemplate = %q, want %q", job.OutputTemplate, wantTemplate)
	}

	if !strings.HasPrefix(job.Target, "ytsearch1:") {
		t.Errorf("Target = %q, want a single-result search directive", job.Target)
	}
	if !strings.Contains(job.Target, "Artist") || !strings.Contains(job.Target, "Album") {
		t.Errorf("Target should carry artist and album for precision: %q", job.Target)
	}
}
