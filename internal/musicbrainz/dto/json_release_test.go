package dto

import (
	"encoding/json"
	"errors"
	"testing"
)

const releaseJSON = `{
	"id": "d6010be3-98f8-422c-a6c9-787e2e491e58",
	"title": "Some People Have Real Problems",
	"date": "2008-01-08",
	"artist-credit": [
		{"name": "Sia", "joinphrase": "", "artist": {"name": "Sia"}}
	],
	"media": [
		{
			"position": 1,
			"tracks": [
				{"position": 1, "number": "1", "title": "Little Black Sandals", "length": 241000},
				{"position": 2, "number": "2", "title": "Lentil", "recording": {"title": "Lentil", "length": 173000}}
			]
		},
		{
			"position": 2,
			"tracks": [
				{"position": 1, "number": "1", "title": "Buttons", "length": 229000}
			]
		}
	]
}`

func TestToAlbum(t *testing.T) {
	var release JSONRelease
	if err := json.Unmarshal([]byte(releaseJSON), &release); err != nil {
		t.Fatalf("unmarshal release: %v", err)
	}

	album, err := release.ToAlbum()
	if err != nil {
		t.Fatalf("ToAlbum() error = %v", err)
	}

	if album.ID != "d6010be3-98f8-422c-a6c9-787e2e491e58" {
		t.Errorf("ID = %q, want release MBID", album.ID)
	}
	if album.Title != "Some People Have Real Problems" {
		t.Errorf("Title = %q", album.Title)
	}
	if album.Artist != "Sia" {
		t.Errorf("Artist = %q, want %q", album.Artist, "Sia")
	}
	if album.ReleaseDate != "2008-01-08" {
		t.Errorf("ReleaseDate = %q", album.ReleaseDate)
	}
	if album.TotalDiscs != 2 {
		t.Errorf("TotalDiscs = %d, want 2", album.TotalDiscs)
	}
	if len(album.Tracks) != 3 {
		t.Fatalf("len(Tracks) = %d, want 3", len(album.Tracks))
	}

	for i, track := range album.Tracks {
		if track.OverallIndex != i+1 {
			t.Errorf("Tracks[%d].OverallIndex = %d, want %d", i, track.OverallIndex, i+1)
		}
	}

	first := album.Tracks[0]
	if first.Title != "Little Black Sandals" || first.Disc != 1 || first.Position != 1 {
		t.Errorf("first track = %+v", first)
	}
	if first.Duration != 241 {
		t.Errorf("first track Duration = %v, want 241", first.Duration)
	}

	second := album.Tracks[1]
	if second.Duration != 173 {
		t.Errorf("second track Duration = %v, want 173 (from recording)", second.Duration)
	}

	last := album.Tracks[2]
	if last.Disc != 2 || last.Position != 1 {
		t.Errorf("last track disc/position = %d/%d, want 2/1", last.Disc, last.Position)
	}
}

func TestToAlbum_Fallbacks(t *testing.T) {
	data := `{
		"media": [
			{"tracks": []},
			{
				"tracks": [
					{"recording": {"title": "From Recording"}},
					{"number": "7"},
					{}
				]
			}
		]
	}`

	var release JSONRelease
	if err := json.Unmarshal([]byte(data), &release); err != nil {
		t.Fatalf("unmarshal release: %v", err)
	}

	album, err := release.ToAlbum()
	if err != nil {
		t.Fatalf("ToAlbum() error = %v", err)
	}

	if album.Title != "Unknown Release" {
		t.Errorf("Title = %q, want %q", album.Title, "Unknown Release")
	}
	if album.Artist != "Unknown Artist" {
		t.Errorf("Artist = %q, want %q", album.Artist, "Unknown Artist")
	}
	// Only one medium has tracks, so the album is single-disc even though
	// the payload lists two media.
	if album.TotalDiscs != 1 {
		t.Errorf("TotalDiscs = %d, want 1", album.TotalDiscs)
	}
	if len(album.Tracks) != 3 {
		t.Fatalf("len(Tracks) = %d, want 3", len(album.Tracks))
	}

	// The contributing medium is second in the list and has no declared
	// position, so its disc number comes from its index among all media.
	for i, track := range album.Tracks {
		if track.Disc != 2 {
			t.Errorf("Tracks[%d].Disc = %d, want 2", i, track.Disc)
		}
	}

	if got := album.Tracks[0].Title; got != "From Recording" {
		t.Errorf("Tracks[0].Title = %q, want %q", got, "From Recording")
	}
	if got := album.Tracks[1].Title; got != "Track 2" {
		t.Errorf("Tracks[1].Title = %q, want %q", got, "Track 2")
	}
	if got := album.Tracks[1].Position; got != 7 {
		t.Errorf("Tracks[1].Position = %d, want 7 (parsed from number)", got)
	}
	if got := album.Tracks[2].Position; got != 3 {
		t.Errorf("Tracks[2].Position = %d, want 3 (index fallback)", got)
	}
}

func TestToAlbum_NoTracks(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no media", `{"title": "Empty"}`},
		{"only empty media", `{"title": "Empty", "media": [{"tracks": []}, {}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var release JSONRelease
			if err := json.Unmarshal([]byte(tt.data), &release); err != nil {
				t.Fatalf("unmarshal release: %v", err)
			}

			_, err := release.ToAlbum()
			if !errors.Is(err, ErrNoTracks) {
				t.Errorf("ToAlbum() error = %v, want ErrNoTracks", err)
			}
		})
	}
}

func TestCreditedArtist(t *testing.T) {
	tests := []struct {
		name    string
		credits string
		want    string
	}{
		{
			name:    "single credit",
			credits: `[{"name": "Daft Punk", "joinphrase": ""}]`,
			want:    "Daft Punk",
		},
		{
			name: "join phrases",
			credits: `[
				{"name": "Queen", "joinphrase": " & "},
				{"name": "David Bowie", "joinphrase": ""}
			]`,
			want: "Queen & David Bowie",
		},
		{
			name:    "credit name from nested artist",
			credits: `[{"joinphrase": "", "artist": {"name": "Nested"}}]`,
			want:    "Nested",
		},
		{
			name: "absent names fall back to nested artists",
			credits: `[
				{"artist": {"name": "First"}},
				{"artist": {"name": "Second"}}
			]`,
			want: "FirstSecond",
		},
		{
			name: "nested names joined when composition is empty",
			credits: `[
				{"name": "", "artist": {"name": "First"}},
				{"name": "", "artist": {"name": "Second"}}
			]`,
			want: "First & Second",
		},
		{
			name:    "no credits",
			credits: `[]`,
			want:    "",
		},
		{
			name:    "credits without any names",
			credits: `[{"joinphrase": " feat. "}]`,
			want:    " feat. ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var credits []JSONArtistCredit
			if err := json.Unmarshal([]byte(tt.credits), &credits); err != nil {
				t.Fatalf("unmarshal credits: %v", err)
			}

			if got := creditedArtist(credits); got != tt.want {
				t.Errorf("creditedArtist() = %q, want %q", got, tt.want)
			}
		})
	}
}
