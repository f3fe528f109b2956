package ytdlp

import (
	"strings"
	"testing"
)

func TestSingleSearch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "artist and song split on dash",
			query: "Metallica - Nothing Else Matters",
			want:  `ytsearch1:Metallica Nothing Else Matters audio -"music video"`,
		},
		{
			name:  "plain query",
			query: "some song",
			want:  `ytsearch1:some song audio -"music video"`,
		},
		{
			name:  "audio not repeated",
			query: "some audio track",
			want:  `ytsearch1:some audio track -"music video"`,
		},
		{
			name:  "audio detection is case-insensitive",
			query: "AUDIO book",
			want:  `ytsearch1:AUDIO book -"music video"`,
		},
		{
			name:  "whitespace trimmed",
			query: "  padded query  ",
			want:  `ytsearch1:padded query audio -"music video"`,
		},
		{
			name:  "en dash splits too",
			query: "Sigur Rós – Hoppípolla",
			want:  `ytsearch1:Sigur Rós Hoppípolla audio -"music video"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SingleSearch(tt.query); got != tt.want {
				t.Errorf("SingleSearch(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestAlbumSearch(t *testing.T) {
	got := AlbumSearch("Sia - Some People Have Real Problems")
	want := "ytsearch10:Sia - Some People Have Real Problems album"
	if got != want {
		t.Errorf("AlbumSearch = %q, want %q", got, want)
	}
}

func TestLooksLikeURL(t *testing.T) {
	tests := []struct {
		target string
		want   bool
	}{
		{"https://www.youtube.com/watch?v=123", true},
		{"http://example.com", true},
		{"ytsearch:something", true},
		{"ytsearch1:other thing", true},
		{"www.youtube.com/watch?v=123", true},
		{"ftp://mirror/track.mp3", true},
		{"  HTTPS://UPPER.CASE  ", true},
		{"just a search query", false},
		{"Metallica - Nothing Else Matters", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			if got := LooksLikeURL(tt.target); got != tt.want {
				t.Errorf("LooksLikeURL(%q) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}

func TestLooksLikePlaylist(t *testing.T) {
	tests := []struct {
		target string
		want   bool
	}{
		{"https://www.youtube.com/playlist?list=PLxxx", true},
		{"https://www.youtube.com/watch?v=123&list=PLyyy", true},
		{"https://www.youtube.com/watch?v=123", false},
		{`ytsearch1:query audio -"music video"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			if got := LooksLikePlaylist(tt.target); got != tt.want {
				t.Errorf("LooksLikePlaylist(%q) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}

func TestSingleSearch_Shape(t *testing.T) {
	got := SingleSearch("anything at all")

	if !strings.HasPrefix(got, "ytsearch1:") {
		t.Errorf("directive %q should carry the single-result prefix", got)
	}
	if !strings.HasSuffix(got, `-"music video"`) {
		t.Errorf("directive %q should end with the music-video exclusion", got)
	}
}
