// Package audio post-processes downloaded files: it rewrites ID3 tags
// from authoritative release metadata and generates album playlists.
//
// # ID3 Retagging
//
// Use the Tagger to replace a finished MP3's tags with release values:
//
//	tagger := audio.NewTagger()
//	err := tagger.Retag("/music/01 - Song.mp3", album, track, artworkBytes)
//
// The tagger writes:
//   - Artist, Album Artist
//   - Album Title, Track Title
//   - Track Number, Disc Number (multi-disc releases)
//   - Release Date, Year
//   - Cover Art (embedded in the MP3)
//
// # Playlist Generation
//
// Generate an extended M3U for a completed album:
//
//	content := audio.M3UPlaylist(album, "mp3")
//	path := filepath.Join(dest, audio.M3UFileName(album))
//	os.WriteFile(path, []byte(content), 0644)
package audio
