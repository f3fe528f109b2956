// Package download provides the orchestration logic that turns a
// user-supplied target into downloader invocations.
//
// # Resolution
//
// A target is resolved in a fixed order: a saved alias wins, then a
// literal URL or search directive is taken as-is, then free text
// becomes a search. Album mode adds richer tiers in front, each tried
// only when the previous one finds nothing:
//
//  1. A MusicBrainz release lookup. On a match every track is
//     downloaded through its own search, numbered output path, and
//     embedded tag set.
//  2. A flat YouTube search for an album playlist.
//  3. A single-result search as the last resort.
//
// "Nothing found" moves to the next tier; transport failures, releases
// without tracks, and downloader errors abort the run without falling
// back. Album downloads are strictly sequential and stop at the first
// track that fails, keeping the files that already completed.
//
// # Basic Usage
//
//	manager := download.NewManager(settings, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	err := manager.Run(ctx, download.Request{
//	    Target: "Sia - Some People Have Real Problems",
//	    Mode:   download.ModeAlbum,
//	    Format: "mp3",
//	})
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives
// ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// Polling front ends read the album track counters with GetProgress.
package download
