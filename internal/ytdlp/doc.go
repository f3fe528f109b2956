// Package ytdlp drives the external yt-dlp downloader: it builds search
// directives and invocation arguments, runs the tool as a blocking child
// process, and performs flat playlist-discovery searches.
//
// # Search directives
//
// Free-text queries become provider search directives:
//
//	ytdlp.SingleSearch("Metallica - One")
//	// `ytsearch1:Metallica One audio -"music video"`
//
// # Running jobs
//
// A Job captures one invocation; the Runner executes it:
//
//	runner := ytdlp.NewRunner()
//	err := runner.Run(ctx, ytdlp.Job{
//	    Target:         "https://www.youtube.com/watch?v=...",
//	    OutputTemplate: "/music/%(title)s.%(ext)s",
//	    Format:         "mp3",
//	})
//
// A missing binary is reported as ErrToolMissing, a non-zero exit as an
// *ExitError carrying the exact code. The tool's own retry and network
// behavior is opaque to this package.
//
// # Playlist discovery
//
// FindAlbumPlaylist searches for an album playlist without downloading
// anything; "nothing found" is an empty string, not an error.
package ytdlp
