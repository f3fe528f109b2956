// Package sanitize provides the string-cleaning primitives shared by the
// download pipeline: filesystem-safe filenames, quoted metadata values for
// ffmpeg tag arguments, and artist/title splitting on dash-like delimiters.
//
// # Filenames
//
// Filename replaces characters that are invalid in file names with
// underscores and guarantees a non-empty result:
//
//	sanitize.Filename("Title:With*Special?Chars") // "Title_With_Special_Chars"
//	sanitize.Filename("")                         // "track"
//
// # Metadata values
//
// MetadataValue escapes and quotes a value for use inside an
// ffmpeg-style -metadata argument:
//
//	sanitize.MetadataValue(`Say "Hello"`) // "\"Say \\\"Hello\\\"\""
//
// # Dash splitting
//
// SplitDash breaks a "Artist - Title" style query into its two halves,
// trying hyphen, en dash, and em dash in that order:
//
//	artist, title, ok := sanitize.SplitDash("Metallica - Master of Puppets")
//	// "Metallica", "Master of Puppets", true
package sanitize
