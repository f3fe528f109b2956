// Package model defines the core data structures shared across the bippi
// pipeline.
//
// # Album and Track
//
// Album represents a release resolved from the metadata service, with its
// tracks in disc-major order:
//
//	album.TotalTracks() // total track count across all discs
//	album.Year()        // four-digit release year, or ""
//
// Track knows how to name its own output file:
//
//	track.OutputTemplate("/music", album.TotalDiscs)
//	// "/music/03 - Song Title.%(ext)s"
//
// # Alias
//
// Alias is a saved shortcut mapping a name to a URL plus an album flag.
// The name itself is the key in the configuration's alias table.
package model
