package sanitize

import (
	"strings"
	"unicode"
)

// dashDelimiters are tried in priority order when splitting a query into
// artist and title halves: plain hyphen first, then en dash, then em dash.
var dashDelimiters = []rune{'-', '–', '—'}

// Filename replaces characters that are invalid in file or folder names
// with underscores.
//
// The following transformations are applied:
//   - Each of / \ ? * " < > | : and any control character becomes "_"
//   - Leading and trailing whitespace and dots are trimmed
//   - An empty result is replaced with the literal "track"
//
// The function is idempotent: applying it to its own output returns the
// output unchanged.
//
// Example:
//
//	Filename("Song: Part 1/2") // Returns "Song_ Part 1_2"
//	Filename("...dots...")     // Returns "dots"
func Filename(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	for _, r := range name {
		switch r {
		case '/', '\\', '?', '*', '"', '<', '>', '|', ':':
			b.WriteRune('_')
		default:
			if unicode.IsControl(r) {
				b.WriteRune('_')
			} else {
				b.WriteRune(r)
			}
		}
	}

	trimmed := strings.TrimFunc(b.String(), func(r rune) bool {
		return unicode.IsSpace(r) || r == '.'
	})
	if trimmed == "" {
		return "track"
	}
	return trimmed
}

// MetadataValue escapes a tag value and wraps it in double quotes so that
// it survives the downloader's postprocessor argument parsing.
//
// Backslashes are escaped before quotes to avoid double-escaping. The
// result is intended only for -metadata key=value pairs, never for
// filesystem paths.
func MetadataValue(value string) string {
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}

// SplitDash splits a query of the form "Artist - Title" into its halves.
//
// Hyphen, en dash, and em dash are tried in that order; the first
// delimiter whose split yields two non-empty trimmed halves wins. When no
// delimiter qualifies, ok is false.
//
// Example:
//
//	left, right, ok := SplitDash("Metallica - Master of Puppets")
//	// left = "Metallica", right = "Master of Puppets", ok = true
//
//	_, _, ok = SplitDash("NoDelimiterHere") // ok = false
func SplitDash(raw string) (left, right string, ok bool) {
	for _, delim := range dashDelimiters {
		before, after, found := strings.Cut(raw, string(delim))
		if !found {
			continue
		}
		before = strings.TrimSpace(before)
		after = strings.TrimSpace(after)
		if before != "" && after != "" {
			return before, after, true
		}
	}
	return "", "", false
}
