package musicbrainz

import (
	"strings"

	"github.com/landonrogers/bippi/internal/sanitize"
)

// BuildReleaseQuery turns a free-text album query into a release search
// query. Input of the form "Artist - Album" becomes a fielded query:
//
//	release:"Album" AND artist:"Artist"
//
// with double quotes inside either field backslash-escaped. Anything that
// does not split on a dash delimiter is returned unchanged so the service's
// own relevance ranking applies.
func BuildReleaseQuery(raw string) string {
	artist, album, ok := sanitize.SplitDash(raw)
	if !ok {
		return raw
	}
	return `release:"` + escapeQueryValue(album) + `" AND artist:"` + escapeQueryValue(artist) + `"`
}

func escapeQueryValue(value string) string {
	return strings.ReplaceAll(value, `"`, `\"`)
}
