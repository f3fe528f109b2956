package model

// Alias is a user-defined shortcut for a download target. The alias name
// is the key in the configuration's alias table; the value records where
// the alias points and whether it refers to an album or playlist.
//
// Aliases are created and removed only by explicit commands; resolution
// reads them but never mutates the table.
type Alias struct {
	// URL is the target the alias resolves to.
	URL string `json:"url"`

	// Album marks the alias as an album/playlist. When true, the alias
	// forces playlist-mode download flags even in single mode.
	Album bool `json:"album"`
}
