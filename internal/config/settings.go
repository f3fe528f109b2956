package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/adrg/xdg"

	"github.com/landonrogers/bippi/internal/model"
)

// configRelPath is the config file location relative to the user config
// directory (for example ~/.config/bippi/config.json on Linux).
const configRelPath = "bippi/config.json"

// Settings holds the persisted configuration: the default download
// destination and the alias table.
type Settings struct {
	// DefaultDestination is the directory downloads are saved to when
	// no destination flag is given. Filled with the user's music
	// directory when the config file does not set one.
	DefaultDestination string `json:"default_destination,omitempty"`

	// Aliases maps alias names to their saved targets.
	Aliases map[string]model.Alias `json:"aliases"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		DefaultDestination: DefaultMusicDir(),
		Aliases:            make(map[string]model.Alias),
	}
}

// FilePath returns the location of the config file, creating the config
// directory if needed.
func FilePath() (string, error) {
	return xdg.ConfigFile(configRelPath)
}

// DefaultMusicDir returns the user's music directory, falling back to a
// "music" folder in the home directory when the platform does not define
// one.
func DefaultMusicDir() string {
	if xdg.UserDirs.Music != "" {
		return xdg.UserDirs.Music
	}
	return filepath.Join(xdg.Home, "music")
}

// Load reads settings from a JSON file.
//
// A missing or empty file yields default settings. A destination left
// unset in the file is filled with the default music directory.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return DefaultSettings(), nil
	}

	settings := &Settings{}
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	if settings.DefaultDestination == "" {
		settings.DefaultDestination = DefaultMusicDir()
	}
	if settings.Aliases == nil {
		settings.Aliases = make(map[string]model.Alias)
	}

	return settings, nil
}

// Save writes settings to a JSON file, creating parent directories as
// needed.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// SetAlias creates or updates an alias. It reports whether an alias with
// that name already existed.
func (s *Settings) SetAlias(name string, alias model.Alias) bool {
	if s.Aliases == nil {
		s.Aliases = make(map[string]model.Alias)
	}
	_, existed := s.Aliases[name]
	s.Aliases[name] = alias
	return existed
}

// RemoveAlias deletes an alias by name. It reports whether the alias was
// present.
func (s *Settings) RemoveAlias(name string) bool {
	_, present := s.Aliases[name]
	delete(s.Aliases, name)
	return present
}

// AliasNames returns all alias names in sorted order.
func (s *Settings) AliasNames() []string {
	names := make([]string, 0, len(s.Aliases))
	for name := range s.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveDestination picks the download destination: an explicit flag
// wins, then the configured default, then the current working directory.
// Relative paths are made absolute against the working directory.
func (s *Settings) ResolveDestination(flagDest string) (string, error) {
	if flagDest != "" {
		return filepath.Abs(flagDest)
	}
	if s.DefaultDestination != "" {
		return s.DefaultDestination, nil
	}
	return os.Getwd()
}
