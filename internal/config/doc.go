// Package config provides configuration persistence for bippi.
//
// Settings are a small JSON document holding the default download
// destination and the alias table:
//
//	{
//	  "default_destination": "/home/user/Music",
//	  "aliases": {
//	    "focus": {"url": "https://www.youtube.com/playlist?list=PL...", "album": true}
//	  }
//	}
//
// # Loading and saving
//
//	path, _ := config.FilePath() // e.g. ~/.config/bippi/config.json
//	settings, err := config.Load(path)
//	// missing file -> defaults, destination filled with the music dir
//
//	settings.SetAlias("focus", model.Alias{URL: url, Album: true})
//	err = settings.Save(path)
//
// # Destination resolution
//
// ResolveDestination applies the precedence flag > config > working
// directory and absolutizes relative paths:
//
//	dest, err := settings.ResolveDestination(flagValue)
package config
