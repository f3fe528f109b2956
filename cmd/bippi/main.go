// Command bippi downloads music through yt-dlp, resolving free-text
// queries via MusicBrainz and YouTube search. For interactive use, see
// bippi-tui.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/landonrogers/bippi/internal/config"
	"github.com/landonrogers/bippi/internal/download"
	ioutils "github.com/landonrogers/bippi/internal/io"
	"github.com/landonrogers/bippi/internal/model"
)

const version = "0.1.0"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\ninterrupted, cancelling...")
		cancel()
	}()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bippi",
		Short:         "Download music from YouTube and other sources",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newDownloadCmd(download.ModeSingle),
		newDownloadCmd(download.ModeAlbum),
		newAliasCmd(),
		newConfigCmd(),
	)
	return root
}

// downloadOptions collects the flags shared by the single and album
// commands. The cover, playlist, and retag extras only exist on album.
type downloadOptions struct {
	dest    string
	format  string
	verbose bool
	dryRun  bool

	cover    bool
	playlist bool
	retag    bool
}

func newDownloadCmd(mode download.Mode) *cobra.Command {
	opts := &downloadOptions{}

	use := "single TARGET..."
	short := "Download a single track using a URL, alias, or search"
	if mode == download.ModeAlbum {
		use = "album TARGET..."
		short = "Download an entire album or playlist"
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDownload(cmd.Context(), mode, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dest, "dest", "d", "", "destination directory for the downloaded audio")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "mp3", "audio format (mp3, m4a, flac, ...)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "show verbose output")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "resolve the target without downloading")

	if mode == download.ModeAlbum {
		cmd.Flags().BoolVar(&opts.cover, "cover", false, "save release cover art in the destination")
		cmd.Flags().BoolVar(&opts.playlist, "playlist", false, "write an .m3u playlist once the album completes")
		cmd.Flags().BoolVar(&opts.retag, "retag", false, "rewrite ID3 tags from release metadata after each track (mp3 only)")
	}

	return cmd
}

func runDownload(ctx context.Context, mode download.Mode, target string, opts *downloadOptions) error {
	settings, _, err := loadSettings()
	if err != nil {
		return err
	}

	manager := download.NewManager(settings, printEvent(opts.verbose))

	return manager.Run(ctx, download.Request{
		Target:   target,
		Mode:     mode,
		Dest:     opts.dest,
		Format:   opts.format,
		DryRun:   opts.dryRun,
		Cover:    opts.cover,
		Playlist: opts.playlist,
		Retag:    opts.retag,
	})
}

// printEvent renders pipeline progress for the terminal. Verbose
// messages are dropped unless requested; warnings and results get a
// marker so they stand out between the downloader's own output lines.
func printEvent(verbose bool) func(download.ProgressEvent) {
	return func(event download.ProgressEvent) {
		switch event.Level {
		case download.LevelVerbose:
			if verbose {
				fmt.Println("  " + event.Message)
			}
		case download.LevelWarning:
			fmt.Println("! " + event.Message)
		case download.LevelError:
			fmt.Println("✗ " + event.Message)
		case download.LevelSuccess:
			fmt.Println("✓ " + event.Message)
		default:
			fmt.Println(event.Message)
		}
	}
}

// loadSettings reads the config file from its XDG location, returning
// the settings together with the path they came from so mutating
// commands can save back to the same file.
func loadSettings() (*config.Settings, string, error) {
	path, err := config.FilePath()
	if err != nil {
		return nil, "", fmt.Errorf("locate config: %w", err)
	}
	settings, err := config.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("load config: %w", err)
	}
	return settings, path, nil
}

func newAliasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alias",
		Short: "Manage human-friendly aliases for URLs",
	}
	cmd.AddCommand(newAliasAddCmd(), newAliasRemoveCmd(), newAliasListCmd())
	return cmd
}

func newAliasAddCmd() *cobra.Command {
	var album bool

	cmd := &cobra.Command{
		Use:   "add NAME URL",
		Short: "Create or update an alias mapped to a URL",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			settings, path, err := loadSettings()
			if err != nil {
				return err
			}

			existed := settings.SetAlias(args[0], model.Alias{URL: args[1], Album: album})
			if err := settings.Save(path); err != nil {
				return err
			}

			if existed {
				fmt.Printf("updated alias '%s'\n", args[0])
			} else {
				fmt.Printf("created alias '%s'\n", args[0])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&album, "album", false, "mark the alias as an album/playlist")
	return cmd
}

func newAliasRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove NAME",
		Short: "Remove an alias",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			settings, path, err := loadSettings()
			if err != nil {
				return err
			}

			if !settings.RemoveAlias(args[0]) {
				return fmt.Errorf("alias '%s' not found", args[0])
			}
			if err := settings.Save(path); err != nil {
				return err
			}

			fmt.Printf("removed alias '%s'\n", args[0])
			return nil
		},
	}
}

func newAliasListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all aliases",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			settings, _, err := loadSettings()
			if err != nil {
				return err
			}

			if len(settings.Aliases) == 0 {
				fmt.Println("no aliases defined yet")
				return nil
			}
			for _, name := range settings.AliasNames() {
				alias := settings.Aliases[name]
				if alias.Album {
					fmt.Printf("%s -> %s (album)\n", name, alias.URL)
				} else {
					fmt.Printf("%s -> %s\n", name, alias.URL)
				}
			}
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configure default download settings",
	}
	cmd.AddCommand(newConfigSetDestCmd(), newConfigClearDestCmd(), newConfigShowCmd())
	return cmd
}

func newConfigSetDestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-dest PATH",
		Short: "Set the default download destination directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			settings, path, err := loadSettings()
			if err != nil {
				return err
			}

			dest, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			if err := ioutils.EnsureDir(dest); err != nil {
				return err
			}

			settings.DefaultDestination = dest
			if err := settings.Save(path); err != nil {
				return err
			}

			fmt.Printf("default destination set to %s\n", dest)
			return nil
		},
	}
}

func newConfigClearDestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-dest",
		Short: "Clear the default download destination",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			settings, path, err := loadSettings()
			if err != nil {
				return err
			}

			if settings.DefaultDestination == "" {
				fmt.Println("default destination was already unset")
				return nil
			}

			settings.DefaultDestination = ""
			if err := settings.Save(path); err != nil {
				return err
			}

			fmt.Println("cleared default destination")
			return nil
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			settings, _, err := loadSettings()
			if err != nil {
				return err
			}

			if settings.DefaultDestination != "" {
				fmt.Printf("default destination: %s\n", settings.DefaultDestination)
			} else {
				fmt.Println("default destination: not set")
			}

			if len(settings.Aliases) == 0 {
				fmt.Println("aliases: none")
			} else {
				fmt.Printf("aliases: %d\n", len(settings.Aliases))
			}
			return nil
		},
	}
}
