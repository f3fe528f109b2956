package download

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/landonrogers/bippi/internal/audio"
	"github.com/landonrogers/bippi/internal/config"
	ioutils "github.com/landonrogers/bippi/internal/io"
	"github.com/landonrogers/bippi/internal/musicbrainz"
	"github.com/landonrogers/bippi/internal/ytdlp"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a pipeline progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Mode selects between single-track and album semantics.
type Mode int

const (
	// ModeSingle downloads one track.
	ModeSingle Mode = iota

	// ModeAlbum downloads a whole release or playlist.
	ModeAlbum
)

// Request describes one download run.
type Request struct {
	// Target is the user-supplied string: a URL, an alias name, or a
	// free-text query.
	Target string

	// Mode selects single or album semantics. An alias with its album
	// flag set forces playlist download even in ModeSingle.
	Mode Mode

	// Dest overrides the configured destination directory when set.
	Dest string

	// Format is the audio format passed to the downloader.
	Format string

	// DryRun resolves the target and reports each invocation without
	// spawning the downloader.
	DryRun bool

	// Cover saves release cover art next to the tracks. Album mode,
	// metadata-resolved releases only.
	Cover bool

	// Playlist writes an .m3u once every track has downloaded. Album
	// mode, metadata-resolved releases only.
	Playlist bool

	// Retag rewrites ID3 frames from release metadata after each track
	// finishes. Album mode, metadata-resolved releases, mp3 only.
	Retag bool
}

// Manager coordinates target resolution and downloads.
//
// All work is strictly sequential: one resolution tier at a time, one
// child process at a time. Progress is reported through the onProgress
// callback; front ends additionally poll GetProgress for album track
// counters.
type Manager struct {
	settings *config.Settings
	runner   *ytdlp.Runner
	metadata *musicbrainz.Client
	tagger   *audio.Tagger
	images   *ioutils.ImageService

	tracksDone  int32
	tracksTotal int32

	onProgress func(ProgressEvent)
}

// NewManager creates a new download Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings:   settings,
		runner:     ytdlp.NewRunner(),
		metadata:   musicbrainz.NewClient(),
		tagger:     audio.NewTagger(),
		images:     ioutils.NewImageService(),
		onProgress: onProgress,
	}
}

// SilenceTool redirects the downloader's own output away from the
// terminal, for front ends that render their own progress.
func (m *Manager) SilenceTool() {
	m.runner.Stdout = io.Discard
	m.runner.Stderr = io.Discard
}

// GetProgress returns the album track counters: tracks completed and
// total tracks. Both stay zero until a metadata-resolved album starts.
func (m *Manager) GetProgress() (done, total int32) {
	return atomic.LoadInt32(&m.tracksDone), atomic.LoadInt32(&m.tracksTotal)
}

// Run resolves the request's target and performs the download(s).
//
// Resolution order for album mode without an alias or URL: metadata
// service first, then playlist discovery, then a single-result search.
// "Nothing found" moves to the next tier; hard errors abort the run
// without falling back.
func (m *Manager) Run(ctx context.Context, req Request) error {
	query := strings.TrimSpace(req.Target)

	dest, err := m.settings.ResolveDestination(req.Dest)
	if err != nil {
		return err
	}
	if err := ioutils.EnsureDir(dest); err != nil {
		return err
	}

	alias, hasAlias := m.settings.Aliases[query]
	albumMode := req.Mode == ModeAlbum

	if albumMode && !hasAlias && !ytdlp.LooksLikeURL(query) {
		handled, err := m.downloadAlbumRelease(ctx, query, dest, req)
		if err != nil {
			return err
		}
		if handled {
			return nil
		}
		m.progressf(LevelInfo, "MusicBrainz did not find a matching release; falling back to YouTube search")
	}

	var resolved string
	aliasAlbum := false
	switch {
	case hasAlias:
		m.progressf(LevelInfo, "using alias '%s' -> %s", query, alias.URL)
		resolved = alias.URL
		aliasAlbum = alias.Album
	case ytdlp.LooksLikeURL(query):
		resolved = query
	case req.Mode == ModeSingle:
		m.progressf(LevelInfo, "searching YouTube for '%s' (first match)", query)
		resolved = ytdlp.SingleSearch(query)
	default:
		resolved, err = m.resolveAlbumQuery(ctx, query)
		if err != nil {
			return err
		}
	}

	downloadPlaylist := aliasAlbum || albumMode

	job := ytdlp.Job{
		Target:         resolved,
		OutputTemplate: filepath.Join(dest, "%(title)s.%(ext)s"),
		Format:         req.Format,
		Playlist:       downloadPlaylist,
		ParseAlbumMeta: downloadPlaylist && ytdlp.LooksLikePlaylist(resolved),
	}

	m.progressf(LevelInfo, "saving audio to %s as %s", dest, req.Format)
	if req.DryRun {
		m.reportDryRun(job)
		return nil
	}

	if err := m.runner.Run(ctx, job); err != nil {
		return err
	}
	m.progressf(LevelSuccess, "download complete")
	return nil
}

// resolveAlbumQuery is the discovery tier: find an album playlist for
// the query, or degrade to a best-effort single-result search.
func (m *Manager) resolveAlbumQuery(ctx context.Context, query string) (string, error) {
	m.progressf(LevelInfo, "searching YouTube for album '%s'", query)

	url, err := m.runner.FindAlbumPlaylist(ctx, query)
	if err != nil {
		return "", err
	}
	if url != "" {
		m.progressf(LevelInfo, "found playlist match: %s", url)
		return url, nil
	}

	m.progressf(LevelInfo, "no playlist found for '%s'; falling back to first search result", query)
	return ytdlp.SingleSearch(query), nil
}

func (m *Manager) reportDryRun(job ytdlp.Job) {
	m.progressf(LevelInfo, "would run: yt-dlp %s", strings.Join(job.Args(), " "))
}

func (m *Manager) progressf(level ProgressLevel, format string, args ...any) {
	m.progress(ProgressEvent{Message: fmt.Sprintf(format, args...), Level: level})
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
