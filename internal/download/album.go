package download

import (
	"context"
	"path/filepath"
	"sync/atomic"

	"github.com/landonrogers/bippi/internal/audio"
	ioutils "github.com/landonrogers/bippi/internal/io"
	"github.com/landonrogers/bippi/internal/model"
)

// coverMaxSize bounds the saved cover art's dimensions in pixels.
const coverMaxSize = 1000

// downloadAlbumRelease is the metadata tier of album resolution.
//
// The boolean reports whether the tier handled the request: false with
// a nil error means no release matched and the caller falls through to
// the next tier. A non-nil error is a hard failure that must not
// trigger fallback.
//
// Tracks download strictly one after another, each through its own
// search and numbered output path, and the first failed track aborts
// the rest. Files that already completed stay on disk.
func (m *Manager) downloadAlbumRelease(ctx context.Context, query, dest string, req Request) (bool, error) {
	m.progressf(LevelInfo, "saving audio to %s as %s", dest, req.Format)
	m.progressf(LevelInfo, "searching MusicBrainz for album '%s'", query)

	album, err := m.metadata.FindAlbum(ctx, query)
	if err != nil {
		return false, err
	}
	if album == nil {
		return false, nil
	}

	total := album.TotalTracks()
	plural := "s"
	if total == 1 {
		plural = ""
	}
	m.progressf(LevelInfo, "found release: %s - %s (%d track%s)", album.Artist, album.Title, total, plural)

	atomic.StoreInt32(&m.tracksTotal, int32(total))
	atomic.StoreInt32(&m.tracksDone, 0)

	var cover []byte
	if req.Cover && !req.DryRun {
		cover = m.saveCoverArt(ctx, album, dest)
	}

	retag := req.Retag
	if retag && req.Format != "mp3" {
		m.progressf(LevelWarning, "retag supports mp3 only; skipping for format %s", req.Format)
		retag = false
	}

	for _, track := range album.Tracks {
		m.progressf(LevelInfo, "[%d/%d] searching YouTube for '%s - %s'",
			track.OverallIndex, total, album.Artist, track.Title)

		job := trackJob(album, track, dest, req.Format)
		if req.DryRun {
			m.reportDryRun(job)
			continue
		}

		if err := m.runner.Run(ctx, job); err != nil {
			return true, err
		}
		atomic.AddInt32(&m.tracksDone, 1)

		if retag {
			m.retagTrack(album, track, dest, req.Format, cover)
		}
	}

	if req.DryRun {
		return true, nil
	}

	if req.Playlist {
		m.writePlaylist(album, dest, req.Format)
	}

	m.progressf(LevelSuccess, "downloaded album: %s - %s", album.Artist, album.Title)
	return true, nil
}

// saveCoverArt fetches, scales, and stores the release's front cover.
// Failures are reported as warnings and never abort the album; the
// returned bytes (nil on any failure) feed the retag step's picture
// frame.
func (m *Manager) saveCoverArt(ctx context.Context, album *model.Album, dest string) []byte {
	art, err := m.metadata.CoverArt(ctx, album.ID)
	if err != nil {
		m.progressf(LevelWarning, "could not fetch cover art: %v", err)
		return nil
	}
	if art == nil {
		m.progressf(LevelVerbose, "no cover art available for this release")
		return nil
	}

	scaled, err := m.images.ResizeImage(art, coverMaxSize, coverMaxSize)
	if err != nil {
		m.progressf(LevelWarning, "could not process cover art: %v", err)
		return nil
	}

	path := filepath.Join(dest, "cover.jpg")
	if err := ioutils.WriteFile(path, scaled); err != nil {
		m.progressf(LevelWarning, "could not save cover art: %v", err)
		return scaled
	}

	m.progressf(LevelVerbose, "saved cover art to %s", path)
	return scaled
}

// retagTrack rewrites the finished file's ID3 frames with release
// metadata. Failures are warnings: the file is already on disk with the
// downloader's own best-effort tags.
func (m *Manager) retagTrack(album *model.Album, track model.Track, dest, format string, cover []byte) {
	path := track.FilePath(dest, album.TotalDiscs, format)
	if err := m.tagger.Retag(path, album, track, cover); err != nil {
		m.progressf(LevelWarning, "could not retag %s: %v", filepath.Base(path), err)
		return
	}
	m.progressf(LevelVerbose, "retagged %s", filepath.Base(path))
}

// writePlaylist stores an extended M3U for the completed album next to
// its tracks.
func (m *Manager) writePlaylist(album *model.Album, dest, format string) {
	name := audio.M3UFileName(album)
	content := audio.M3UPlaylist(album, format)
	if err := ioutils.WriteFile(filepath.Join(dest, name), []byte(content)); err != nil {
		m.progressf(LevelWarning, "could not write playlist: %v", err)
		return
	}
	m.progressf(LevelSuccess, "created playlist %s", name)
}
