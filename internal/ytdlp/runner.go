package ytdlp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
)

// defaultBinary is the downloader executable looked up on PATH.
const defaultBinary = "yt-dlp"

// ErrToolMissing indicates the downloader binary is not installed. The
// message names the remedy since this is the first thing a new user
// runs into.
var ErrToolMissing = errors.New("yt-dlp was not found in PATH. Install it from https://github.com/yt-dlp/yt-dlp and try again")

// ExitError reports a downloader invocation that finished with a
// non-zero status.
type ExitError struct {
	// Code is the process exit code, or -1 when the process was
	// terminated by a signal.
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("yt-dlp exited with status %d", e.Code)
}

// Runner executes downloader invocations as blocking child processes.
//
// NewRunner wires the tool's output through to the parent's streams so
// download progress stays visible; tests point BinaryPath at a fake
// script, and the interactive UI replaces the writers to keep
// subprocess output off its screen.
type Runner struct {
	// BinaryPath is the downloader executable. Defaults to "yt-dlp".
	BinaryPath string

	// Stdout and Stderr receive the tool's own output.
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner creates a Runner for the yt-dlp binary on PATH.
func NewRunner() *Runner {
	return &Runner{
		BinaryPath: defaultBinary,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
	}
}

func (r *Runner) binary() string {
	if r.BinaryPath == "" {
		return defaultBinary
	}
	return r.BinaryPath
}

// Run executes one download job and blocks until the process exits.
//
// A missing binary surfaces as ErrToolMissing, a non-zero exit as an
// *ExitError carrying the exact code. The tool handles its own retries
// and network failures; Run adds none.
func (r *Runner) Run(ctx context.Context, job Job) error {
	cmd := exec.CommandContext(ctx, r.binary(), job.Args()...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	return wrapRunError(cmd.Run())
}

// wrapRunError maps exec failures onto the package's error types. A
// binary missing from PATH and a missing explicit path both mean the
// tool is not installed.
func wrapRunError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return ErrToolMissing
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Code: exitErr.ExitCode()}
	}
	return err
}
