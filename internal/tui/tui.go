// Package tui provides a Bubble Tea terminal user interface for bippi.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/landonrogers/bippi/internal/config"
	"github.com/landonrogers/bippi/internal/download"
)

// defaultFormat is the audio format the TUI downloads to. The CLI exposes
// a --format flag; the interactive UI keeps the common case simple.
const defaultFormat = "mp3"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#BD93F9")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8BE9FD"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#50FA7B"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F1FA8C"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#BD93F9")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateDownloading
	StateComplete
	StateError
)

type logEntry struct {
	message string
	level   download.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	manager   *download.Manager
	events    chan download.ProgressEvent
	logs      []logEntry
	err       error

	ctx    context.Context
	cancel context.CancelFunc

	tracksDone  int32
	tracksTotal int32

	// Options
	album    bool
	cover    bool
	playlist bool
	retag    bool
	verbose  bool

	width  int
	height int
}

// NewModel creates a new TUI model using the given settings.
func NewModel(settings *config.Settings) Model {
	ti := textinput.New()
	ti.Placeholder = "URL, alias, or 'artist - song'"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#BD93F9"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// eventMsg carries one progress event from the download pipeline.
	eventMsg struct {
		event download.ProgressEvent
	}

	// doneMsg is sent when the download run finishes.
	doneMsg struct {
		err error
	}

	// tickMsg drives periodic track-counter refreshes.
	tickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateDownloading {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && strings.TrimSpace(m.textInput.Value()) != "" {
				return m.startDownload()
			}

		case "tab":
			if m.state == StateInput {
				m.album = !m.album
			}

		case "ctrl+o":
			if m.state == StateInput {
				m.cover = !m.cover
			}

		case "ctrl+p":
			if m.state == StateInput {
				m.playlist = !m.playlist
			}

		case "ctrl+t":
			if m.state == StateInput {
				m.retag = !m.retag
			}

		case "ctrl+g":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "n":
			if m.state == StateComplete || m.state == StateError {
				m.reset()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case eventMsg:
		m.appendLog(msg.event)
		if m.events != nil {
			cmds = append(cmds, m.waitForEvent())
		}

	case doneMsg:
		m.finishDownload(msg.err)

	case tickMsg:
		if m.manager != nil && m.state == StateDownloading {
			m.tracksDone, m.tracksTotal = m.manager.GetProgress()
			cmds = append(cmds, m.tickProgress())
		}
	}

	// Update text input
	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// startDownload builds the manager and kicks off the run commands.
func (m Model) startDownload() (tea.Model, tea.Cmd) {
	m.state = StateDownloading
	m.logs = nil
	m.tracksDone = 0
	m.tracksTotal = 0

	// Buffered so the pipeline never blocks on a slow UI; events beyond
	// the buffer are dropped rather than stalling a download.
	events := make(chan download.ProgressEvent, 64)
	m.events = events
	m.manager = download.NewManager(m.settings, func(event download.ProgressEvent) {
		select {
		case events <- event:
		default:
		}
	})
	m.manager.SilenceTool()

	mode := download.ModeSingle
	if m.album {
		mode = download.ModeAlbum
	}
	req := download.Request{
		Target:   m.textInput.Value(),
		Mode:     mode,
		Format:   defaultFormat,
		Cover:    m.cover,
		Playlist: m.playlist,
		Retag:    m.retag,
	}

	manager := m.manager
	ctx := m.ctx
	run := func() tea.Msg {
		return doneMsg{err: manager.Run(ctx, req)}
	}

	return m, tea.Batch(run, m.waitForEvent(), m.tickProgress(), m.spinner.Tick)
}

// finishDownload drains remaining events and settles the final state.
func (m *Model) finishDownload(err error) {
	if m.events != nil {
		close(m.events)
		for event := range m.events {
			m.appendLog(event)
		}
		m.events = nil
	}
	if m.manager != nil {
		m.tracksDone, m.tracksTotal = m.manager.GetProgress()
	}

	switch {
	case m.ctx.Err() != nil:
		m.state = StateError
		m.err = fmt.Errorf("cancelled by user")
	case err != nil:
		m.state = StateError
		m.err = err
	default:
		m.state = StateComplete
	}
}

// reset returns the model to the input state for another run. Option
// toggles survive the reset.
func (m *Model) reset() {
	m.state = StateInput
	m.logs = nil
	m.err = nil
	m.manager = nil
	m.events = nil
	m.tracksDone = 0
	m.tracksTotal = 0
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.textInput.SetValue("")
	m.textInput.Focus()
}

func (m *Model) appendLog(event download.ProgressEvent) {
	if event.Level == download.LevelVerbose && !m.verbose {
		return
	}
	m.logs = append(m.logs, logEntry{message: event.Message, level: event.Level})
	// Keep only the last 10 entries
	if len(m.logs) > 10 {
		m.logs = m.logs[len(m.logs)-10:]
	}
}

// waitForEvent returns a command that delivers the next progress event.
func (m Model) waitForEvent() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return eventMsg{event: event}
	}
}

// tickProgress returns a command to refresh the track counters.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return tickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("♪ bippi"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("music from YouTube, tagged and filed"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateDownloading:
		b.WriteString(m.viewDownloading())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.helpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("What should I download?"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Album mode (tab)\n", checkbox(m.album)))
	b.WriteString(fmt.Sprintf("  %s Save cover art (ctrl+o)\n", checkbox(m.cover)))
	b.WriteString(fmt.Sprintf("  %s Write playlist file (ctrl+p)\n", checkbox(m.playlist)))
	b.WriteString(fmt.Sprintf("  %s Retag after download (ctrl+t)\n", checkbox(m.retag)))
	b.WriteString(fmt.Sprintf("  %s Verbose output (ctrl+g)\n", checkbox(m.verbose)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Saving to: %s", m.destinationLabel())))
	b.WriteString("\n")

	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "[×]"
	}
	return "[ ]"
}

func (m Model) destinationLabel() string {
	if m.settings.DefaultDestination != "" {
		return m.settings.DefaultDestination
	}
	return "current directory"
}

func (m Model) viewDownloading() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Downloading..."))
	b.WriteString("\n\n")

	// Track counters only exist for album runs resolved through the
	// metadata service; single downloads show the log stream alone.
	if m.tracksTotal > 0 {
		percent := float64(m.tracksDone) / float64(m.tracksTotal)
		b.WriteString(m.progress.ViewAs(percent))
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(fmt.Sprintf("Tracks: %d/%d", m.tracksDone, m.tracksTotal)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	summary := "Download complete"
	if m.tracksTotal > 0 {
		summary = fmt.Sprintf("Download complete\n\nTracks: %d/%d", m.tracksDone, m.tracksTotal)
	}
	return boxStyle.Render("✓ " + summary)
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Download failed:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.level {
		case download.LevelError:
			style = errorStyle
			prefix = "✗"
		case download.LevelWarning:
			style = warningStyle
			prefix = "!"
		case download.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case download.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) helpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • tab: album • ctrl+o: cover • ctrl+p: playlist • ctrl+t: retag • ctrl+g: verbose • esc: quit"
	case StateDownloading:
		return "esc: cancel"
	case StateComplete, StateError:
		return "n: new download • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run() error {
	path, err := config.FilePath()
	if err != nil {
		return err
	}
	settings, err := config.Load(path)
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
