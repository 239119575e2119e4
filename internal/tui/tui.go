// Package tui provides a Bubble Tea terminal user interface for flacmeta.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/flacmeta/internal/audio"
	"github.com/handiism/flacmeta/internal/collector"
	"github.com/handiism/flacmeta/internal/config"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)
)

// maxLogs is the number of log lines kept for the log pane.
const maxLogs = 10

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateScanning
	StateResult
	StateInfo
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   collector.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	viewport  viewport.Model
	settings  *config.Settings
	reader    audio.TagReader
	logs      []LogEntry
	err       error

	// Scan result
	dir      string
	records  int
	failures int
	json     string
	status   string

	// Options
	verbose bool

	copyFn func(string) error

	width  int
	height int
}

// NewModel creates a new TUI model.
//
// A nil settings value means config.DefaultSettings.
func NewModel(settings *config.Settings) Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	ti := textinput.New()
	ti.Placeholder = "/path/to/music"
	ti.Focus()
	ti.CharLimit = 1000
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))

	vp := viewport.New(80, 15)

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		viewport:  vp,
		settings:  settings,
		logs:      make([]LogEntry, 0),
		copyFn:    clipboard.WriteAll,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ScanDoneMsg is sent when a directory scan completes.
	ScanDoneMsg struct {
		Dir      string
		JSON     string
		Records  int
		Failures int
		Events   []collector.ProgressEvent
		Err      error
	}

	// CopyDoneMsg is sent after the JSON was copied to the clipboard.
	CopyDoneMsg struct {
		Err error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = max(msg.Width-4, 20)
		m.viewport.Height = max(msg.Height-14, 5)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}

		case "enter":
			if m.state == StateInput {
				dir := strings.TrimSpace(m.textInput.Value())
				if dir != "" {
					m.state = StateScanning
					m.dir = dir
					return m, tea.Batch(m.scan(dir), m.spinner.Tick)
				}
			}

		case "tab":
			if m.state == StateInput {
				m.verbose = !m.verbose
				return m, nil
			}

		case "q":
			if m.state != StateInput && m.state != StateScanning {
				return m, tea.Quit
			}

		case "c":
			if m.state == StateResult {
				return m, m.copy(m.json)
			}

		case "r":
			if m.state != StateInput && m.state != StateScanning {
				m = m.reset()
				return m, textinput.Blink
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ScanDoneMsg:
		for _, event := range msg.Events {
			m.addLog(event)
		}
		switch {
		case errors.Is(msg.Err, collector.ErrNoAudioFiles):
			m.state = StateInfo
			m.err = msg.Err
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateResult
			m.json = msg.JSON
			m.records = msg.Records
			m.failures = msg.Failures
			m.viewport.SetContent(msg.JSON)
			m.viewport.GotoTop()
		}

	case CopyDoneMsg:
		if msg.Err != nil {
			m.status = errorStyle.Render("Copy failed: " + msg.Err.Error())
		} else {
			m.status = successStyle.Render("Copied JSON to clipboard")
		}
	}

	switch m.state {
	case StateInput:
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	case StateResult:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) addLog(event collector.ProgressEvent) {
	if event.Level == collector.LevelVerbose && !m.verbose {
		return
	}
	m.logs = append(m.logs, LogEntry{Message: event.Message, Level: event.Level})
	if len(m.logs) > maxLogs {
		m.logs = m.logs[len(m.logs)-maxLogs:]
	}
}

func (m Model) reset() Model {
	m.state = StateInput
	m.logs = nil
	m.err = nil
	m.dir = ""
	m.json = ""
	m.records = 0
	m.failures = 0
	m.status = ""
	m.viewport.SetContent("")
	m.textInput.SetValue("")
	m.textInput.Focus()
	return m
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("♪ flacmeta"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Collect audio metadata as JSON"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateScanning:
		b.WriteString(m.viewScanning())
	case StateResult:
		b.WriteString(m.viewResult())
	case StateInfo:
		b.WriteString(m.viewInfo())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter music directory:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[×]"
	}

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Verbose output (tab)\n", verboseCheck))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Extension: %s • Asset root: %s", m.settings.AudioExtension, m.settings.AssetRoot)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewScanning() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("Reading %s...", m.dir)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewResult() string {
	var b strings.Builder

	summary := fmt.Sprintf("%d record(s)", m.records)
	if m.failures > 0 {
		b.WriteString(warningStyle.Render(fmt.Sprintf("%s, %d file(s) skipped", summary, m.failures)))
	} else {
		b.WriteString(successStyle.Render(summary))
	}
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100)))
	if m.status != "" {
		b.WriteString("  ")
		b.WriteString(m.status)
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewInfo() string {
	var b strings.Builder

	b.WriteString(infoStyle.Render(fmt.Sprintf("No %s files in %s", m.settings.AudioExtension, m.dir)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("✗ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case collector.LevelError:
			style = errorStyle
			prefix = "✗"
		case collector.LevelWarning:
			style = warningStyle
			prefix = "!"
		case collector.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case collector.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateInput:
		return "enter: scan • tab: verbose • esc: quit"
	case StateScanning:
		return "ctrl+c: quit"
	case StateResult:
		return "↑/↓: scroll • c: copy • r: new scan • q: quit"
	case StateInfo, StateError:
		return "r: new scan • q: quit"
	}
	return ""
}

// scan collects the records of dir in the background.
func (m Model) scan(dir string) tea.Cmd {
	settings := m.settings
	reader := m.reader
	return func() tea.Msg {
		var events []collector.ProgressEvent
		c := collector.NewCollector(settings, reader, func(event collector.ProgressEvent) {
			events = append(events, event)
		})

		result, err := c.Collect(dir)
		if err != nil {
			return ScanDoneMsg{Dir: dir, Events: events, Err: err}
		}

		data, err := result.JSON()
		if err != nil {
			return ScanDoneMsg{Dir: dir, Events: events, Err: err}
		}

		return ScanDoneMsg{
			Dir:      dir,
			JSON:     string(data),
			Records:  len(result.Records),
			Failures: len(result.Failures),
			Events:   events,
		}
	}
}

// copy writes text to the clipboard.
func (m Model) copy(text string) tea.Cmd {
	copyFn := m.copyFn
	return func() tea.Msg {
		return CopyDoneMsg{Err: copyFn(text)}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
