package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/handiism/flacmeta/internal/audio"
	"github.com/handiism/flacmeta/internal/collector"
	"github.com/handiism/flacmeta/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func newTestModel() Model {
	m := NewModel(config.DefaultSettings())
	m.reader = audio.TagReaderFunc(func(path string) (audio.Tags, error) {
		if filepath.Base(path) == "bad_1.flac" {
			return nil, errors.New("corrupt")
		}
		tags := audio.Tags{}
		tags.Add("title", filepath.Base(path))
		return tags, nil
	})
	return m
}

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
}

func TestModel_EnterEmptyStaysInInput(t *testing.T) {
	m, _ := update(t, newTestModel(), key("enter"))
	assert.Equal(t, StateInput, m.state)
}

func TestModel_ScanResult(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a_2.flac", "a_1.flac", "bad_1.flac", "notes.txt")

	m := newTestModel()
	m.textInput.SetValue(dir)

	m, cmd := update(t, m, key("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, StateScanning, m.state)
	assert.Equal(t, dir, m.dir)

	msg := m.scan(dir)()
	done, ok := msg.(ScanDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.Err)
	assert.Equal(t, 2, done.Records)
	assert.Equal(t, 1, done.Failures)

	m, _ = update(t, m, done)
	assert.Equal(t, StateResult, m.state)
	assert.Contains(t, m.json, `"archivo_musica": "Albums/a_1.flac"`)
	// every .flac name contains "a", so the group spans all three files
	assert.Contains(t, m.json, `"numero_de_pista": "2/3"`)
	assert.Contains(t, m.View(), "1 file(s) skipped")

	var errorLogs int
	for _, log := range m.logs {
		if log.Level == collector.LevelError {
			errorLogs++
		}
	}
	assert.Equal(t, 1, errorLogs)
}

func TestModel_ScanMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")

	m := newTestModel()
	m, _ = update(t, m, m.scan(dir)())

	assert.Equal(t, StateError, m.state)
	assert.ErrorIs(t, m.err, collector.ErrDirectoryNotFound)
	assert.Contains(t, m.View(), "Error occurred")
}

func TestModel_ScanNoFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "cover.jpg")

	m := newTestModel()
	m.dir = dir
	m, _ = update(t, m, m.scan(dir)())

	assert.Equal(t, StateInfo, m.state)
	assert.Contains(t, m.View(), "No .flac files")
}

func TestModel_CopyAndReset(t *testing.T) {
	var copied string
	m := newTestModel()
	m.copyFn = func(s string) error {
		copied = s
		return nil
	}
	m, _ = update(t, m, ScanDoneMsg{JSON: "[]", Records: 0})
	require.Equal(t, StateResult, m.state)

	m, cmd := update(t, m, key("c"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())
	assert.Equal(t, "[]", copied)
	assert.Contains(t, m.status, "Copied")

	m, _ = update(t, m, key("r"))
	assert.Equal(t, StateInput, m.state)
	assert.Empty(t, m.json)
	assert.Empty(t, m.logs)
	assert.Equal(t, "", m.textInput.Value())
}

func TestModel_CopyFailure(t *testing.T) {
	m := newTestModel()
	m.copyFn = func(string) error { return errors.New("no clipboard") }
	m, _ = update(t, m, ScanDoneMsg{JSON: "[]"})

	_, cmd := update(t, m, key("c"))
	m, _ = update(t, m, cmd())
	assert.Contains(t, m.status, "no clipboard")
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel()

	// q is typed into the input, not treated as quit
	m, _ = update(t, m, key("q"))
	assert.Equal(t, "q", m.textInput.Value())

	m, _ = update(t, m, ScanDoneMsg{JSON: "[]"})
	_, cmd := update(t, m, key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_VerboseFilter(t *testing.T) {
	events := []collector.ProgressEvent{
		{Message: "Read: a_1.flac", Level: collector.LevelVerbose},
		{Message: "Collected 1 record(s)", Level: collector.LevelSuccess},
	}

	m := newTestModel()
	m, _ = update(t, m, ScanDoneMsg{JSON: "[]", Events: events})
	assert.Len(t, m.logs, 1)

	m = newTestModel()
	m, _ = update(t, m, key("tab"))
	require.True(t, m.verbose)
	m, _ = update(t, m, ScanDoneMsg{JSON: "[]", Events: events})
	assert.Len(t, m.logs, 2)
}

func TestModel_LogsAreCapped(t *testing.T) {
	m := newTestModel()
	for i := 0; i < maxLogs+5; i++ {
		m.addLog(collector.ProgressEvent{Message: "x", Level: collector.LevelInfo})
	}
	assert.Len(t, m.logs, maxLogs)
}
