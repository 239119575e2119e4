package main

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	config := filepath.Join(t.TempDir(), "settings.json")
	code := run(append([]string{"-config", config}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_MissingDirectory(t *testing.T) {
	code, stdout, stderr := runCLI(t, filepath.Join(t.TempDir(), "missing"))

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "directory does not exist")
}

func TestRun_NoAudioFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cover.jpg"), []byte("x"), 0644))

	code, stdout, stderr := runCLI(t, "-dir", dir)

	assert.Equal(t, 2, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "no audio files found")
}

func TestRun_NoDirectoryArgument(t *testing.T) {
	code, stdout, stderr := runCLI(t)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Usage:")
}

func TestRun_UnreadableFileStillSucceeds(t *testing.T) {
	dir := t.TempDir()
	writeFLAC(t, filepath.Join(dir, "a_1.flac"), "TITLE=Intro", "YEAR=2023-05-01")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a_2.flac"), []byte("not flac"), 0644))

	code, stdout, stderr := runCLI(t, dir)

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "a_2.flac")

	// stdout holds the JSON document and nothing else
	var records []map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Albums/a_1.flac", records[0]["archivo_musica"])
	assert.Equal(t, "Intro", records[0]["titulo"])
	assert.Equal(t, "1/2", records[0]["numero_de_pista"])
	assert.Equal(t, "2023", records[0]["Año"])
}

func TestRun_OutputFile(t *testing.T) {
	dir := t.TempDir()
	writeFLAC(t, filepath.Join(dir, "a_1.flac"), "TITLE=Intro")
	out := filepath.Join(t.TempDir(), "out", "records.json")

	code, stdout, _ := runCLI(t, "-output", out, dir)

	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"titulo": "Intro"`)
}

func TestRun_InvalidFlag(t *testing.T) {
	code, stdout, _ := runCLI(t, "-nope")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
}

// writeFLAC writes a minimal FLAC stream holding the given Vorbis comments.
func writeFLAC(t *testing.T, path string, comments ...string) {
	t.Helper()

	var vc bytes.Buffer
	vendor := "flacmeta test"
	binary.Write(&vc, binary.LittleEndian, uint32(len(vendor)))
	vc.WriteString(vendor)
	binary.Write(&vc, binary.LittleEndian, uint32(len(comments)))
	for _, c := range comments {
		binary.Write(&vc, binary.LittleEndian, uint32(len(c)))
		vc.WriteString(c)
	}

	var buf bytes.Buffer
	buf.WriteString("fLaC")
	writeBlock(&buf, 0, false, make([]byte, 34)) // STREAMINFO
	writeBlock(&buf, 4, true, vc.Bytes())        // VORBIS_COMMENT

	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func writeBlock(buf *bytes.Buffer, blockType byte, last bool, data []byte) {
	header := blockType
	if last {
		header |= 0x80
	}
	n := len(data)
	buf.Write([]byte{header, byte(n >> 16), byte(n >> 8), byte(n)})
	buf.Write(data)
}
