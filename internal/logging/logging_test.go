package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateLogs_RemovesOldest(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	for i := 0; i < 5; i++ {
		path := filepath.Join(dir, fmt.Sprintf("%d.log", i))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
		modTime := now.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, modTime, modTime))
	}

	require.NoError(t, rotateLogs(dir, 3))

	// Room is made for the log file about to be created
	for i := 0; i < 3; i++ {
		assert.NoFileExists(t, filepath.Join(dir, fmt.Sprintf("%d.log", i)))
	}
	assert.FileExists(t, filepath.Join(dir, "3.log"))
	assert.FileExists(t, filepath.Join(dir, "4.log"))
}

func TestRotateLogs_UnderLimitKeepsAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.log"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	require.NoError(t, rotateLogs(dir, 10))

	assert.FileExists(t, filepath.Join(dir, "a.log"))
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestInitialize_DebugFile(t *testing.T) {
	t.Setenv("GITDU_DEBUG", "")
	t.Setenv("GITDU_DEBUG_FILE", "")
	previous := Logger
	t.Cleanup(func() { Logger = previous })

	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	got, err := Initialize(false, path, DefaultMaxLogFiles)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	Logger.Debug("walk started", "commits", 3)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"walk started"`)
}

func TestInitialize_NoDebugUsesConsoleOnly(t *testing.T) {
	t.Setenv("GITDU_DEBUG", "")
	t.Setenv("GITDU_DEBUG_FILE", "")
	previous := Logger
	t.Cleanup(func() { Logger = previous })

	got, err := Initialize(false, "", DefaultMaxLogFiles)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.IsType(t, &ConsoleHandler{}, Logger.Handler())
}
