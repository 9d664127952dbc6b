package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestFormatLog(t *testing.T) {
	ts := time.Date(2026, 8, 23, 9, 32, 51, 0, time.Local)
	got := formatLog(ts, slog.LevelWarn, "store", "write failed")
	assert.Equal(t, "[2026-08-23 09:32:51] [WARN] [store] write failed\n", got)
}

func TestLogger_WritesToFile(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelInfo)
	defer logger.Close()

	logger.Info("task", "created")
	logger.Error("store", "boom")

	content, err := os.ReadFile(filepath.Join(dir, "logs", "focusdeck.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO] [task] created")
	assert.Contains(t, string(content), "[ERROR] [store] boom")
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelWarn)
	defer logger.Close()

	logger.Debug("task", "ignored")
	logger.Info("task", "ignored too")
	logger.Warn("task", "kept")

	content, err := os.ReadFile(filepath.Join(dir, "logs", "focusdeck.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "ignored")
	assert.Contains(t, string(content), "kept")
}

func TestLogger_DisabledWithoutDataDir(t *testing.T) {
	logger := New("", slog.LevelDebug)
	logger.Info("task", "dropped")
	assert.NoError(t, logger.Close())
}
