package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureConsole(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Console
	Console = &buf
	t.Cleanup(func() { Console = prev })
	return &buf
}

func TestLevelForVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{-1, zerolog.WarnLevel},
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelForVerbosity(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestSetupLogger(t *testing.T) {
	buf := captureConsole(t)
	dir := t.TempDir()
	t.Setenv(EnvLogFile, "")
	t.Setenv("XDG_STATE_HOME", dir)

	SetupLogger(1)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	logger := GetLogger("generate")
	logger.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")

	data, err := os.ReadFile(filepath.Join(dir, "itergen", "itergen.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"generate"`)
}

func TestSetupLoggerFileOff(t *testing.T) {
	captureConsole(t)
	dir := t.TempDir()
	t.Setenv(EnvLogFile, "off")
	t.Setenv("XDG_STATE_HOME", dir)

	SetupLogger(0)

	_, err := os.Stat(filepath.Join(dir, "itergen"))
	assert.True(t, os.IsNotExist(err))
}

func TestSetupLoggerBadFile(t *testing.T) {
	buf := captureConsole(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	t.Setenv(EnvLogFile, filepath.Join(blocker, "itergen.log"))

	SetupLogger(0)
	assert.Contains(t, buf.String(), "Failed to create log file")
}

func TestLogFilePath(t *testing.T) {
	t.Setenv(EnvLogFile, "")
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	got := filepath.ToSlash(LogFilePath())
	assert.True(t, strings.HasSuffix(got, "/custom/state/itergen/itergen.log"), got)

	t.Setenv(EnvLogFile, "/tmp/x.log")
	assert.Equal(t, "/tmp/x.log", LogFilePath())

	t.Setenv(EnvLogFile, "OFF")
	assert.Equal(t, "", LogFilePath())
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf).Level(zerolog.DebugLevel)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := GetLogger("dispatcher")
	logger.Info().Msg("test message")

	assert.Contains(t, buf.String(), `"component":"dispatcher"`)
	assert.Contains(t, buf.String(), "test message")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := LogOperationStart(logger, "generate")
	done()

	output := buf.String()
	assert.Contains(t, output, "Operation started")
	assert.Contains(t, output, "Operation completed")
	assert.Contains(t, output, "duration")
	assert.Equal(t, 2, strings.Count(output, `"operation":"generate"`))
}
