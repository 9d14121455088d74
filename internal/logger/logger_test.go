package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"header": "h1", "source": "res:sunset"})
	log.Info("gradient applied")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "gradient applied", entry["message"])
	require.Equal(t, "h1", entry["header"])
	require.Equal(t, "res:sunset", entry["source"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerWarnErrIncludesError(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.WarnErr(errors.New("decode failed"), "gradient skipped")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "warn", entry["level"])
	require.Equal(t, "decode failed", entry["error"])
}

func TestLoggerInvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.Info("x")
		log.Debug("x")
		log.Warn("x")
		log.Error(errors.New("boom"), "x")
		log.WarnErr(errors.New("boom"), "x")
		require.Nil(t, log.WithFields(map[string]any{"a": 1}))
	})
}

func TestOpenFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "parallax.log")
	log, closer, err := OpenFile(path, "debug")
	require.NoError(t, err)

	log.Debug("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "hello")
}

func TestIsTerminalBuffer(t *testing.T) {
	t.Parallel()

	require.False(t, IsTerminal(&bytes.Buffer{}))
}
