package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_CreatesLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	require.NoError(t, Init(Config{Dir: dir, Debug: true}))
	Info("server starting", "addr", "127.0.0.1:12000")

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "server starting")
}

func TestSetOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)

	Warn("member deleted", "name", "Alice")

	assert.Contains(t, buf.String(), "member deleted")
	assert.Contains(t, buf.String(), "Alice")
}

func TestNilLoggerIsSafe(t *testing.T) {
	Logger = nil
	assert.NotPanics(t, func() {
		Debug("x")
		Info("x")
		Warn("x")
		Error("x")
	})
}
