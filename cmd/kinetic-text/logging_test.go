package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	t.Chdir(t.TempDir())

	log, cleanup, err := setupLogging(false)
	require.NoError(t, err)
	defer cleanup()

	assert.False(t, log.Core().Enabled(zapcore.DebugLevel), "debug level must be disabled")
	log.Info("discarded")

	_, err = os.Stat(logDir)
	assert.True(t, os.IsNotExist(err), "no log directory without debug")
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	t.Chdir(t.TempDir())

	log, cleanup, err := setupLogging(true)
	require.NoError(t, err)

	log.Debug("test log message")
	cleanup()

	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "test log message")
	assert.Contains(t, string(data), `"level":"debug"`)
}

func TestSetupLogging_UnwritableDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	// A file where the directory should be
	require.NoError(t, os.WriteFile(filepath.Join(dir, logDir), nil, 0o644))

	log, cleanup, err := setupLogging(true)
	assert.Error(t, err)
	assert.NotNil(t, log)
	cleanup()
}
