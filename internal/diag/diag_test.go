package diag

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_WritesTextLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "launchtrack.log")

	log, err := Open(path, "debug")
	require.NoError(t, err)
	assert.Equal(t, path, log.Path())
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("collection", "rockets").Warn("fetch failed, treating as empty")
	require.NoError(t, log.Close())
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "level=warning")
	assert.Contains(t, string(data), `msg="fetch failed, treating as empty"`)
	assert.Contains(t, string(data), "collection=rockets")
}

func TestOpen_AppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launchtrack.log")
	require.NoError(t, os.WriteFile(path, []byte("earlier line\n"), 0o644))

	log, err := Open(path, "info")
	require.NoError(t, err)
	log.Info("second")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "earlier line\n")
	assert.Contains(t, string(data), `msg=second`)
}

func TestOpen_UnknownLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "launchtrack.log")

	log, err := Open(path, "chatty")
	require.NoError(t, err)
	defer log.Close()

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestOpenOrDiscard_ReportsAndDiscards(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	var notice bytes.Buffer
	log := OpenOrDiscard(filepath.Join(blocker, "launchtrack.log"), "info", &notice)

	assert.Empty(t, log.Path())
	assert.Contains(t, notice.String(), "logging disabled")
	assert.NoError(t, log.Close())
	log.Info("dropped")
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, lvl)

	lvl, err = ParseLevel(" warn ")
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, lvl)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
