package log

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytom/folio/config"
)

func resetStandardLogger() {
	logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.InfoLevel)
}

func TestInitWithoutLogFile(t *testing.T) {
	defer resetStandardLogger()

	cfg := config.DefaultConfig()
	cfg.LogLevel = "debug"
	require.NoError(t, Init(cfg))
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.Empty(t, logrus.StandardLogger().Hooks)
}

func TestInitBadLevel(t *testing.T) {
	defer resetStandardLogger()

	cfg := config.DefaultConfig()
	cfg.LogLevel = "loud"
	assert.Error(t, Init(cfg))
}

func TestFileHook(t *testing.T) {
	defer resetStandardLogger()

	tmpDir, err := ioutil.TempDir("", "log-test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	cfg := config.DefaultConfig().SetRoot(tmpDir)
	cfg.LogFile = "log"

	// stale lock left by an earlier run
	logDir := filepath.Join(tmpDir, "log")
	require.NoError(t, os.MkdirAll(logDir, 0700))
	lock := filepath.Join(logDir, "compiler.20200101_lock")
	require.NoError(t, ioutil.WriteFile(lock, nil, 0600))

	require.NoError(t, Init(cfg))
	_, err = os.Stat(lock)
	assert.True(t, os.IsNotExist(err), "lock file survived")

	logrus.WithFields(logrus.Fields{"module": "compiler"}).Info("compiled program")
	logrus.Info("no module")

	for _, pattern := range []string{"compiler.*", "general.*"} {
		matches, err := filepath.Glob(filepath.Join(logDir, pattern))
		require.NoError(t, err)
		require.NotEmpty(t, matches, pattern)
	}

	matches, _ := filepath.Glob(filepath.Join(logDir, "compiler.2*"))
	var found bool
	for _, m := range matches {
		data, err := ioutil.ReadFile(m)
		if err == nil && len(data) > 0 {
			assert.Contains(t, string(data), "compiled program")
			found = true
		}
	}
	assert.True(t, found, "no compiler log written")
}
