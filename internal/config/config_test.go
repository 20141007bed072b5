package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every LOGTIME_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CONFIG", "DB_PATH", "TIMEZONE", "SHELL_OUT", "SHELL_DIALECT", "LOG_USE_CASES"} {
		t.Setenv(EnvPrefix+"_"+key, "")
		os.Unsetenv(EnvPrefix + "_" + key)
	}
}

func writeConfig(t *testing.T, home, body string) string {
	t.Helper()
	path := DefaultFile(home)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()

	cfg, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".logtime", "logtime.db"), cfg.DBPath)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, "posix", cfg.ShellDialect)
	assert.Empty(t, cfg.ShellOut)
	assert.False(t, cfg.LogUseCases)
	assert.Empty(t, cfg.File)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	path := writeConfig(t, home, "timezone: Europe/Berlin\ndb_path: ~/data/time.db\nlog_use_cases: true\n")

	cfg, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", cfg.Timezone)
	assert.Equal(t, filepath.Join(home, "data", "time.db"), cfg.DBPath)
	assert.True(t, cfg.LogUseCases)
	assert.Equal(t, path, cfg.File)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	writeConfig(t, home, "timezone: Europe/Berlin\nshell_dialect: fish\n")

	t.Setenv("LOGTIME_TIMEZONE", "America/New_York")
	t.Setenv("LOGTIME_SHELL_OUT", "/tmp/out.sh")

	cfg, err := Load(home)
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", cfg.Timezone)
	assert.Equal(t, "fish", cfg.ShellDialect)
	assert.Equal(t, "/tmp/out.sh", cfg.ShellOut)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOGTIME_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load(t.TempDir())
	require.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	writeConfig(t, home, "timezone: [unterminated\n")

	_, err := Load(home)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}
