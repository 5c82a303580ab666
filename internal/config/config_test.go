package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ".", cfg.Repo.Path)
	assert.Equal(t, "git", cfg.Repo.GitPath)
	assert.Equal(t, time.Duration(0), cfg.Repo.CommandTimeout)
	assert.Equal(t, 10, cfg.Analysis.HistoryLimit)
	assert.Equal(t, 5, cfg.Analysis.RelatedLimit)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestDefaultIsValid(t *testing.T) {
	result := Default().Validate()

	assert.False(t, result.HasErrors())
	assert.Empty(t, result.Warnings)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `repo:
  path: /srv/repos/app
  git_path: /usr/bin/git
  command_timeout: 5s
analysis:
  history_limit: 25
  related_limit: 8
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/repos/app", cfg.Repo.Path)
	assert.Equal(t, "/usr/bin/git", cfg.Repo.GitPath)
	assert.Equal(t, 5*time.Second, cfg.Repo.CommandTimeout)
	assert.Equal(t, 25, cfg.Analysis.HistoryLimit)
	assert.Equal(t, 8, cfg.Analysis.RelatedLimit)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `analysis:
  history_limit: -1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history_limit")
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("analysis:\n  history_limit: 25\n"), 0644))

	t.Setenv("REPOHIST_HISTORY_LIMIT", "40")
	t.Setenv("REPOHIST_GIT_PATH", "/opt/git/bin/git")
	t.Setenv("REPOHIST_COMMAND_TIMEOUT_MS", "1500")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Analysis.HistoryLimit, "env var should win over the file")
	assert.Equal(t, "/opt/git/bin/git", cfg.Repo.GitPath)
	assert.Equal(t, 1500*time.Millisecond, cfg.Repo.CommandTimeout)
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Repo.Path = "/srv/repos/app"
	cfg.Analysis.RelatedLimit = 12

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/repos/app", loaded.Repo.Path)
	assert.Equal(t, 12, loaded.Analysis.RelatedLimit)
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Repo.Path = ""
	cfg.Repo.CommandTimeout = -time.Second
	cfg.Analysis.HistoryLimit = 0

	result := cfg.Validate()

	require.True(t, result.HasErrors())
	assert.Len(t, result.Errors, 3)
	assert.Contains(t, result.Error(), "repo.path")
	assert.Contains(t, result.Error(), "command_timeout")
	assert.Contains(t, result.Error(), "history_limit")
}

func TestValidateWarnsOnUnknownLogging(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "chatty"
	cfg.Logging.Format = "xml"

	result := cfg.Validate()

	assert.False(t, result.HasErrors(), "logging settings should never refuse to start")
	assert.Len(t, result.Warnings, 2)
}
