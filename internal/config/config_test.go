package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "testcases", cfg.TestcaseRoot)
	assert.Equal(t, 5*time.Second, cfg.CaseTimeout.Std())
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bojlab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"webhook_url: https://chat.example.com/hooks/abc\n"+
			"member: mina\n"+
			"case_timeout: 2s\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://chat.example.com/hooks/abc", cfg.WebhookURL)
	assert.Equal(t, "mina", cfg.Member)
	assert.Equal(t, 2*time.Second, cfg.CaseTimeout.Std())
	assert.Equal(t, "README.md", cfg.ReadmePath, "unset keys keep defaults")
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bojlab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("member: mina\n"), 0o644))
	t.Setenv("BOJLAB_MEMBER", "woojin")
	t.Setenv("BOJLAB_CASE_TIMEOUT", "30s")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "woojin", cfg.Member)
	assert.Equal(t, 30*time.Second, cfg.CaseTimeout.Std())
}

func TestLoadRejectsNegativeTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bojlab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("case_timeout: -1s\n"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}
