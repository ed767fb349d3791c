package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := Default()
	cfg.API.Token = "t.abcdef123456"
	return cfg
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "30s", cfg.API.Timeout)
	assert.False(t, cfg.API.Sandbox)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "tinvest-journal.db", cfg.Journal.DBPath)
	assert.Error(t, cfg.Validate(), "default has no token")

	d, err := cfg.API.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, d)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{name: "valid config", mutate: func(*Config) {}},
		{name: "missing token", mutate: func(c *Config) { c.API.Token = "  " }, errMsg: "api.token is required"},
		{name: "bad timeout", mutate: func(c *Config) { c.API.Timeout = "soon" }, errMsg: "api.timeout"},
		{name: "negative timeout", mutate: func(c *Config) { c.API.Timeout = "-1s" }, errMsg: "must not be negative"},
		{name: "empty timeout", mutate: func(c *Config) { c.API.Timeout = "" }},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "trace" }, errMsg: "log.level"},
		{name: "bad format", mutate: func(c *Config) { c.Log.Format = "xml" }, errMsg: "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	for _, ext := range []string{".json", ".yaml", ".yml"} {
		t.Run(ext, func(t *testing.T) {
			cfg := validConfig()
			cfg.API.Sandbox = true
			cfg.Account = "2000123456"
			path := filepath.Join(tmpDir, "config"+ext)

			require.NoError(t, cfg.SaveToFile(path))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

			loaded, err := LoadFromFile(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, loaded)
		})
	}
}

func TestLoadFromFile_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	_, err := LoadFromFile(filepath.Join(tmpDir, "missing.yaml"))
	assert.ErrorContains(t, err, "read config file")

	bad := filepath.Join(tmpDir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("api: [unterminated"), 0o600))
	_, err = LoadFromFile(bad)
	assert.ErrorContains(t, err, "parse config")

	noToken := filepath.Join(tmpDir, "notoken.yaml")
	require.NoError(t, os.WriteFile(noToken, []byte("log:\n  level: debug\n"), 0o600))
	_, err = LoadFromFile(noToken)
	assert.ErrorContains(t, err, "invalid config")
}

func TestLoad_Precedence(t *testing.T) {
	tmpDir := t.TempDir()

	file := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
api:
  token: from-file
  timeout: 10s
account: file-account
log:
  level: warn
`), 0o600))

	dotenv := filepath.Join(tmpDir, ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte(
		"TINVEST_TOKEN=from-dotenv\nTINVEST_ACCOUNT=dotenv-account\nTINVEST_SANDBOX=true\n"), 0o600))

	t.Setenv("TINVEST_ACCOUNT", "env-account")
	t.Setenv("TINVEST_LOG_FORMAT", "json")

	cfg, err := Load(file, dotenv, filepath.Join(tmpDir, "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv", cfg.API.Token)
	assert.Equal(t, "10s", cfg.API.Timeout)
	assert.True(t, cfg.API.Sandbox)
	assert.Equal(t, "env-account", cfg.Account)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "tinvest-journal.db", cfg.Journal.DBPath)
}

func TestLoad_NoFile(t *testing.T) {
	t.Setenv("TINVEST_TOKEN", "env-token")
	t.Setenv("TINVEST_JOURNAL_DB", "/tmp/j.db")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.API.Token)
	assert.Equal(t, "/tmp/j.db", cfg.Journal.DBPath)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_BadEnvValue(t *testing.T) {
	t.Setenv("TINVEST_SANDBOX", "maybe")

	_, err := Load("")
	assert.ErrorContains(t, err, "parse environment")
}

func TestMaskedToken(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "", cfg.MaskedToken())

	cfg.API.Token = "abc"
	assert.Equal(t, "***", cfg.MaskedToken())

	cfg.API.Token = "t.secretsecret9876"
	assert.Equal(t, "***9876", cfg.MaskedToken())
}
