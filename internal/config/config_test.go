package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreconfig "github.com/m3rciful/phonebot/core/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMergesSections(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "123:abc"
  admin_id: 77
lookup:
  inline_enabled: true
database:
  enabled: true
  host: db
  name: phonebot
  user: bot
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.CoreConfig().Telegram.Token)
	assert.EqualValues(t, 77, cfg.Telegram.AdminID)
	assert.Equal(t, coreconfig.RunModeLongpoll, cfg.Telegram.RunMode)
	assert.True(t, cfg.Lookup.InlineEnabled)
	assert.Equal(t, "en", cfg.Lookup.Language)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "migrations", cfg.Database.MigrationsDir)
}

func TestLoadFromEnvOnly(t *testing.T) {
	t.Setenv("BOT_TOKEN", "env:token")
	t.Setenv("DB_ENABLED", "false")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "env:token", cfg.Telegram.Token)
	assert.False(t, cfg.Database.Enabled)
}

func TestLoadRejectsIncompleteDatabase(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "123:abc"
database:
  enabled: true
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "database config")
}
