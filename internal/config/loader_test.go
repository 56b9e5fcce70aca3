package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.True(t, cfg.Server.Watch)
	assert.Equal(t, DefaultPageSize, cfg.Archive.PageSize)
	assert.Equal(t, DefaultSearchDebounceMs, cfg.Archive.SearchDebounceMs)
	assert.Equal(t, "projects.json", filepath.Base(cfg.Catalog))
	assert.Nil(t, cfg.SMTP)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
catalog: site/projects.json
backups_dir: site/backups
server:
  port: 3000
  admin_token: sekrit
archive:
  page_size: 9
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "sekrit", cfg.Server.AdminToken)
	assert.Equal(t, 9, cfg.Archive.PageSize)
	assert.Equal(t, DefaultLoadMoreStep, cfg.Archive.LoadMoreStep)
	assert.Equal(t, filepath.Join(dir, "site", "projects.json"), cfg.Catalog)
	assert.Equal(t, filepath.Join(dir, "site", "backups"), cfg.BackupsDir)
}

func TestLoad_HTTPCatalogNotResolved(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "catalog: https://cdn.example.com/projects.json\n")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/projects.json", cfg.Catalog)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "server:\n  port: 3000\n")

	t.Setenv("SHOWCASE_SERVER__PORT", "4000")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Server.Port)
}

func TestLoad_FlagsOverrideEverything(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "server:\n  port: 3000\n")
	t.Setenv("SHOWCASE_SERVER__PORT", "4000")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("port", 0, "")
	flags.Bool("watch", true, "")
	require.NoError(t, flags.Parse([]string{"--port", "5000"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.True(t, cfg.Server.Watch, "unset flags do not override")
}

func TestLoad_UpwardSearch(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "server:\n  port: 3100\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	t.Chdir(nested)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 3100, cfg.Server.Port)
}

func TestLoad_SMTPEnvExpansion(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
smtp:
  host: smtp.example.com
  user: mail@example.com
  password: ${SHOWCASE_TEST_SMTP_PASS}
  to: me@example.com
`)
	t.Setenv("SHOWCASE_TEST_SMTP_PASS", "hunter2")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	require.NotNil(t, cfg.SMTP)
	assert.Equal(t, "hunter2", cfg.SMTP.Password)
	assert.Equal(t, DefaultSMTPPort, cfg.SMTP.Port)
}
