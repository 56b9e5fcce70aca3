package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ticuv/showcase/internal/catalog"
)

const validDoc = `{"projects": [
	{"id": "mono-poster", "title": "Mono Poster", "category": "branding", "year": 2024, "tags": ["print"], "description": "Poster series.", "image": "/img/mono.jpg", "featured": true},
	{"id": "orbit-render", "title": "Orbit Render", "category": "3d", "year": 2023, "tags": ["blender"], "description": "Station renders.", "image": "/img/orbit.jpg"}
]}`

const invalidDoc = `{"projects": [
	{"id": "BAD ID", "title": "", "category": "nope", "year": 1800, "tags": [], "description": "x", "image": "/img/x.jpg"}
]}`

func writeCatalog(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	cmd.SetContext(context.Background())
	err := cmd.Execute()
	return out.String(), err
}

func TestValidateClean(t *testing.T) {
	t.Setenv("SHOWCASE_CATALOG", writeCatalog(t, validDoc))

	out, err := execute(t, NewValidateCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "Catalog OK: 2 projects (1 featured)")
	assert.Contains(t, out, "branding")
}

func TestValidateFailure(t *testing.T) {
	t.Setenv("SHOWCASE_CATALOG", writeCatalog(t, invalidDoc))

	out, err := execute(t, NewValidateCommand())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 projects failed validation")
	assert.Contains(t, out, "BAD ID")
}

func TestValidateMissingCatalog(t *testing.T) {
	t.Setenv("SHOWCASE_CATALOG", filepath.Join(t.TempDir(), "missing.json"))

	_, err := execute(t, NewValidateCommand())
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrLoad)
}

func TestListTable(t *testing.T) {
	t.Setenv("SHOWCASE_CATALOG", writeCatalog(t, validDoc))

	out, err := execute(t, NewListCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "mono-poster")
	assert.Contains(t, out, "(2 projects)")
}

func TestListFilterAndJSON(t *testing.T) {
	t.Setenv("SHOWCASE_CATALOG", writeCatalog(t, validDoc))

	out, err := execute(t, NewListCommand(), "--category", "3d", "--json")
	require.NoError(t, err)

	var result []catalog.Project
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result, 1)
	assert.Equal(t, "orbit-render", result[0].ID)
}

func TestBackupCreateAndList(t *testing.T) {
	t.Setenv("SHOWCASE_CATALOG", writeCatalog(t, validDoc))
	backupsDir := filepath.Join(t.TempDir(), "backups")
	t.Setenv("SHOWCASE_BACKUPS_DIR", backupsDir)

	out, err := execute(t, NewBackupCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "Backup written to")

	out, err = execute(t, NewBackupCommand(), "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "projects_")
}

func TestBackupRemoteCatalogRefused(t *testing.T) {
	t.Setenv("SHOWCASE_CATALOG", "https://example.com/projects.json")

	_, err := execute(t, NewBackupCommand())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be backed up")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, NewVersionCommand("1.2.3", "unknown", "unknown"))
	require.NoError(t, err)
	assert.Contains(t, out, "showcase v1.2.3")
}
