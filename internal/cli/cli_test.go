package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--env-file", ""}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestAdminCreateAndList(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite://"+filepath.Join(t.TempDir(), "catalog.db"))
	t.Setenv("STORAGE_BACKEND", "")

	out, err := run(t, "schema", "ensure")
	require.NoError(t, err)
	assert.Contains(t, out, "schema ensured")

	out, err = run(t, "admin", "create", "--username", "root", "--password", "Secret123")
	require.NoError(t, err)
	assert.Contains(t, out, "created admin root")

	_, err = run(t, "admin", "create", "--username", "root", "--password", "other")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	out, err = run(t, "admin", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasSuffix(lines[0], "\troot"))
	assert.NotContains(t, out, "$2a$")
}

func TestAdminCreate_RequiresFlags(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite://"+filepath.Join(t.TempDir(), "catalog.db"))
	t.Setenv("STORAGE_BACKEND", "")

	_, err := run(t, "admin", "create", "--username", "root")
	assert.Error(t, err)
}

func TestUnsupportedDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "redis://localhost")
	t.Setenv("STORAGE_BACKEND", "")

	_, err := run(t, "schema", "ensure")
	assert.Error(t, err)
}
