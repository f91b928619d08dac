package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) error {
	t.Helper()

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd.Execute()
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := newRootCmd()

	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}

	assert.Subset(t, names, []string{"migrate", "seed", "create-admin"})
}

func TestCreateAdminCmd_RequiresEmail(t *testing.T) {
	err := runCmd(t, "create-admin", "--password", "secret")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"email"`)
}

func TestSeedCmd_MissingFile(t *testing.T) {
	err := runCmd(t, "seed", "--file", t.TempDir()+"/missing.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open")
}

func TestSeedCmd_InvalidFileFailsBeforeConnecting(t *testing.T) {
	path := t.TempDir() + "/bad.yaml"
	require.NoError(t, writeFile(path, "profiles:\n  - name: Nameless\n"))

	err := runCmd(t, "seed", "-f", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile #1 needs id and name")
}

func TestMigrateCmd_RejectsArgs(t *testing.T) {
	err := runCmd(t, "migrate", "extra")

	require.Error(t, err)
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}
