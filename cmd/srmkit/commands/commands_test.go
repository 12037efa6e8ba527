package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	cmd := Root()

	require.NotNil(t, cmd)
	assert.Equal(t, "srmkit", cmd.Use)
	assert.Equal(t, "Provision network and file storage for serverless workloads", cmd.Short)
}

func TestRoot_HasSubcommands(t *testing.T) {
	cmd := Root()

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}

	for _, expected := range []string{"network", "storage", "version"} {
		assert.True(t, subcommands[expected], "Expected subcommand %s not found", expected)
	}
	assert.Len(t, cmd.Commands(), 3)
}

func TestInitCommands_Flags(t *testing.T) {
	tests := []struct {
		path  []string
		flags []string
	}{
		{[]string{"network", "init"}, []string{"config", "region", "rule", "json", "verbose"}},
		{[]string{"storage", "init"}, []string{"config", "region", "rule", "json", "verbose", "network-id", "subnet-ids"}},
	}

	for _, tt := range tests {
		t.Run(tt.path[0], func(t *testing.T) {
			cmd, _, err := Root().Find(tt.path)
			require.NoError(t, err)
			require.NotNil(t, cmd.RunE)
			for _, name := range tt.flags {
				assert.NotNil(t, cmd.Flags().Lookup(name), "flag --%s missing", name)
			}
			assert.Equal(t, "c", cmd.Flags().Lookup("config").Shorthand)
		})
	}
}

func TestSetVersionInfo(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	defer func() {
		version, commit, date = origVersion, origCommit, origDate
	}()

	SetVersionInfo("1.2.3", "abc123", "2026-01-01")

	assert.Equal(t, "1.2.3", version)
	assert.Equal(t, "abc123", commit)
	assert.Equal(t, "2026-01-01", date)
}

func TestVersion_Output(t *testing.T) {
	origVersion, origCommit, origDate := version, commit, date
	defer func() {
		version, commit, date = origVersion, origCommit, origDate
	}()
	SetVersionInfo("test-version", "test-commit", "test-date")

	var out bytes.Buffer
	cmd := Version()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "srmkit test-version")
	assert.Contains(t, out.String(), "commit: test-commit")
	assert.Contains(t, out.String(), "built:  test-date")
}
