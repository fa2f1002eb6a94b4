package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronexus/schemacheck/internal/adapters/inbound/cli"
	"github.com/neuronexus/schemacheck/internal/adapters/outbound/config"
)

func TestInitCmd_CreatesConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".schemacheck.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "root: schemas")
	assert.Contains(t, string(data), "jobs: 1")
}

func TestInitCmd_RoundTripsThroughLoader(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--schemas", "api/schemas", "--jobs", "4", "--exclude", "drafts,archive"})
	require.NoError(t, root.Execute())

	cfg, err := config.New().Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "api/schemas", cfg.Root)
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, []string{"drafts", "archive"}, cfg.ExcludePaths)
	assert.False(t, cfg.HistoryEnabled())
}

func TestInitCmd_RoundTripsAwkwardRoots(t *testing.T) {
	for _, schemas := range []string{"api: schemas", "schemas #v2", "[x]", "- list", "'quoted'", "yes"} {
		t.Run(schemas, func(t *testing.T) {
			tmpDir := t.TempDir()

			root := cli.NewRootCmdForTest()
			root.SetArgs([]string{"init", tmpDir, "--schemas", schemas, "--exclude", "a: b,c #d"})
			require.NoError(t, root.Execute())

			cfg, err := config.New().Load(tmpDir)
			require.NoError(t, err)
			assert.Equal(t, schemas, cfg.Root)
			assert.Equal(t, []string{"a: b", "c #d"}, cfg.ExcludePaths)
		})
	}
}

func TestInitCmd_Mkdir(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--mkdir"})
	require.NoError(t, root.Execute())

	info, err := os.Stat(filepath.Join(tmpDir, "schemas"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestInitCmd_FailsIfExists(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".schemacheck.yaml"), []byte("existing"), 0644))

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	err := root.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".schemacheck.yaml"), []byte("old"), 0644))

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--force"})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".schemacheck.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "root:")
	assert.NotEqual(t, "old", string(data))
}

func TestInitCmd_InvalidJobs(t *testing.T) {
	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", t.TempDir(), "--jobs", "-3"})
	err := root.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "jobs")
}
