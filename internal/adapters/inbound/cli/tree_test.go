package cli_test

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronexus/schemacheck/internal/domain"
)

func TestTreeCommand(t *testing.T) {
	out, err := execute(t, "tree", "--path", fixtureProject)
	require.NoError(t, err)

	assert.Contains(t, out, "schemas/")
	assert.Contains(t, out, "core")
	assert.Contains(t, out, "user.schema.json")
	assert.Contains(t, out, "Schema files (.schema.json): 4")
	assert.Contains(t, out, "Documentation files (.md): 2")
	assert.Contains(t, out, "Total files: 6")
	assert.Contains(t, out, "Total size: ")
}

func TestTreeCommand_Depth(t *testing.T) {
	out, err := execute(t, "tree", "--path", fixtureProject, "--depth", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "core")
	assert.NotContains(t, out, "user.schema.json")
}

func TestTreeCommand_JSON(t *testing.T) {
	out, err := execute(t, "tree", "--path", fixtureProject, "--json")
	require.NoError(t, err)

	var st domain.Structure
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.Equal(t, "schemas", st.Root.Name)
	assert.Equal(t, 4, st.Stats.SchemaFiles)
	assert.Positive(t, st.Stats.TotalBytes)
}

func TestTreeCommand_MissingRoot(t *testing.T) {
	out, err := execute(t, "tree", "--path", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDirectoryNotFound))
	assert.Contains(t, out, "Schemas directory not found!")
}

func TestTreeCommand_NegativeDepth(t *testing.T) {
	_, err := execute(t, "tree", "--path", fixtureProject, "--depth", "-1")
	assert.Error(t, err)
}

func TestHistoryCommand_Empty(t *testing.T) {
	out, err := execute(t, "history", "--path", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No run history found.")
}
