package scanner_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronexus/schemacheck/internal/adapters/outbound/scanner"
	"github.com/neuronexus/schemacheck/internal/domain"
)

func childNames(n *domain.TreeNode) []string {
	var out []string
	for _, c := range n.Children {
		out = append(out, c.Name)
	}
	return out
}

func TestStructure_Fixture(t *testing.T) {
	st, err := scanner.New(nil).Structure(fixtureDir, 3)
	require.NoError(t, err)

	assert.Equal(t, "schemas", st.Root.Name)
	assert.True(t, st.Root.IsDir)
	assert.Equal(t, []string{"core", "events", "README.md", "notes.json"}, childNames(st.Root))

	core := st.Root.Children[0]
	assert.Equal(t, []string{"README.md", "session.schema.json", "user.schema.json"}, childNames(core))

	assert.Equal(t, 4, st.Stats.SchemaFiles)
	assert.Equal(t, 2, st.Stats.DocFiles)
	assert.Equal(t, 6, st.Stats.Total())
}

func TestStructure_DepthLimit(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "b", "c", "deep.schema.json"))

	st, err := scanner.New(nil).Structure(root, 2)
	require.NoError(t, err)

	require.Len(t, st.Root.Children, 1)
	a := st.Root.Children[0]
	require.Len(t, a.Children, 1)
	assert.Equal(t, "b", a.Children[0].Name)
	assert.Empty(t, a.Children[0].Children, "entries below max depth are not listed")

	// Counts ignore the depth limit.
	assert.Equal(t, 1, st.Stats.SchemaFiles)
}

func TestStructure_TotalBytesCountsEveryFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "core"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "core", "a.schema.json"), make([]byte, 1000), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), make([]byte, 24), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), make([]byte, 512), 0644))

	st, err := scanner.New(nil).Structure(root, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1536), st.Stats.TotalBytes)
	assert.InDelta(t, 1.5, st.Stats.TotalKB(), 1e-9)
	assert.Equal(t, 2, st.Stats.Total(), "size includes files the counts skip")
}

func TestStructure_ZeroDepth(t *testing.T) {
	st, err := scanner.New(nil).Structure(fixtureDir, 0)
	require.NoError(t, err)
	assert.Empty(t, st.Root.Children)
}

func TestStructure_MissingRoot(t *testing.T) {
	_, err := scanner.New(nil).Structure(filepath.Join(t.TempDir(), "nope"), 3)
	assert.True(t, errors.Is(err, domain.ErrDirectoryNotFound))
}
