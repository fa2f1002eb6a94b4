package gitinfo_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronexus/schemacheck/internal/adapters/outbound/gitinfo"
)

func initRepo(t *testing.T, dir string) *git.Repository {
	t.Helper()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	return repo
}

func commitFile(t *testing.T, repo *git.Repository, dir string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "user.schema.json"), []byte("{}"), 0644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("user.schema.json")
	require.NoError(t, err)

	hash, err := wt.Commit("add schema", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@test.com", When: time.Now()},
	})
	require.NoError(t, err)
	return hash.String()
}

func TestGitInfo_IsGitRepo_True(t *testing.T) {
	dir := t.TempDir()
	initRepo(t, dir)
	assert.True(t, gitinfo.New().IsGitRepo(dir))
}

func TestGitInfo_IsGitRepo_False(t *testing.T) {
	assert.False(t, gitinfo.New().IsGitRepo(t.TempDir()))
}

func TestGitInfo_CommitHash_ReturnsHash(t *testing.T) {
	dir := t.TempDir()
	repo := initRepo(t, dir)
	want := commitFile(t, repo, dir)

	hash, err := gitinfo.New().CommitHash(dir)
	require.NoError(t, err)
	assert.Equal(t, want, hash)
	assert.Len(t, hash, 40, "should be a full SHA-1 hash")
}

func TestGitInfo_CommitHash_FromSubdirectory(t *testing.T) {
	dir := t.TempDir()
	repo := initRepo(t, dir)
	want := commitFile(t, repo, dir)

	sub := filepath.Join(dir, "schemas", "core")
	require.NoError(t, os.MkdirAll(sub, 0755))

	hash, err := gitinfo.New().CommitHash(sub)
	require.NoError(t, err)
	assert.Equal(t, want, hash)
}

func TestGitInfo_CommitHash_NoCommits(t *testing.T) {
	dir := t.TempDir()
	initRepo(t, dir)

	_, err := gitinfo.New().CommitHash(dir)
	assert.Error(t, err)
}

func TestGitInfo_CommitHash_NotGitRepo(t *testing.T) {
	_, err := gitinfo.New().CommitHash(t.TempDir())
	assert.Error(t, err)
}
