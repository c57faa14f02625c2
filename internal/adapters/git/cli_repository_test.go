package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stephan-zhuchen/fastgit/internal/domain"
)

// testRepo is a throwaway repository with helpers for building history
type testRepo struct {
	dir string
	t   *testing.T
}

// setupTestRepo creates a git repo on branch main with no commits
func setupTestRepo(t *testing.T) *testRepo {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	r := &testRepo{dir: t.TempDir(), t: t}
	r.git("init")
	r.git("symbolic-ref", "HEAD", "refs/heads/main")
	r.git("config", "user.email", "test@test.com")
	r.git("config", "user.name", "Test")
	r.git("config", "commit.gpgsign", "false")
	r.git("config", "tag.gpgsign", "false")
	return r
}

func (r *testRepo) git(args ...string) string {
	r.t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = r.dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test",
		"GIT_AUTHOR_EMAIL=test@test.com",
		"GIT_COMMITTER_NAME=Test",
		"GIT_COMMITTER_EMAIL=test@test.com",
	)
	out, err := cmd.CombinedOutput()
	require.NoError(r.t, err, "git %v failed: %s", args, out)
	return strings.TrimSpace(string(out))
}

func (r *testRepo) commit(file, content, message string) string {
	r.t.Helper()
	path := filepath.Join(r.dir, file)
	require.NoError(r.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(r.t, os.WriteFile(path, []byte(content), 0644))
	r.git("add", file)
	r.git("commit", "-m", message)
	return r.git("rev-parse", "HEAD")
}

func TestOpenRepository(t *testing.T) {
	repo := setupTestRepo(t)
	head := repo.commit("README.md", "# Test", "Initial commit")
	cli := NewCLIRepository()

	h, err := cli.OpenRepository(context.Background(), repo.dir)

	require.NoError(t, err)
	assert.Equal(t, head, h.HeadSHA)
	assert.Equal(t, "refs/heads/main", h.HeadRef)
	assert.False(t, h.Unborn())
	assert.NotEmpty(t, h.GitDir)

	resolved, err := filepath.EvalSymlinks(repo.dir)
	require.NoError(t, err)
	assert.Equal(t, resolved, h.WorkDir)
}

func TestOpenRepository_Errors(t *testing.T) {
	cli := NewCLIRepository()
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := cli.OpenRepository(context.Background(), filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, domain.ErrRepositoryNotFound)

	_, err = cli.OpenRepository(context.Background(), file)
	assert.ErrorIs(t, err, domain.ErrNotAGitRepository)

	_, err = cli.OpenRepository(context.Background(), dir)
	assert.ErrorIs(t, err, domain.ErrNotAGitRepository)
}

func TestUnbornRepository(t *testing.T) {
	repo := setupTestRepo(t)
	cli := NewCLIRepository()
	ctx := context.Background()

	h, err := cli.OpenRepository(ctx, repo.dir)
	require.NoError(t, err)
	assert.True(t, h.Unborn())

	commits, err := cli.WalkHistory(ctx, h, "", 100)
	require.NoError(t, err)
	assert.Empty(t, commits)

	branches, err := cli.ListBranches(ctx, h)
	require.NoError(t, err)
	assert.Empty(t, branches)

	tags, err := cli.ListTags(ctx, h)
	require.NoError(t, err)
	assert.Empty(t, tags)

	submodules, err := cli.ListSubmodulePaths(ctx, h)
	require.NoError(t, err)
	assert.Empty(t, submodules)
}

func TestWalkHistory(t *testing.T) {
	repo := setupTestRepo(t)
	first := repo.commit("a.txt", "a", "First commit")
	second := repo.commit("b.txt", "b", "Second commit\n\nWith a body line")
	third := repo.commit("c.txt", "c", "Third commit")
	cli := NewCLIRepository()
	ctx := context.Background()

	h, err := cli.OpenRepository(ctx, repo.dir)
	require.NoError(t, err)

	commits, err := cli.WalkHistory(ctx, h, "", 0)
	require.NoError(t, err)
	require.Len(t, commits, 3)

	assert.Equal(t, third, commits[0].SHA, "newest first")
	assert.Equal(t, []string{second}, commits[0].Parents)
	assert.Equal(t, second, commits[1].SHA)
	assert.Equal(t, "Second commit\n\nWith a body line", commits[1].Message)
	assert.Equal(t, "Second commit", commits[1].Summary())
	assert.Equal(t, first, commits[2].SHA)
	assert.Empty(t, commits[2].Parents)
	assert.NotNil(t, commits[2].Parents)
	assert.Equal(t, "Test", commits[2].Author)
	assert.Equal(t, "test@test.com", commits[2].AuthorEmail)
	assert.True(t, strings.HasPrefix(first, commits[2].ShortSHA))
	assert.False(t, commits[2].Timestamp.IsZero())

	limited, err := cli.WalkHistory(ctx, h, second, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, second, limited[0].SHA)
}

func TestListBranches(t *testing.T) {
	repo := setupTestRepo(t)
	head := repo.commit("a.txt", "a", "Initial commit")
	repo.git("branch", "feature/login")
	repo.git("branch", "feature/logout")
	repo.git("update-ref", "refs/remotes/origin/main", head)
	repo.git("symbolic-ref", "refs/remotes/origin/HEAD", "refs/remotes/origin/main")
	cli := NewCLIRepository()
	ctx := context.Background()

	h, err := cli.OpenRepository(ctx, repo.dir)
	require.NoError(t, err)
	branches, err := cli.ListBranches(ctx, h)
	require.NoError(t, err)

	var names []string
	for _, b := range branches {
		names = append(names, b.Name)
		assert.Equal(t, head, b.TargetSHA)
	}
	assert.Equal(t, []string{"feature/login", "feature/logout", "main", "origin/main"}, names)
	assert.True(t, branches[2].IsCurrent)
	assert.False(t, branches[0].IsCurrent)
	assert.True(t, branches[3].IsRemote)
}

func TestListTags(t *testing.T) {
	repo := setupTestRepo(t)
	first := repo.commit("a.txt", "a", "First commit")
	repo.git("tag", "v1.0")
	second := repo.commit("b.txt", "b", "Second commit")
	repo.git("tag", "-a", "v2.0", "-m", "Release two")
	cli := NewCLIRepository()
	ctx := context.Background()

	h, err := cli.OpenRepository(ctx, repo.dir)
	require.NoError(t, err)
	tags, err := cli.ListTags(ctx, h)
	require.NoError(t, err)
	require.Len(t, tags, 2)

	assert.Equal(t, "v1.0", tags[0].Name)
	assert.Equal(t, first, tags[0].TargetSHA)
	assert.False(t, tags[0].Annotated)
	assert.Nil(t, tags[0].Date)

	assert.Equal(t, "v2.0", tags[1].Name)
	assert.Equal(t, second, tags[1].TargetSHA, "annotated tags peel to their commit")
	assert.True(t, tags[1].Annotated)
	assert.Equal(t, "Release two", tags[1].Message)
	assert.Equal(t, "Test", tags[1].Tagger)
	require.NotNil(t, tags[1].Date)
}

func TestListSubmodulePaths(t *testing.T) {
	repo := setupTestRepo(t)
	gitmodules := "[submodule \"lib\"]\n\tpath = vendor/lib\n\turl = ../lib\n[submodule \"docs\"]\n\tpath = docs\n\turl = ../docs\n"
	repo.commit(".gitmodules", gitmodules, "Add submodules")
	cli := NewCLIRepository()
	ctx := context.Background()

	h, err := cli.OpenRepository(ctx, repo.dir)
	require.NoError(t, err)
	paths, err := cli.ListSubmodulePaths(ctx, h)

	require.NoError(t, err)
	assert.Equal(t, []string{"vendor/lib", "docs"}, paths)
}

func TestListFileStatuses(t *testing.T) {
	repo := setupTestRepo(t)
	repo.commit("tracked.txt", "one", "Initial commit")
	repo.commit("old.txt", "rename me", "Add file to rename")
	require.NoError(t, os.WriteFile(filepath.Join(repo.dir, "tracked.txt"), []byte("two"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(repo.dir, "src", "pkg"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(repo.dir, "src", "pkg", "new.go"), []byte("package pkg"), 0644))
	repo.git("mv", "old.txt", "renamed.txt")
	cli := NewCLIRepository()
	ctx := context.Background()

	h, err := cli.OpenRepository(ctx, repo.dir)
	require.NoError(t, err)
	files, err := cli.ListFileStatuses(ctx, h)
	require.NoError(t, err)

	byPath := make(map[string]domain.FileStatus)
	for _, f := range files {
		byPath[f.Path] = f
	}
	require.Len(t, byPath, 3)
	assert.Equal(t, byte('M'), byPath["tracked.txt"].Unstaged)
	assert.True(t, byPath["src/pkg/new.go"].IsUntracked())
	assert.Equal(t, byte('R'), byPath["renamed.txt"].Staged)
}

func TestGetRemoteURL(t *testing.T) {
	repo := setupTestRepo(t)
	repo.commit("a.txt", "a", "Initial commit")
	cli := NewCLIRepository()
	ctx := context.Background()

	h, err := cli.OpenRepository(ctx, repo.dir)
	require.NoError(t, err)
	assert.Empty(t, cli.GetRemoteURL(ctx, h))

	repo.git("remote", "add", "origin", "https://github.com/example/repo.git")
	assert.Equal(t, "https://github.com/example/repo.git", cli.GetRemoteURL(ctx, h))
}

func TestParsePorcelain(t *testing.T) {
	out := " M a.txt\x00R  new.txt\x00old.txt\x00?? dir/u.txt\x00"

	files := parsePorcelain(out)

	require.Len(t, files, 3)
	assert.Equal(t, "a.txt", files[0].Path)
	assert.Equal(t, "new.txt", files[1].Path)
	assert.Equal(t, "dir/u.txt", files[2].Path)
}

func TestParseLog_Malformed(t *testing.T) {
	_, err := parseLog("abc\x1fdef\x1e")
	assert.Error(t, err)
}
