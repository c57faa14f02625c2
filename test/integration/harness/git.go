package harness

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TestGitSetup holds paths for a complete git test environment.
// It creates a bare repo (simulating remote/origin) and a clone with origin configured.
type TestGitSetup struct {
	BareRepoPath string // Acts as "origin" remote
	ClonePath    string // Working repo with origin configured
	tb           testing.TB
}

// NewTestGitSetup creates a complete git environment with origin.
//  1. Creates a bare repo (simulates remote/origin)
//  2. Clones it to create a working repo with origin remote
//  3. Creates and pushes an initial commit on main
//
// Setup structure:
//
//	tb.TempDir()/
//	├── bare/   <- git init --bare (acts as origin)
//	└── clone/  <- git clone bare/ clone/ (has origin remote)
func NewTestGitSetup(tb testing.TB) *TestGitSetup {
	tb.Helper()

	baseDir := tb.TempDir()
	bareRepoPath := filepath.Join(baseDir, "bare")
	clonePath := filepath.Join(baseDir, "clone")

	runGitCommand(tb, baseDir, "init", "--bare", bareRepoPath)
	runGitCommand(tb, baseDir, "clone", bareRepoPath, clonePath)

	g := &TestGitSetup{
		BareRepoPath: bareRepoPath,
		ClonePath:    clonePath,
		tb:           tb,
	}
	g.Commit("Initial commit", "README.md", "# Test Repo\n")

	// Ensure branch is named "main" (git might default to "master")
	runGitCommand(tb, clonePath, "branch", "-M", "main")
	runGitCommand(tb, clonePath, "push", "-u", "origin", "main")

	return g
}

// NewEmptyRepo creates a repository without any commit.
func NewEmptyRepo(tb testing.TB) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), "empty")
	runGitCommand(tb, filepath.Dir(path), "init", path)
	return path
}

// WriteFile writes a file relative to the clone without staging it.
func (g *TestGitSetup) WriteFile(name, content string) {
	g.tb.Helper()

	path := filepath.Join(g.ClonePath, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		g.tb.Fatalf("Failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		g.tb.Fatalf("Failed to write %s: %v", name, err)
	}
}

// Commit writes a file and commits it with message.
func (g *TestGitSetup) Commit(message, name, content string) {
	g.tb.Helper()

	g.WriteFile(name, content)
	runGitCommand(g.tb, g.ClonePath, "add", name)
	runGitCommand(g.tb, g.ClonePath, "commit", "-m", message)
}

// CreateBranch creates a branch in the working repo.
func (g *TestGitSetup) CreateBranch(name string) {
	g.tb.Helper()
	runGitCommand(g.tb, g.ClonePath, "branch", name)
}

// PushBranch pushes a branch to origin (bare repo).
func (g *TestGitSetup) PushBranch(name string) {
	g.tb.Helper()
	runGitCommand(g.tb, g.ClonePath, "push", "-u", "origin", name)
}

// CreateTag creates a lightweight tag, or an annotated one when message is set.
func (g *TestGitSetup) CreateTag(name, message string) {
	g.tb.Helper()
	if message == "" {
		runGitCommand(g.tb, g.ClonePath, "tag", name)
		return
	}
	runGitCommand(g.tb, g.ClonePath, "tag", "-a", name, "-m", message)
}

// CreateRemoteBranch creates a branch that exists only on origin.
// It creates a local branch, pushes it to origin, then deletes the local branch.
func (g *TestGitSetup) CreateRemoteBranch(name string) {
	g.tb.Helper()

	runGitCommand(g.tb, g.ClonePath, "checkout", "-b", name)
	g.Commit("Add file for "+name, filepath.Base(name)+".txt", "content for "+name+"\n")
	runGitCommand(g.tb, g.ClonePath, "push", "-u", "origin", name)

	runGitCommand(g.tb, g.ClonePath, "checkout", "main")
	runGitCommand(g.tb, g.ClonePath, "branch", "-D", name)
}

// RunGitCommand executes a git command in the specified directory (exported for tests).
func RunGitCommand(tb testing.TB, dir string, args ...string) {
	runGitCommand(tb, dir, args...)
}

// runGitCommand executes a git command in the specified directory.
func runGitCommand(tb testing.TB, dir string, args ...string) {
	tb.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		tb.Fatalf("git %v failed in %s: %v\nOutput: %s", args, dir, err, output)
	}
}
