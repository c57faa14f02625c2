package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stephan-zhuchen/fastgit/test/integration/harness"
)

type branchJSON struct {
	IsCurrent bool
	IsRemote  bool
	Name      string
}

type commitJSON struct {
	Branches []string
	Message  string
	Tags     []string
}

type tagJSON struct {
	Annotated bool
	Message   string
	Name      string
}

type repositoryJSON struct {
	Branches []branchJSON `json:"branches"`
	Name     string       `json:"name"`
	Path     string       `json:"path"`
	Status   string       `json:"status"`
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T) string
		args     []string
		validate func(t *testing.T, result harness.CommandResult)
	}{
		{
			name: "summary of a cloned repository",
			setup: func(t *testing.T) string {
				return harness.NewTestGitSetup(t).ClonePath
			},
			args: []string{"open"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertSuccess(t, result)
				harness.AssertStdoutContains(t, result, "clone")
				harness.AssertStdoutContains(t, result, "Status:     ready")
				harness.AssertStdoutContains(t, result, "HEAD:       main @ ")
				harness.AssertStdoutContains(t, result, "Branches:   1 local, 1 remote")
				harness.AssertStdoutContains(t, result, "Commits:    1 loaded")
			},
		},
		{
			name: "json output",
			setup: func(t *testing.T) string {
				return harness.NewTestGitSetup(t).ClonePath
			},
			args: []string{"open", "--format", "json"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertSuccess(t, result)
				var repo repositoryJSON
				harness.AssertValidJSON(t, result, &repo)
				assert.Equal(t, "clone", repo.Name)
				assert.Equal(t, "ready", repo.Status)
				require.Len(t, repo.Branches, 2)
			},
		},
		{
			name: "repository without commits",
			setup: func(t *testing.T) string {
				return harness.NewEmptyRepo(t)
			},
			args: []string{"open"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertSuccess(t, result)
				harness.AssertStdoutContains(t, result, "(no commits yet)")
				harness.AssertStdoutContains(t, result, "Commits:    0 loaded")
			},
		},
		{
			name: "plain directory is not a repository",
			setup: func(t *testing.T) string {
				return t.TempDir()
			},
			args: []string{"open"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertFailure(t, result)
				harness.AssertStderrContains(t, result, "not a git repository")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			path := tt.setup(t)

			args := append([]string{"--yes"}, tt.args...)
			result := harness.RunCommand(t, env, append(args, path)...)

			tt.validate(t, result)
		})
	}
}

func TestLog(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)
	git.Commit("Add parser", "parser.go", "package parser\n")
	git.CreateTag("v1.0", "Release 1.0")

	result := harness.RunCommand(t, env, "--yes", "log", "--format", "json", git.ClonePath)
	harness.AssertSuccess(t, result)

	var commits []commitJSON
	harness.AssertValidJSON(t, result, &commits)
	require.Len(t, commits, 2)
	assert.Equal(t, "Add parser", commits[0].Message)
	assert.Equal(t, []string{"main"}, commits[0].Branches)
	assert.Equal(t, []string{"v1.0"}, commits[0].Tags)
	assert.Contains(t, commits[1].Branches, "origin/main")

	result = harness.RunCommand(t, env, "--yes", "log", "-n", "1", git.ClonePath)
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "(main, tag: v1.0) Add parser")
	harness.AssertStdoutNotContains(t, result, "Initial commit")
}

func TestLog_MaxCommitsPrecedence(t *testing.T) {
	git := harness.NewTestGitSetup(t)
	git.Commit("Second", "a.txt", "a\n")
	git.Commit("Third", "b.txt", "b\n")

	countCommits := func(t *testing.T, env *harness.TestEnvironment, args ...string) int {
		t.Helper()
		result := harness.RunCommand(t, env, append(args, "log", "--format", "json", git.ClonePath)...)
		harness.AssertSuccess(t, result)
		var commits []commitJSON
		harness.AssertValidJSON(t, result, &commits)
		return len(commits)
	}

	t.Run("settings file", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		env.WriteSettings(`{"max_commits": 1}`)
		assert.Equal(t, 1, countCommits(t, env, "--yes"))
	})

	t.Run("env over settings", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		env.WriteSettings(`{"max_commits": 1}`)
		env.SetEnv("FASTGIT_MAX_COMMITS", "2")
		assert.Equal(t, 2, countCommits(t, env, "--yes"))
	})

	t.Run("flag over env", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)
		env.SetEnv("FASTGIT_MAX_COMMITS", "2")
		assert.Equal(t, 3, countCommits(t, env, "--yes", "--max-commits", "3"))
	})
}

func TestBranches(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)
	git.CreateBranch("feature/login")
	git.CreateBranch("feature/ui")
	git.CreateRemoteBranch("release/v2")

	t.Run("local tree", func(t *testing.T) {
		result := harness.RunCommand(t, env, "--yes", "branches", git.ClonePath)
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "▾ feature/")
		harness.AssertStdoutContains(t, result, "login")
		harness.AssertStdoutContains(t, result, "* main")
		harness.AssertStdoutNotContains(t, result, "release")
	})

	t.Run("remote tree", func(t *testing.T) {
		result := harness.RunCommand(t, env, "--yes", "branches", "--remote", "--format", "json", git.ClonePath)
		harness.AssertSuccess(t, result)
		var branches []branchJSON
		harness.AssertValidJSON(t, result, &branches)
		names := make([]string, 0, len(branches))
		for _, b := range branches {
			assert.True(t, b.IsRemote)
			names = append(names, b.Name)
		}
		assert.ElementsMatch(t, []string{"origin/main", "origin/release/v2"}, names)
	})

	t.Run("search", func(t *testing.T) {
		result := harness.RunCommand(t, env, "--yes", "branches", "--search", "LOGIN", "--format", "json", git.ClonePath)
		harness.AssertSuccess(t, result)
		var branches []branchJSON
		harness.AssertValidJSON(t, result, &branches)
		require.Len(t, branches, 1)
		assert.Equal(t, "feature/login", branches[0].Name)
	})

	t.Run("case sensitive search without match", func(t *testing.T) {
		result := harness.RunCommand(t, env, "--yes", "branches", "--search", "LOGIN", "--case-sensitive", git.ClonePath)
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, `No matches for "LOGIN"`)
	})

	t.Run("collapsed", func(t *testing.T) {
		result := harness.RunCommand(t, env, "--yes", "branches", "--collapse", git.ClonePath)
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "▸ feature/")
		harness.AssertStdoutNotContains(t, result, "login")
	})
}

func TestFiles(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)

	result := harness.RunCommand(t, env, "--yes", "files", git.ClonePath)
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Working tree clean")

	git.WriteFile("src/app/main.go", "package main\n")
	git.WriteFile("README.md", "# Changed\n")

	result = harness.RunCommand(t, env, "--yes", "refresh", git.ClonePath)
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Changes:    2 files")

	result = harness.RunCommand(t, env, "--yes", "files", git.ClonePath)
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "▾ src/")
	harness.AssertStdoutContains(t, result, "▾ app/")
	harness.AssertStdoutContains(t, result, "?? main.go")
	harness.AssertStdoutContains(t, result, " M README.md")
}

func TestTags(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)
	git.CreateTag("v0.1", "")
	git.CreateTag("v1.0", "Release 1.0")

	result := harness.RunCommand(t, env, "--yes", "tags", "--format", "json", git.ClonePath)
	harness.AssertSuccess(t, result)

	var tags []tagJSON
	harness.AssertValidJSON(t, result, &tags)
	require.Len(t, tags, 2)
	byName := map[string]tagJSON{}
	for _, tag := range tags {
		byName[tag.Name] = tag
	}
	assert.False(t, byName["v0.1"].Annotated)
	assert.True(t, byName["v1.0"].Annotated)
	assert.Contains(t, byName["v1.0"].Message, "Release 1.0")

	result = harness.RunCommand(t, env, "--yes", "tags", git.ClonePath)
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Total: 2 tags")
}
