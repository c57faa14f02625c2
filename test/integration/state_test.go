package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stephan-zhuchen/fastgit/test/integration/harness"
)

type recentJSON struct {
	Name      string
	Path      string
	RemoteURL string
}

type grantJSON struct {
	Active bool
	Path   string
}

func TestRecents(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	first := harness.NewTestGitSetup(t)
	second := harness.NewEmptyRepo(t)

	result := harness.RunCommand(t, env, "recents")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Total: 0 repositories")

	harness.AssertSuccess(t, harness.RunCommand(t, env, "--yes", "open", first.ClonePath))
	harness.AssertSuccess(t, harness.RunCommand(t, env, "--yes", "open", second))

	result = harness.RunCommand(t, env, "recents", "list", "--format", "json")
	harness.AssertSuccess(t, result)
	var recents []recentJSON
	harness.AssertValidJSON(t, result, &recents)
	require.Len(t, recents, 2)
	assert.Equal(t, second, recents[0].Path)
	assert.Equal(t, first.ClonePath, recents[1].Path)
	assert.Equal(t, first.BareRepoPath, recents[1].RemoteURL)

	// reopening moves the repository to the front without duplicating it
	harness.AssertSuccess(t, harness.RunCommand(t, env, "--yes", "open", first.ClonePath))
	result = harness.RunCommand(t, env, "recents", "list", "--format", "json")
	harness.AssertSuccess(t, result)
	recents = nil
	harness.AssertValidJSON(t, result, &recents)
	require.Len(t, recents, 2)
	assert.Equal(t, first.ClonePath, recents[0].Path)

	result = harness.RunCommand(t, env, "recents", "remove", second)
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Removed")

	result = harness.RunCommand(t, env, "recents")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Total: 1 repositories")
	harness.AssertStdoutNotContains(t, result, second)

	result = harness.RunCommand(t, env, "recents", "remove", second)
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "recent repository not found")
}

func TestRecents_Limit(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteSettings(`{"recents_limit": 2}`)

	repos := []string{harness.NewEmptyRepo(t), harness.NewEmptyRepo(t), harness.NewEmptyRepo(t)}
	for _, repo := range repos {
		harness.AssertSuccess(t, harness.RunCommand(t, env, "--yes", "open", repo))
	}

	result := harness.RunCommand(t, env, "recents", "--format", "json")
	harness.AssertSuccess(t, result)
	var recents []recentJSON
	harness.AssertValidJSON(t, result, &recents)
	require.Len(t, recents, 2)
	assert.Equal(t, repos[2], recents[0].Path)
	assert.Equal(t, repos[1], recents[1].Path)
}

func TestGrants(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)

	result := harness.RunCommand(t, env, "grants")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Total: 0 grants")

	result = harness.RunCommand(t, env, "--yes", "grants", "add", git.ClonePath)
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Access granted to "+git.ClonePath)

	result = harness.RunCommand(t, env, "grants", "list", "--format", "json")
	harness.AssertSuccess(t, result)
	var grants []grantJSON
	harness.AssertValidJSON(t, result, &grants)
	require.Len(t, grants, 1)
	assert.Equal(t, git.ClonePath, grants[0].Path)
	assert.False(t, grants[0].Active, "no access is active in a fresh process")

	// the persisted grant is enough, no prompt and no --yes needed
	result = harness.RunCommand(t, env, "open", git.ClonePath)
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Status:     ready")

	result = harness.RunCommand(t, env, "grants", "revoke", git.ClonePath)
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Revoked access to "+git.ClonePath)

	result = harness.RunCommand(t, env, "grants", "revoke", git.ClonePath)
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "no access grant")
}

func TestRestore(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	git := harness.NewTestGitSetup(t)

	result := harness.RunCommand(t, env, "restore")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "No repository to restore")

	harness.AssertSuccess(t, harness.RunCommand(t, env, "--yes", "open", git.ClonePath))

	result = harness.RunCommand(t, env, "restore")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, git.ClonePath)
	harness.AssertStdoutContains(t, result, "Status:     ready")
}

func TestSettings(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "settings", "set", "recents_limit", "4")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Set recents_limit = 4")

	result = harness.RunCommand(t, env, "settings")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, env.SettingsPath())
	harness.AssertStdoutContains(t, result, "recents_limit")

	result = harness.RunCommand(t, env, "settings", "show", "--format", "json")
	harness.AssertSuccess(t, result)
	var settings map[string]any
	harness.AssertValidJSON(t, result, &settings)
	assert.Equal(t, float64(4), settings["recents_limit"])

	result = harness.RunCommand(t, env, "settings", "set", "max_commits", "0")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "max_commits must be positive")
}
