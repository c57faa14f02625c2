package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stephan-zhuchen/fastgit/internal/domain"
	"github.com/stephan-zhuchen/fastgit/internal/tree"
)

func openSample(t *testing.T) (*fixture, string) {
	t.Helper()
	f := newFixture(t)
	id := identityFor("/repos/alpha")
	f.grant(id.Path)
	f.expectFetch(id.Path, newSampleRepo())
	_, err := f.coord.Open(context.Background(), id)
	require.NoError(t, err)
	return f, id.Path
}

func leafNames[T any](t *tree.Tree[T]) []string {
	var names []string
	for _, leaf := range t.Leaves() {
		names = append(names, t.NameOf(leaf))
	}
	return names
}

func TestBranchTree_Local(t *testing.T) {
	f, path := openSample(t)

	bt, err := f.coord.BranchTree(path, TreeLocalBranches, SearchOptions{})
	require.NoError(t, err)

	roots := bt.Roots()
	require.Len(t, roots, 2)
	assert.Equal(t, "feature", bt.Node(roots[0]).Name, "folders first")
	assert.True(t, bt.Node(roots[0]).IsFolder())
	assert.Equal(t, "main", bt.Node(roots[1]).Name)
	assert.ElementsMatch(t, []string{"feature/api/v2", "feature/login", "main"}, leafNames(bt))
}

func TestBranchTree_Remote(t *testing.T) {
	f, path := openSample(t)

	bt, err := f.coord.BranchTree(path, TreeRemoteBranches, SearchOptions{})

	require.NoError(t, err)
	assert.Equal(t, []string{"origin/main"}, leafNames(bt))
}

func TestBranchTree_MemoisedPerEntry(t *testing.T) {
	f, path := openSample(t)

	first, err := f.coord.BranchTree(path, TreeLocalBranches, SearchOptions{})
	require.NoError(t, err)
	second, err := f.coord.BranchTree(path, TreeLocalBranches, SearchOptions{Text: "   "})
	require.NoError(t, err)

	assert.Same(t, first, second, "blank search returns the unfiltered tree")
}

func TestBranchTree_Search(t *testing.T) {
	f, path := openSample(t)

	bt, err := f.coord.BranchTree(path, TreeLocalBranches, SearchOptions{Text: "LOGIN"})
	require.NoError(t, err)
	assert.Equal(t, []string{"feature/login"}, leafNames(bt))
	assert.True(t, bt.ForcedExpanded())

	bt, err = f.coord.BranchTree(path, TreeLocalBranches, SearchOptions{Text: "LOGIN", CaseSensitive: true})
	require.NoError(t, err)
	assert.True(t, bt.Empty())

	bt, err = f.coord.BranchTree(path, TreeLocalBranches, SearchOptions{Text: "api", WholeWord: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"feature/api/v2"}, leafNames(bt))

	bt, err = f.coord.BranchTree(path, TreeLocalBranches, SearchOptions{Text: "ma", WholeWord: true})
	require.NoError(t, err)
	assert.True(t, bt.Empty())
}

func TestFileTree(t *testing.T) {
	f, path := openSample(t)

	ft, err := f.coord.FileTree(path, SearchOptions{})
	require.NoError(t, err)

	roots := ft.Roots()
	require.Len(t, roots, 2)
	assert.Equal(t, "src", ft.Node(roots[0]).Name)
	assert.Equal(t, "README.md", ft.Node(roots[1]).Name)
	leaf := ft.Node(ft.Children(roots[0])[0])
	assert.Equal(t, domain.FileStatus{Path: "src/main.go", Staged: ' ', Unstaged: 'M'}, leaf.Payload)
}

func TestTrees_NotLoaded(t *testing.T) {
	f := newFixture(t)

	_, err := f.coord.BranchTree("/repos/unknown", TreeLocalBranches, SearchOptions{})
	assert.ErrorIs(t, err, ErrSessionNotLoaded)

	_, err = f.coord.FileTree("/repos/unknown", SearchOptions{})
	assert.ErrorIs(t, err, ErrSessionNotLoaded)
}

func TestBranchTree_RejectsFileKind(t *testing.T) {
	f, path := openSample(t)

	_, err := f.coord.BranchTree(path, TreeFiles, SearchOptions{})

	assert.ErrorIs(t, err, ErrUnknownTreeKind)
}

func TestParseTreeKind(t *testing.T) {
	kind, err := ParseTreeKind("branches-remote")
	require.NoError(t, err)
	assert.Equal(t, TreeRemoteBranches, kind)

	_, err = ParseTreeKind("tags")
	assert.ErrorIs(t, err, ErrUnknownTreeKind)
}

func TestToggleFolder(t *testing.T) {
	f, path := openSample(t)

	assert.True(t, f.coord.ToggleFolder(path, TreeLocalBranches, "feature"))
	exp := f.coord.Expansion(path, TreeLocalBranches)
	assert.True(t, exp.IsExpanded("feature"))

	// the returned expansion is a copy
	exp.Set("feature", false)
	assert.True(t, f.coord.Expansion(path, TreeLocalBranches).IsExpanded("feature"))

	assert.False(t, f.coord.ToggleFolder(path, TreeLocalBranches, "feature"))
	assert.False(t, f.coord.Expansion(path, TreeFiles).IsExpanded("feature"))
}
