package services

import (
	"fmt"

	"github.com/stephan-zhuchen/fastgit/internal/domain"
	"github.com/stephan-zhuchen/fastgit/internal/tree"
)

// TreeKind names a tree view derived from a session
type TreeKind string

const (
	TreeLocalBranches  TreeKind = "branches-local"
	TreeRemoteBranches TreeKind = "branches-remote"
	TreeFiles          TreeKind = "files"
)

// ParseTreeKind validates a tree kind name
func ParseTreeKind(s string) (TreeKind, error) {
	switch k := TreeKind(s); k {
	case TreeLocalBranches, TreeRemoteBranches, TreeFiles:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTreeKind, s)
}

// SearchOptions filter a tree view. An empty Text shows everything.
type SearchOptions struct {
	CaseSensitive bool
	Text          string
	WholeWord     bool
}

type treeKey struct {
	kind TreeKind
	path string
}

// treeMemo is an unfiltered tree built from one cache entry
type treeMemo struct {
	entry *domain.SessionCacheEntry
	tree  any
}

func branchName(b domain.Branch) string  { return b.Name }
func filePath(f domain.FileStatus) string { return f.Path }

// BranchTree returns the local or remote branch tree of a loaded session
func (c *SessionCoordinator) BranchTree(path string, kind TreeKind, opts SearchOptions) (*tree.Tree[domain.Branch], error) {
	var pick func(*domain.SessionCacheEntry) []domain.Branch
	switch kind {
	case TreeLocalBranches:
		pick = (*domain.SessionCacheEntry).LocalBranches
	case TreeRemoteBranches:
		pick = (*domain.SessionCacheEntry).RemoteBranches
	default:
		return nil, fmt.Errorf("%w: %q is not a branch tree", ErrUnknownTreeKind, kind)
	}

	full, err := memoized(c, path, kind, func(e *domain.SessionCacheEntry) *tree.Tree[domain.Branch] {
		return tree.Build(pick(e), branchName, tree.DefaultSeparator)
	})
	if err != nil {
		return nil, err
	}
	return filtered(full, opts)
}

// FileTree returns the working tree status of a loaded session as a tree
func (c *SessionCoordinator) FileTree(path string, opts SearchOptions) (*tree.Tree[domain.FileStatus], error) {
	full, err := memoized(c, path, TreeFiles, func(e *domain.SessionCacheEntry) *tree.Tree[domain.FileStatus] {
		return tree.Build(e.Files, filePath, tree.DefaultSeparator)
	})
	if err != nil {
		return nil, err
	}
	return filtered(full, opts)
}

func filtered[T any](full *tree.Tree[T], opts SearchOptions) (*tree.Tree[T], error) {
	pred, err := tree.NewMatcher(opts.Text, opts.CaseSensitive, opts.WholeWord)
	if err != nil {
		return nil, fmt.Errorf("failed to build search: %w", err)
	}
	return tree.Filter(full, pred), nil
}

// memoized returns the unfiltered tree for the current cache entry of path,
// building it only when the entry changed
func memoized[T any](c *SessionCoordinator, path string, kind TreeKind, build func(*domain.SessionCacheEntry) *tree.Tree[T]) (*tree.Tree[T], error) {
	entry := c.cache.Get(path)
	if entry == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrSessionNotLoaded)
	}

	key := treeKey{kind: kind, path: path}

	c.mu.Lock()
	if m, ok := c.trees[key]; ok && m.entry == entry {
		c.mu.Unlock()
		return m.tree.(*tree.Tree[T]), nil
	}
	c.mu.Unlock()

	t := build(entry)

	c.mu.Lock()
	c.trees[key] = treeMemo{entry: entry, tree: t}
	c.mu.Unlock()
	return t, nil
}

// Expansion returns a copy of the folder expansion state of a tree view
func (c *SessionCoordinator) Expansion(path string, kind TreeKind) tree.Expansion {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expansions[treeKey{kind: kind, path: path}].Clone()
}

// ToggleFolder flips one folder of a tree view and reports its new state
func (c *SessionCoordinator) ToggleFolder(path string, kind TreeKind, folder string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := treeKey{kind: kind, path: path}
	exp, ok := c.expansions[key]
	if !ok {
		exp = tree.NewExpansion()
		c.expansions[key] = exp
	}
	return exp.Toggle(folder)
}

func (c *SessionCoordinator) dropTreesLocked(path string) {
	for key := range c.trees {
		if key.path == path {
			delete(c.trees, key)
		}
	}
}
