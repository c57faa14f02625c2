package domain

import (
	"fmt"
	"path/filepath"
	"time"
)

// RepositoryIdentity identifies one repository. Path is absolute and cleaned;
// two identities with the same Path refer to the same session.
type RepositoryIdentity struct {
	LastOpened time.Time
	Name       string
	Path       string
	RemoteURL  string
}

// NewRepositoryIdentity builds an identity from a possibly relative path.
// The display name defaults to the base directory name.
func NewRepositoryIdentity(path string) (RepositoryIdentity, error) {
	if path == "" {
		return RepositoryIdentity{}, fmt.Errorf("empty repository path")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return RepositoryIdentity{}, fmt.Errorf("failed to resolve repository path: %w", err)
	}

	return RepositoryIdentity{
		Name: filepath.Base(abs),
		Path: abs,
	}, nil
}

// Key returns the cache and identity key of the repository.
func (r RepositoryIdentity) Key() string {
	return r.Path
}

// AccessGrant is the persisted sandbox permission record for one path
type AccessGrant struct {
	Active    bool
	CreatedAt time.Time
	Path      string
	Stale     bool
	Token     []byte
}

// SessionCacheEntry is the cached payload of one loaded repository.
// It is only valid for Path and is replaced wholesale, never mutated.
type SessionCacheEntry struct {
	Branches    []Branch
	Commits     []AnnotatedCommit
	Files       []FileStatus
	LastUpdated time.Time
	Path        string
	RemoteURL   string
	Submodules  []string
	Tags        []Tag
}

// LocalBranches returns the non-remote branches in source order
func (e *SessionCacheEntry) LocalBranches() []Branch {
	return filterBranches(e.Branches, false)
}

// RemoteBranches returns the remote-tracking branches in source order
func (e *SessionCacheEntry) RemoteBranches() []Branch {
	return filterBranches(e.Branches, true)
}

// CurrentBranch returns the checked out branch, if any
func (e *SessionCacheEntry) CurrentBranch() (Branch, bool) {
	for _, b := range e.Branches {
		if b.IsCurrent {
			return b, true
		}
	}
	return Branch{}, false
}

func filterBranches(branches []Branch, remote bool) []Branch {
	result := make([]Branch, 0, len(branches))
	for _, b := range branches {
		if b.IsRemote == remote {
			result = append(result, b)
		}
	}
	return result
}
