package ports

import (
	"context"

	"github.com/stephan-zhuchen/fastgit/internal/domain"
)

// RepositoryHandle is an opened repository. HeadSHA is empty for an unborn HEAD.
type RepositoryHandle struct {
	GitDir  string
	HeadRef string
	HeadSHA string
	WorkDir string
}

// Unborn reports whether HEAD points at a branch with no commits yet
func (h RepositoryHandle) Unborn() bool {
	return h.HeadSHA == ""
}

// RepoOpener opens repositories on disk
type RepoOpener interface {
	// OpenRepository fails with domain.ErrRepositoryNotFound, domain.ErrNotAGitRepository
	// or domain.ErrPermissionDenied
	OpenRepository(ctx context.Context, path string) (RepositoryHandle, error)
}

// RefLister lists the references of an opened repository
type RefLister interface {
	ListBranches(ctx context.Context, h RepositoryHandle) ([]domain.Branch, error)
	ListSubmodulePaths(ctx context.Context, h RepositoryHandle) ([]string, error)
	ListTags(ctx context.Context, h RepositoryHandle) ([]domain.Tag, error)
}

// HistoryWalker walks commit history
type HistoryWalker interface {
	// WalkHistory returns up to maxCount commits reachable from startSHA, newest first
	WalkHistory(ctx context.Context, h RepositoryHandle, startSHA string, maxCount int) ([]domain.Commit, error)
}

// WorkingTreeInspector reports working tree state
type WorkingTreeInspector interface {
	GetRemoteURL(ctx context.Context, h RepositoryHandle) string
	ListFileStatuses(ctx context.Context, h RepositoryHandle) ([]domain.FileStatus, error)
}

// GitRepository is the composite interface
type GitRepository interface {
	HistoryWalker
	RefLister
	RepoOpener
	WorkingTreeInspector
}
