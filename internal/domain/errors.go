package domain

import "errors"

var (
	ErrNotAGitRepository  = errors.New("not a git repository")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrRepositoryNotFound = errors.New("repository not found")

	// ErrAccessDenied is the parent of every access grant failure. A session that
	// fails with it needs the user to authorize the path again.
	ErrAccessDenied = errors.New("repository requires re-authorization")

	// ErrFetchFailed marks a transient retrieval failure; the next open starts clean.
	ErrFetchFailed = errors.New("fetch failed")

	// ErrCacheStateViolation is a programming error and should never reach users.
	ErrCacheStateViolation = errors.New("cache state violation")

	ErrAuthorizationDeclined = errors.New("authorization declined")
	ErrRecentNotFound        = errors.New("recent repository not found")
	ErrTokenNotFound         = errors.New("access token not found")
)

// IsTerminal reports whether err ends an open attempt without any retry path.
func IsTerminal(err error) bool {
	return errors.Is(err, ErrRepositoryNotFound) || errors.Is(err, ErrNotAGitRepository)
}

// IsRetryable reports whether the same open can simply be tried again.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrFetchFailed)
}
