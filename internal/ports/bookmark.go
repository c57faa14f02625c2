package ports

import "context"

// AccessSession is a started sandbox access scope. Stop ends it.
type AccessSession interface {
	Stop() error
}

// Bookmarker creates and resolves opaque access tokens for directories
type Bookmarker interface {
	// Create captures a token for dir
	Create(dir string) ([]byte, error)

	// Resolve decodes token into the path it refers to. stale is true when the
	// token still resolves but should be re-created from resolved.
	Resolve(token []byte) (resolved string, stale bool, err error)

	// StartAccess begins an access scope for a resolved path
	StartAccess(resolved string) (AccessSession, error)
}

// Authorizer asks the user to grant access to a repository directory
type Authorizer interface {
	// RequestAuthorization returns the directory the user granted, or
	// domain.ErrAuthorizationDeclined
	RequestAuthorization(ctx context.Context, path string) (dir string, err error)
}
