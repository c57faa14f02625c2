package ports

import (
	"context"

	"github.com/stephan-zhuchen/fastgit/internal/domain"
)

// RecentsStore persists the recently opened repositories, newest first
type RecentsStore interface {
	ListRecents(ctx context.Context) ([]domain.RepositoryIdentity, error)
	SaveRecents(ctx context.Context, recents []domain.RepositoryIdentity) error
}

// LastActiveStore persists the path of the last active repository
type LastActiveStore interface {
	// GetLastActive returns "" when nothing was recorded
	GetLastActive(ctx context.Context) (string, error)
	SetLastActive(ctx context.Context, path string) error
}

// TokenStore persists access tokens keyed by absolute path
type TokenStore interface {
	DeleteToken(ctx context.Context, path string) error
	// GetToken fails with domain.ErrTokenNotFound when path has no token
	GetToken(ctx context.Context, path string) ([]byte, error)
	ListTokens(ctx context.Context) ([]domain.AccessGrant, error)
	PutToken(ctx context.Context, path string, token []byte) error
}

// StateRepository is the composite interface
type StateRepository interface {
	LastActiveStore
	RecentsStore
	TokenStore
	Close() error
}
