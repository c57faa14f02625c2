package access

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stephan-zhuchen/fastgit/internal/domain"
	"github.com/stephan-zhuchen/fastgit/internal/logging"
	"github.com/stephan-zhuchen/fastgit/internal/ports"
)

// Handle is an active access scope for one path. Release it when done.
type Handle struct {
	ID        string
	Path      string
	Resolved  string
	StartedAt time.Time

	session ports.AccessSession
	store   *Store
}

// Release stops access if h is still the active handle for its path.
// Releasing a handle that was already replaced does nothing.
func (h *Handle) Release() {
	h.store.releaseHandle(h)
}

// Store owns the lifetime of access grants. At most one handle is active per path.
type Store struct {
	authorizer ports.Authorizer
	bookmarker ports.Bookmarker
	tokens     ports.TokenStore

	mu      sync.Mutex
	active  map[string]*Handle
	flights map[string]*flight
}

// flight is one restore or authorization shared by every EnsureAccess
// caller waiting on the same path
type flight struct {
	cancel  context.CancelFunc
	done    chan struct{}
	err     error
	handle  *Handle
	waiters int
}

// NewStore creates a Store. authorizer may be nil, in which case paths
// without a token fail with ErrTokenMissing.
func NewStore(tokens ports.TokenStore, bookmarker ports.Bookmarker, authorizer ports.Authorizer) *Store {
	return &Store{
		active:     make(map[string]*Handle),
		authorizer: authorizer,
		bookmarker: bookmarker,
		flights:    make(map[string]*flight),
		tokens:     tokens,
	}
}

// EnsureAccess returns the active handle for path, restoring the persisted
// token or asking for authorization when there is none. Concurrent callers
// share one flow; it is cancelled only when every caller has given up, and
// a handle nobody waits for any more is stopped instead of kept.
func (s *Store) EnsureAccess(ctx context.Context, path string) (*Handle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if h := s.active[path]; h != nil {
		s.mu.Unlock()
		return h, nil
	}
	f, ok := s.flights[path]
	if ok {
		f.waiters++
	} else {
		flightCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		f = &flight{
			cancel:  cancel,
			done:    make(chan struct{}),
			waiters: 1,
		}
		s.flights[path] = f
		go s.run(flightCtx, path, f)
	}
	s.mu.Unlock()

	return s.wait(ctx, path, f)
}

// run restores access for path and hands the result to the waiters of f
func (s *Store) run(ctx context.Context, path string, f *flight) {
	defer f.cancel()

	h, err := s.restore(ctx, path)

	s.mu.Lock()
	if s.flights[path] == f {
		delete(s.flights, path)
	}
	abandoned := err == nil && f.waiters == 0
	if err == nil && !abandoned {
		s.active[path] = h
	}
	f.handle, f.err = h, err
	close(f.done)
	s.mu.Unlock()

	if abandoned {
		logging.Logger.Debug("Access restored after every caller left, stopping", "path", path, "handle", h.ID)
		if stopErr := h.session.Stop(); stopErr != nil {
			logging.Logger.Warn("Failed to stop access", "path", path, "error", stopErr)
		}
	}
}

// wait blocks until f finishes or ctx is done
func (s *Store) wait(ctx context.Context, path string, f *flight) (*Handle, error) {
	select {
	case <-f.done:
		return f.handle, f.err
	case <-ctx.Done():
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	select {
	case <-f.done:
		// finished while we were cancelled; the handle is registered and ours
		return f.handle, f.err
	default:
	}

	f.waiters--
	if f.waiters == 0 {
		if s.flights[path] == f {
			delete(s.flights, path)
		}
		f.cancel()
		logging.Logger.Debug("Access request cancelled by all callers", "path", path)
	}
	return nil, ctx.Err()
}

// CreateGrant persists a new token for path, overwriting any previous one.
// It reports false on any failure; the caller must not assume access.
func (s *Store) CreateGrant(ctx context.Context, path, dir string) bool {
	token, err := s.bookmarker.Create(dir)
	if err != nil {
		logging.Logger.Warn("Failed to create access token", "path", path, "dir", dir, "error", err)
		return false
	}
	if err := s.tokens.PutToken(ctx, path, token); err != nil {
		logging.Logger.Warn("Failed to persist access token", "path", path, "error", err)
		return false
	}
	logging.Logger.Info("Access grant created", "path", path)
	return true
}

// ReleaseAccess stops active access for path. Calling it without active access is a no-op.
func (s *Store) ReleaseAccess(path string) {
	s.mu.Lock()
	h, ok := s.active[path]
	delete(s.active, path)
	s.mu.Unlock()

	if ok {
		s.stop(h)
	}
}

func (s *Store) releaseHandle(h *Handle) {
	s.mu.Lock()
	current := s.active[h.Path] == h
	if current {
		delete(s.active, h.Path)
	}
	s.mu.Unlock()

	if current {
		s.stop(h)
	}
}

func (s *Store) stop(h *Handle) {
	if err := h.session.Stop(); err != nil {
		logging.Logger.Warn("Failed to stop access", "path", h.Path, "error", err)
	}
	logging.Logger.Debug("Access released", "path", h.Path, "handle", h.ID)
}

// Invalidate releases access for path and drops its persisted token
func (s *Store) Invalidate(ctx context.Context, path string) error {
	s.ReleaseAccess(path)
	if err := s.tokens.DeleteToken(ctx, path); err != nil && !errors.Is(err, domain.ErrTokenNotFound) {
		return fmt.Errorf("failed to delete access token: %w", err)
	}
	logging.Logger.Info("Access grant invalidated", "path", path)
	return nil
}

// IsActive reports whether path currently has an active handle
func (s *Store) IsActive(path string) bool {
	return s.lookup(path) != nil
}

// Grants lists persisted grants sorted by path, with Active set for paths
// holding a handle
func (s *Store) Grants(ctx context.Context) ([]domain.AccessGrant, error) {
	grants, err := s.tokens.ListTokens(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list access tokens: %w", err)
	}

	s.mu.Lock()
	for i := range grants {
		_, grants[i].Active = s.active[grants[i].Path]
	}
	s.mu.Unlock()

	sort.Slice(grants, func(i, j int) bool {
		return grants[i].Path < grants[j].Path
	})
	return grants, nil
}

// Close cancels pending requests and releases every active handle
func (s *Store) Close() {
	s.mu.Lock()
	for _, f := range s.flights {
		f.cancel()
	}
	paths := make([]string, 0, len(s.active))
	for path := range s.active {
		paths = append(paths, path)
	}
	s.mu.Unlock()

	for _, path := range paths {
		s.ReleaseAccess(path)
	}
}

func (s *Store) lookup(path string) *Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active[path]
}

func (s *Store) restore(ctx context.Context, path string) (*Handle, error) {
	token, err := s.tokens.GetToken(ctx, path)
	switch {
	case errors.Is(err, domain.ErrTokenNotFound):
		token, err = s.authorize(ctx, path)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, newError(path, KindRestoreFailed, err)
	}

	resolved, stale, err := s.bookmarker.Resolve(token)
	if err != nil {
		return nil, newError(path, KindRestoreFailed, err)
	}

	if stale {
		logging.Logger.Info("Access token is stale, recreating", "path", path, "resolved", resolved)
		if !s.CreateGrant(ctx, path, resolved) {
			return nil, newError(path, KindTokenStale, nil)
		}
	}

	session, err := s.bookmarker.StartAccess(resolved)
	if err != nil {
		return nil, newError(path, KindRestoreFailed, err)
	}

	h := &Handle{
		ID:        uuid.New().String(),
		Path:      path,
		Resolved:  resolved,
		StartedAt: time.Now(),
		session:   session,
		store:     s,
	}
	logging.Logger.Debug("Access started", "path", path, "handle", h.ID)
	return h, nil
}

func (s *Store) authorize(ctx context.Context, path string) ([]byte, error) {
	if s.authorizer == nil {
		return nil, newError(path, KindTokenMissing, nil)
	}

	dir, err := s.authorizer.RequestAuthorization(ctx, path)
	if err != nil {
		if errors.Is(err, domain.ErrAuthorizationDeclined) || errors.Is(err, context.Canceled) {
			return nil, newError(path, KindUserDeclined, err)
		}
		return nil, newError(path, KindRestoreFailed, err)
	}

	token, err := s.bookmarker.Create(dir)
	if err != nil {
		return nil, newError(path, KindRestoreFailed, err)
	}
	if err := s.tokens.PutToken(ctx, path, token); err != nil {
		// Access still works for this run; the next start prompts again.
		logging.Logger.Warn("Failed to persist access token", "path", path, "error", err)
	}
	logging.Logger.Info("Access authorized", "path", path, "dir", dir)
	return token, nil
}
