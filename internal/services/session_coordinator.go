package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/stephan-zhuchen/fastgit/internal/access"
	"github.com/stephan-zhuchen/fastgit/internal/cache"
	"github.com/stephan-zhuchen/fastgit/internal/domain"
	"github.com/stephan-zhuchen/fastgit/internal/logging"
	"github.com/stephan-zhuchen/fastgit/internal/ports"
	"github.com/stephan-zhuchen/fastgit/internal/tree"
)

const (
	DefaultMaxCommits   = 500
	DefaultRecentsLimit = 10

	// a load discarded by concurrent invalidation is retried this many times
	maxLoadAttempts  = 3
	subscriberBuffer = 16
)

// AccessManager is the part of the access store the coordinator depends on
type AccessManager interface {
	EnsureAccess(ctx context.Context, path string) (*access.Handle, error)
	Invalidate(ctx context.Context, path string) error
	ReleaseAccess(path string)
}

// StateStore persists recents and the last active repository
type StateStore interface {
	ports.LastActiveStore
	ports.RecentsStore
}

// CoordinatorOptions tunes a SessionCoordinator. Zero values use the defaults.
type CoordinatorOptions struct {
	MaxCommits   int
	Now          func() time.Time
	RecentsLimit int
}

// SessionCoordinator opens, closes and refreshes repository sessions. It
// owns the open sessions, the recents list and the selection.
type SessionCoordinator struct {
	access       AccessManager
	cache        *cache.SessionCache
	git          ports.GitRepository
	maxCommits   int
	now          func() time.Time
	recentsLimit int
	recentsLoad  singleflight.Group
	state        StateStore

	mu            sync.Mutex
	expansions    map[treeKey]tree.Expansion
	lastLoaded    string
	recents       []domain.RepositoryIdentity
	recentsLoaded bool
	selection     Selection
	sessions      map[string]*session
	subscribers   map[string]map[chan Event]struct{}
	trees         map[treeKey]treeMemo
}

// NewSessionCoordinator creates a new SessionCoordinator
func NewSessionCoordinator(
	accessManager AccessManager,
	sessionCache *cache.SessionCache,
	gitRepo ports.GitRepository,
	state StateStore,
	opts CoordinatorOptions,
) *SessionCoordinator {
	if opts.MaxCommits <= 0 {
		opts.MaxCommits = DefaultMaxCommits
	}
	if opts.RecentsLimit <= 0 {
		opts.RecentsLimit = DefaultRecentsLimit
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &SessionCoordinator{
		access:       accessManager,
		cache:        sessionCache,
		expansions:   make(map[treeKey]tree.Expansion),
		git:          gitRepo,
		maxCommits:   opts.MaxCommits,
		now:          opts.Now,
		recentsLimit: opts.RecentsLimit,
		sessions:     make(map[string]*session),
		state:        state,
		subscribers:  make(map[string]map[chan Event]struct{}),
		trees:        make(map[treeKey]treeMemo),
	}
}

// Open ensures access to the repository and loads its data, from the cache
// when possible. On success the repository becomes the most recent one.
// An Open overtaken by Close returns ErrSessionClosed and keeps nothing.
func (c *SessionCoordinator) Open(ctx context.Context, identity domain.RepositoryIdentity) (*domain.SessionCacheEntry, error) {
	path := identity.Key()
	logging.Logger.Info("Opening repository", "path", path)

	c.mu.Lock()
	s, ok := c.sessions[path]
	if !ok {
		s = &session{identity: identity}
		c.sessions[path] = s
	}
	hadGrant := s.granted
	s.status = StatusLoading
	s.err = nil
	c.publishLocked(path)
	c.mu.Unlock()

	if _, err := c.access.EnsureAccess(ctx, path); err != nil {
		c.fail(path, s, err)
		return nil, fmt.Errorf("failed to ensure access: %w", err)
	}

	c.mu.Lock()
	current := c.sessions[path] == s
	if current {
		s.granted = true
	} else {
		c.abandonLocked(path)
	}
	c.mu.Unlock()
	if !current {
		return nil, ErrSessionClosed
	}

	entry, err := c.load(ctx, path, identity)
	if err != nil {
		c.mu.Lock()
		if c.sessions[path] == s && !hadGrant {
			c.access.ReleaseAccess(path)
			s.granted = false
		}
		c.mu.Unlock()
		c.fail(path, s, err)
		return nil, err
	}

	recents, ok := c.applyLoaded(ctx, s, path, identity, entry)
	if !ok {
		return nil, ErrSessionClosed
	}
	c.persist(ctx, path, recents)
	return entry, nil
}

// abandonLocked undoes what an Open acquired after Close removed its session.
// A newer session for the same path keeps the cache and the access grant.
func (c *SessionCoordinator) abandonLocked(path string) {
	if _, reopened := c.sessions[path]; reopened {
		return
	}
	c.cache.Evict(path)
	c.access.ReleaseAccess(path)
	logging.Logger.Info("Open overtaken by close, released", "path", path)
}

// load runs the cache load, retrying when a concurrent invalidation
// discarded the result
func (c *SessionCoordinator) load(ctx context.Context, path string, identity domain.RepositoryIdentity) (*domain.SessionCacheEntry, error) {
	for attempt := 1; ; attempt++ {
		entry, err := c.cache.Load(ctx, path, c.fetcher(identity))
		if !errors.Is(err, cache.ErrLoadDiscarded) {
			return entry, err
		}
		if c.cache.State(path) == cache.StateEvicted {
			return nil, ErrSessionClosed
		}
		if attempt == maxLoadAttempts {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		logging.Logger.Debug("Load discarded, retrying", "path", path, "attempt", attempt)
	}
}

// fetcher retrieves everything a session needs. It only reads from git and
// returns a fresh entry; it never touches coordinator state.
func (c *SessionCoordinator) fetcher(identity domain.RepositoryIdentity) cache.Fetcher {
	maxCommits := c.maxCommits
	now := c.now

	return func(ctx context.Context, path string) (*domain.SessionCacheEntry, error) {
		h, err := c.git.OpenRepository(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to open repository: %w", err)
		}

		var (
			branches   []domain.Branch
			commits    []domain.Commit
			files      []domain.FileStatus
			submodules []string
			tags       []domain.Tag
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			branches, err = c.git.ListBranches(gctx, h)
			return err
		})
		g.Go(func() (err error) {
			tags, err = c.git.ListTags(gctx, h)
			return err
		})
		g.Go(func() (err error) {
			submodules, err = c.git.ListSubmodulePaths(gctx, h)
			return err
		})
		g.Go(func() (err error) {
			files, err = c.git.ListFileStatuses(gctx, h)
			return err
		})
		g.Go(func() (err error) {
			commits, err = c.git.WalkHistory(gctx, h, "", maxCommits)
			return err
		})
		if err := g.Wait(); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
		}

		remoteURL := identity.RemoteURL
		if remoteURL == "" {
			remoteURL = c.git.GetRemoteURL(ctx, h)
		}

		return &domain.SessionCacheEntry{
			Branches:    branches,
			Commits:     domain.Annotate(commits, branches, tags),
			Files:       files,
			LastUpdated: now(),
			Path:        path,
			RemoteURL:   remoteURL,
			Submodules:  submodules,
			Tags:        tags,
		}, nil
	}
}

// applyLoaded records a successful load on s and returns the recents to
// persist. It reports false when s was closed in the meantime.
func (c *SessionCoordinator) applyLoaded(ctx context.Context, s *session, path string, identity domain.RepositoryIdentity, entry *domain.SessionCacheEntry) ([]domain.RepositoryIdentity, bool) {
	if err := c.ensureRecents(ctx); err != nil {
		logging.Logger.Warn("Recents unavailable, starting a new list", "error", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if identity.RemoteURL == "" {
		identity.RemoteURL = entry.RemoteURL
	}
	identity.LastOpened = c.now()

	if c.sessions[path] != s {
		c.abandonLocked(path)
		return nil, false
	}
	s.identity = identity
	s.entry = entry
	s.err = nil
	s.status = StatusReady

	if c.lastLoaded != path {
		c.selection = Selection{}
		c.lastLoaded = path
	}

	c.bumpRecentLocked(identity)
	c.publishLocked(path)

	return append([]domain.RepositoryIdentity(nil), c.recents...), true
}

func (c *SessionCoordinator) persist(ctx context.Context, path string, recents []domain.RepositoryIdentity) {
	if recents == nil || c.state == nil {
		return
	}
	if err := c.state.SaveRecents(ctx, recents); err != nil {
		logging.Logger.Warn("Failed to persist recents", "error", err)
	}
	if err := c.state.SetLastActive(ctx, path); err != nil {
		logging.Logger.Warn("Failed to persist last active repository", "path", path, "error", err)
	}
}

// fail records err on s unless s was closed or replaced
func (c *SessionCoordinator) fail(path string, s *session, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sessions[path] != s {
		return
	}
	s.entry = nil
	s.err = err
	s.status = statusForError(err)
	logging.Logger.Warn("Failed to open repository", "path", path, "status", s.status.String(), "error", err)
	c.publishLocked(path)
}

// Close evicts the session's data and releases its access. Closing twice is harmless.
func (c *SessionCoordinator) Close(ctx context.Context, identity domain.RepositoryIdentity) {
	path := identity.Key()

	c.mu.Lock()
	_, open := c.sessions[path]
	if open {
		delete(c.sessions, path)
		c.dropTreesLocked(path)
		c.publishLocked(path)
	}
	c.mu.Unlock()

	c.cache.Evict(path)
	c.access.ReleaseAccess(path)
	if open {
		logging.Logger.Info("Repository closed", "path", path)
	}
}

// Refresh drops the cached data and loads it again
func (c *SessionCoordinator) Refresh(ctx context.Context, identity domain.RepositoryIdentity) (*domain.SessionCacheEntry, error) {
	c.cache.Invalidate(identity.Key())
	c.mu.Lock()
	c.dropTreesLocked(identity.Key())
	c.mu.Unlock()

	logging.Logger.Info("Refreshing repository", "path", identity.Key())
	return c.Open(ctx, identity)
}

// Restore reopens the last active repository. It returns nil, nil when
// nothing was active.
func (c *SessionCoordinator) Restore(ctx context.Context) (*domain.SessionCacheEntry, error) {
	if c.state == nil {
		return nil, nil
	}

	path, err := c.state.GetLastActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read last active repository: %w", err)
	}
	if path == "" {
		return nil, nil
	}

	identity, err := domain.NewRepositoryIdentity(path)
	if err != nil {
		return nil, err
	}
	recents, err := c.Recents(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range recents {
		if r.Path == path {
			identity = r
			break
		}
	}

	logging.Logger.Info("Restoring last active repository", "path", path)
	return c.Open(ctx, identity)
}

// Select changes the focused reference
func (c *SessionCoordinator) Select(sel Selection) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.selection = sel
	if c.lastLoaded != "" {
		c.publishLocked(c.lastLoaded)
	}
}

// Selection returns the focused reference
func (c *SessionCoordinator) Selection() Selection {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection
}

// Snapshot returns the current view of path. Unknown paths report StatusClosed.
func (c *SessionCoordinator) Snapshot(path string) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked(path)
}

// Sessions returns snapshots of every open session
func (c *SessionCoordinator) Sessions() []Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshots := make([]Snapshot, 0, len(c.sessions))
	for path := range c.sessions {
		snapshots = append(snapshots, c.snapshotLocked(path))
	}
	return snapshots
}

func (c *SessionCoordinator) snapshotLocked(path string) Snapshot {
	s, ok := c.sessions[path]
	if !ok {
		return Snapshot{Status: StatusClosed, Identity: domain.RepositoryIdentity{Path: path}}
	}

	snap := Snapshot{
		Entry:    s.entry,
		Err:      s.err,
		Identity: s.identity,
		Status:   s.status,
	}
	if path == c.lastLoaded {
		snap.Selection = c.selection
	}
	return snap
}

// Subscribe returns a channel receiving a snapshot each time path changes,
// and a function that ends the subscription. Slow readers miss intermediate
// events but always see the latest one.
func (c *SessionCoordinator) Subscribe(path string) (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	c.mu.Lock()
	if c.subscribers[path] == nil {
		c.subscribers[path] = make(map[chan Event]struct{})
	}
	c.subscribers[path][ch] = struct{}{}
	c.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subscribers[path], ch)
			if len(c.subscribers[path]) == 0 {
				delete(c.subscribers, path)
			}
			c.mu.Unlock()
			close(ch)
		})
	}
}

func (c *SessionCoordinator) publishLocked(path string) {
	subs := c.subscribers[path]
	if len(subs) == 0 {
		return
	}

	ev := Event{Path: path, Snapshot: c.snapshotLocked(path)}
	for ch := range subs {
		for {
			select {
			case ch <- ev:
			default:
				// full: drop the oldest event and try again
				select {
				case <-ch:
				default:
				}
				continue
			}
			break
		}
	}
}
