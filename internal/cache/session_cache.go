package cache

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/golang-lru/v2/simplelru"

	"github.com/stephan-zhuchen/fastgit/internal/domain"
	"github.com/stephan-zhuchen/fastgit/internal/logging"
)

// ErrLoadDiscarded is returned to callers whose in-flight load was
// superseded by Invalidate or Evict before it finished.
var ErrLoadDiscarded = errors.New("load discarded")

// Fetcher retrieves the full data set for one repository path. It runs on a
// background goroutine and must not touch caller state.
type Fetcher func(ctx context.Context, path string) (*domain.SessionCacheEntry, error)

// Option configures a SessionCache
type Option func(*SessionCache)

// WithMaxEntries bounds the number of loaded entries. The least recently
// used entry beyond the bound drops back to empty. Zero means unbounded.
func WithMaxEntries(n int) Option {
	return func(c *SessionCache) {
		c.maxEntries = n
	}
}

// SessionCache stores loaded repository data per path and guarantees at most
// one concurrent fetch per path
type SessionCache struct {
	lru        *simplelru.LRU[string, struct{}]
	maxEntries int
	mu         sync.Mutex
	removing   bool
	slots      map[string]*slot
}

type slot struct {
	call  *call
	entry *domain.SessionCacheEntry
	state State
}

// call is one in-flight fetch shared by every concurrent Load of a path
type call struct {
	cancel  context.CancelFunc
	done    chan struct{}
	entry   *domain.SessionCacheEntry
	err     error
	waiters int
}

// NewSessionCache creates an empty cache
func NewSessionCache(opts ...Option) *SessionCache {
	c := &SessionCache{slots: make(map[string]*slot)}
	for _, opt := range opts {
		opt(c)
	}
	if c.maxEntries > 0 {
		// size is positive, so NewLRU cannot fail
		c.lru, _ = simplelru.NewLRU(c.maxEntries, c.onBoundEvict)
	}
	return c
}

// Get returns the entry for path when it is loaded, nil otherwise
func (c *SessionCache) Get(path string) *domain.SessionCacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.slots[path]
	if !ok || s.state != StateLoaded {
		return nil
	}
	c.touch(path)
	return s.entry
}

// State returns the lifecycle state of path
func (c *SessionCache) State(path string) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.slots[path]; ok {
		return s.state
	}
	return StateEmpty
}

// Len returns the number of loaded entries
func (c *SessionCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, s := range c.slots {
		if s.state == StateLoaded {
			n++
		}
	}
	return n
}

// Load returns the cached entry for path, joins a fetch already in flight, or
// starts one. The fetch outlives a single caller's ctx; it is cancelled, and
// the path reverts to empty, only when every waiting caller has given up.
func (c *SessionCache) Load(ctx context.Context, path string, fetch Fetcher) (*domain.SessionCacheEntry, error) {
	c.mu.Lock()
	s := c.slotFor(path)

	switch s.state {
	case StateLoaded:
		c.touch(path)
		entry := s.entry
		c.mu.Unlock()
		logging.Logger.Debug("Session cache hit", "path", path)
		return entry, nil
	case StateLoading:
		cl := s.call
		cl.waiters++
		c.mu.Unlock()
		logging.Logger.Debug("Joining in-flight load", "path", path)
		return c.wait(ctx, path, cl)
	}

	fetchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	cl := &call{
		cancel:  cancel,
		done:    make(chan struct{}),
		waiters: 1,
	}
	s.state = StateLoading
	s.entry = nil
	s.call = cl
	c.mu.Unlock()

	logging.Logger.Debug("Session cache miss, starting load", "path", path)
	go c.run(fetchCtx, path, cl, fetch)

	return c.wait(ctx, path, cl)
}

// run executes fetch and applies its result if the call is still current
func (c *SessionCache) run(ctx context.Context, path string, cl *call, fetch Fetcher) {
	defer cl.cancel()

	entry, err := safeFetch(ctx, path, fetch)
	if err == nil && entry == nil {
		err = fmt.Errorf("%w: fetcher returned no entry for %s", domain.ErrCacheStateViolation, path)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.slots[path]
	switch {
	case !ok || s.call != cl:
		logging.Logger.Debug("Discarding superseded load result", "path", path)
		entry, err = nil, ErrLoadDiscarded
	case err != nil:
		s.state = StateEmpty
		s.call = nil
		logging.Logger.Warn("Session load failed", "path", path, "error", err)
	default:
		s.state = StateLoaded
		s.entry = entry
		s.call = nil
		c.track(path)
		logging.Logger.Info("Session loaded", "path", path,
			"commits", len(entry.Commits),
			"branches", len(entry.Branches),
			"tags", len(entry.Tags))
	}

	cl.entry, cl.err = entry, err
	close(cl.done)
}

func safeFetch(ctx context.Context, path string, fetch Fetcher) (entry *domain.SessionCacheEntry, err error) {
	defer func() {
		if r := recover(); r != nil {
			entry = nil
			err = fmt.Errorf("%w: fetcher panicked: %v", domain.ErrFetchFailed, r)
		}
	}()
	return fetch(ctx, path)
}

// wait blocks until cl finishes or ctx is done
func (c *SessionCache) wait(ctx context.Context, path string, cl *call) (*domain.SessionCacheEntry, error) {
	select {
	case <-cl.done:
		return cl.entry, cl.err
	case <-ctx.Done():
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cl.waiters--
	if cl.waiters == 0 {
		if s, ok := c.slots[path]; ok && s.call == cl {
			s.state = StateEmpty
			s.call = nil
			logging.Logger.Debug("Load cancelled by all callers", "path", path)
		}
		cl.cancel()
	}
	return nil, ctx.Err()
}

// Invalidate drops any cached entry for path. A fetch in flight may finish
// but its result is discarded.
func (c *SessionCache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.slotFor(path)
	c.untrack(path)
	s.state = StateEmpty
	s.entry = nil
	s.call = nil
	logging.Logger.Debug("Session cache invalidated", "path", path)
}

// Evict clears path after its session closed. Reopening the path later
// loads it again.
func (c *SessionCache) Evict(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.slotFor(path)
	c.untrack(path)
	if s.call != nil {
		s.call.cancel()
	}
	s.state = StateEvicted
	s.entry = nil
	s.call = nil
	logging.Logger.Debug("Session cache evicted", "path", path)
}

func (c *SessionCache) slotFor(path string) *slot {
	s, ok := c.slots[path]
	if !ok {
		s = &slot{state: StateEmpty}
		c.slots[path] = s
	}
	return s
}

func (c *SessionCache) touch(path string) {
	if c.lru != nil {
		c.lru.Get(path)
	}
}

func (c *SessionCache) track(path string) {
	if c.lru != nil {
		c.lru.Add(path, struct{}{})
	}
}

// untrack forgets path's recency. simplelru reports removals through the
// evict callback too, so the callback is told to ignore them.
func (c *SessionCache) untrack(path string) {
	if c.lru != nil {
		c.removing = true
		c.lru.Remove(path)
		c.removing = false
	}
}

// onBoundEvict runs with c.mu held, from inside lru.Add or lru.Remove
func (c *SessionCache) onBoundEvict(path string, _ struct{}) {
	if c.removing {
		return
	}
	s, ok := c.slots[path]
	if !ok || s.state != StateLoaded {
		return
	}
	s.state = StateEmpty
	s.entry = nil
	logging.Logger.Info("Session cache bound reached, dropping entry", "path", path, "max_entries", c.maxEntries)
}
