package services

import (
	"context"
	"fmt"

	"github.com/stephan-zhuchen/fastgit/internal/domain"
	"github.com/stephan-zhuchen/fastgit/internal/logging"
)

// Recents returns the recently opened repositories, newest first
func (c *SessionCoordinator) Recents(ctx context.Context) ([]domain.RepositoryIdentity, error) {
	if err := c.ensureRecents(ctx); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.RepositoryIdentity(nil), c.recents...), nil
}

// RemoveRecent forgets a repository: its session is closed, it leaves the
// recents list and its access grant is dropped
func (c *SessionCoordinator) RemoveRecent(ctx context.Context, path string) error {
	if err := c.ensureRecents(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	idx := -1
	for i, r := range c.recents {
		if r.Path == path {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return fmt.Errorf("%s: %w", path, domain.ErrRecentNotFound)
	}
	identity := c.recents[idx]
	c.recents = append(c.recents[:idx:idx], c.recents[idx+1:]...)
	recents := append([]domain.RepositoryIdentity(nil), c.recents...)
	c.mu.Unlock()

	c.Close(ctx, identity)

	if err := c.access.Invalidate(ctx, path); err != nil {
		logging.Logger.Warn("Failed to drop access grant", "path", path, "error", err)
	}
	if c.state != nil {
		if err := c.state.SaveRecents(ctx, recents); err != nil {
			return fmt.Errorf("failed to persist recents: %w", err)
		}
	}
	logging.Logger.Info("Removed recent repository", "path", path)
	return nil
}

// ensureRecents loads the persisted recents once. Concurrent first callers
// share a single read.
func (c *SessionCoordinator) ensureRecents(ctx context.Context) error {
	c.mu.Lock()
	loaded := c.recentsLoaded
	c.mu.Unlock()
	if loaded || c.state == nil {
		return nil
	}

	_, err, _ := c.recentsLoad.Do("recents", func() (any, error) {
		c.mu.Lock()
		loaded := c.recentsLoaded
		c.mu.Unlock()
		if loaded {
			return nil, nil
		}

		recents, err := c.state.ListRecents(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load recents: %w", err)
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		if len(recents) > c.recentsLimit {
			recents = recents[:c.recentsLimit]
		}
		c.recents = recents
		c.recentsLoaded = true
		return nil, nil
	})
	return err
}

// bumpRecentLocked moves identity to the front, dropping the oldest entry past the limit
func (c *SessionCoordinator) bumpRecentLocked(identity domain.RepositoryIdentity) {
	recents := make([]domain.RepositoryIdentity, 0, len(c.recents)+1)
	recents = append(recents, identity)
	for _, r := range c.recents {
		if r.Path != identity.Path {
			recents = append(recents, r)
		}
	}
	if len(recents) > c.recentsLimit {
		recents = recents[:c.recentsLimit]
	}
	c.recents = recents
}
