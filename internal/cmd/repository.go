package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/stephan-zhuchen/fastgit/internal/domain"
	"github.com/stephan-zhuchen/fastgit/internal/logging"
	"github.com/stephan-zhuchen/fastgit/internal/services"
)

// openRepository opens path through the coordinator, reusing the identity
// stored in recents so the display name and remote survive
func openRepository(ctx context.Context, container *Container, path string, refresh bool) (services.Snapshot, error) {
	identity, err := domain.NewRepositoryIdentity(path)
	if err != nil {
		return services.Snapshot{}, err
	}

	coordinator := container.SessionCoordinator
	if recents, err := coordinator.Recents(ctx); err == nil {
		for _, r := range recents {
			if r.Path == identity.Path {
				identity = r
				break
			}
		}
	} else {
		logging.Logger.Warn("Failed to load recents", "error", err)
	}

	if refresh {
		_, err = coordinator.Refresh(ctx, identity)
	} else {
		_, err = coordinator.Open(ctx, identity)
	}
	if err != nil {
		return coordinator.Snapshot(identity.Path), explainOpenError(identity.Path, err)
	}
	return coordinator.Snapshot(identity.Path), nil
}

// explainOpenError adds a hint for failures the user can act on
func explainOpenError(path string, err error) error {
	switch {
	case errors.Is(err, domain.ErrAccessDenied):
		return fmt.Errorf("%w (grant access with 'fastgit grants add %s')", err, path)
	case errors.Is(err, domain.ErrFetchFailed):
		return fmt.Errorf("%w (try 'fastgit refresh %s')", err, path)
	default:
		return err
	}
}
