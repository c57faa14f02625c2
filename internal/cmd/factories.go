package cmd

import (
	"github.com/stephan-zhuchen/fastgit/internal/access"
	adapterbookmark "github.com/stephan-zhuchen/fastgit/internal/adapters/bookmark"
	adaptergit "github.com/stephan-zhuchen/fastgit/internal/adapters/git"
	adapterprompt "github.com/stephan-zhuchen/fastgit/internal/adapters/prompt"
	adapterstorage "github.com/stephan-zhuchen/fastgit/internal/adapters/storage"
	"github.com/stephan-zhuchen/fastgit/internal/cache"
	"github.com/stephan-zhuchen/fastgit/internal/logging"
	"github.com/stephan-zhuchen/fastgit/internal/ports"
	"github.com/stephan-zhuchen/fastgit/internal/services"
)

// ContainerOptions carries the resolved CLI configuration into the container
type ContainerOptions struct {
	Accessible      bool
	AssumeYes       bool
	CacheMaxEntries int
	DBPath          string
	MaxCommits      int
	RecentsLimit    int
}

// Container holds all dependencies for the application
type Container struct {
	// Services
	AccessStore        *access.Store
	SessionCoordinator *services.SessionCoordinator

	// Internal - for cleanup only
	stateRepo ports.StateRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(opts ContainerOptions) (*Container, error) {
	stateRepo, err := adapterstorage.NewSQLiteRepository(opts.DBPath)
	if err != nil {
		return nil, err
	}

	bookmarker := adapterbookmark.NewBookmarker()
	authorizer := adapterprompt.NewAuthorizer(
		adapterprompt.WithAccessible(opts.Accessible),
		adapterprompt.WithAssumeYes(opts.AssumeYes),
	)
	gitRepo := adaptergit.NewCLIRepository()

	accessStore := access.NewStore(stateRepo, bookmarker, authorizer)
	sessionCache := cache.NewSessionCache(cache.WithMaxEntries(opts.CacheMaxEntries))
	coordinator := services.NewSessionCoordinator(accessStore, sessionCache, gitRepo, stateRepo, services.CoordinatorOptions{
		MaxCommits:   opts.MaxCommits,
		RecentsLimit: opts.RecentsLimit,
	})

	logging.Logger.Debug("Container initialized",
		"db_path", opts.DBPath,
		"cache_max_entries", opts.CacheMaxEntries,
		"max_commits", opts.MaxCommits)

	return &Container{
		AccessStore:        accessStore,
		SessionCoordinator: coordinator,
		stateRepo:          stateRepo,
	}, nil
}

// Close releases every access scope and closes the database
func (c *Container) Close() error {
	if c.AccessStore != nil {
		c.AccessStore.Close()
	}
	if c.stateRepo != nil {
		return c.stateRepo.Close()
	}
	return nil
}
