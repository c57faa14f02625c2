package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/stephan-zhuchen/fastgit/internal/config"
	"github.com/stephan-zhuchen/fastgit/internal/domain"
	"github.com/stephan-zhuchen/fastgit/internal/logging"
	"github.com/stephan-zhuchen/fastgit/internal/ports"
)

// askFunc shows the authorization prompt and returns the chosen directory
// and whether the user granted it
type askFunc func(ctx context.Context, path string) (dir string, granted bool, err error)

// Authorizer implements ports.Authorizer with an interactive terminal form
type Authorizer struct {
	accessible bool
	ask        askFunc
	assumeYes  bool
}

// Verify interface compliance at compile time
var _ ports.Authorizer = (*Authorizer)(nil)

// Option configures an Authorizer
type Option func(*Authorizer)

// WithAccessible renders the form in huh's accessible (line based) mode
func WithAccessible(accessible bool) Option {
	return func(a *Authorizer) {
		a.accessible = accessible
	}
}

// WithAssumeYes grants every request without prompting
func WithAssumeYes(assumeYes bool) Option {
	return func(a *Authorizer) {
		a.assumeYes = assumeYes
	}
}

// NewAuthorizer creates a new Authorizer
func NewAuthorizer(opts ...Option) *Authorizer {
	a := &Authorizer{}
	a.ask = a.askForm
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RequestAuthorization implements Authorizer.RequestAuthorization
func (a *Authorizer) RequestAuthorization(ctx context.Context, path string) (string, error) {
	logging.Logger.Info("Requesting repository authorization", "path", path, "assume_yes", a.assumeYes)

	dir := path
	if !a.assumeYes {
		chosen, granted, err := a.ask(ctx, path)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
				logging.Logger.Info("Authorization prompt aborted", "path", path)
				return "", domain.ErrAuthorizationDeclined
			}
			return "", fmt.Errorf("failed to show authorization prompt: %w", err)
		}
		if !granted {
			logging.Logger.Info("User declined authorization", "path", path)
			return "", domain.ErrAuthorizationDeclined
		}
		dir = chosen
	}

	dir, err := validateDir(dir)
	if err != nil {
		return "", err
	}
	logging.Logger.Info("Authorization granted", "path", path, "dir", dir)
	return dir, nil
}

func (a *Authorizer) askForm(ctx context.Context, path string) (string, bool, error) {
	dir := path
	granted := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Repository directory").
				Description("fastgit needs access to this directory to read the repository").
				Value(&dir).
				Validate(func(s string) error {
					_, err := validateDir(s)
					return err
				}),
			huh.NewConfirm().
				Title("Grant access?").
				Affirmative("Grant").
				Negative("Cancel").
				Value(&granted),
		),
	).WithAccessible(a.accessible)

	if err := form.RunWithContext(ctx); err != nil {
		return "", false, err
	}
	return dir, granted, nil
}

// validateDir expands and checks that dir is an existing directory
func validateDir(dir string) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("directory is required")
	}
	abs, err := filepath.Abs(config.ExpandPath(dir))
	if err != nil {
		return "", fmt.Errorf("failed to resolve directory: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", abs)
	}
	return abs, nil
}
