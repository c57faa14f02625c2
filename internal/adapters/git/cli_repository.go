package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/stephan-zhuchen/fastgit/internal/domain"
	"github.com/stephan-zhuchen/fastgit/internal/logging"
	"github.com/stephan-zhuchen/fastgit/internal/ports"
)

// CLIRepository implements ports.GitRepository using local git commands
type CLIRepository struct {
	gitBinary string
}

// Verify interface compliance at compile time
var _ ports.GitRepository = (*CLIRepository)(nil)

// NewCLIRepository creates a new CLIRepository
func NewCLIRepository() *CLIRepository {
	return &CLIRepository{gitBinary: "git"}
}

// commandError carries git's stderr so callers can classify failures
type commandError struct {
	args   []string
	err    error
	stderr string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("git %s: %s", strings.Join(e.args, " "), e.stderr)
}

func (e *commandError) Unwrap() error {
	return e.err
}

// exitCode returns the process exit code of a failed git command, or -1
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

func (r *CLIRepository) run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, r.gitBinary, args...)
	cmd.Dir = dir
	// keep output stable regardless of the user's locale and pager settings
	cmd.Env = append(os.Environ(), "LC_ALL=C", "GIT_PAGER=cat", "GIT_OPTIONAL_LOCKS=0")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", &commandError{args: args, err: err, stderr: strings.TrimSpace(stderr.String())}
	}
	return stdout.String(), nil
}

// OpenRepository implements RepoOpener.OpenRepository
func (r *CLIRepository) OpenRepository(ctx context.Context, path string) (ports.RepositoryHandle, error) {
	logging.Logger.Debug("Opening repository", "path", path)

	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return ports.RepositoryHandle{}, fmt.Errorf("%s: %w", path, domain.ErrRepositoryNotFound)
	case os.IsPermission(err):
		return ports.RepositoryHandle{}, fmt.Errorf("%s: %w", path, domain.ErrPermissionDenied)
	case err != nil:
		return ports.RepositoryHandle{}, fmt.Errorf("failed to stat repository: %w", err)
	case !info.IsDir():
		return ports.RepositoryHandle{}, fmt.Errorf("%s: %w", path, domain.ErrNotAGitRepository)
	}

	out, err := r.run(ctx, path, "rev-parse", "--show-toplevel", "--absolute-git-dir")
	if err != nil {
		return ports.RepositoryHandle{}, classifyOpenError(path, err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 {
		return ports.RepositoryHandle{}, fmt.Errorf("%s: %w", path, domain.ErrNotAGitRepository)
	}

	h := ports.RepositoryHandle{WorkDir: lines[0], GitDir: lines[1]}

	// exit code 1 means HEAD does not resolve: an unborn branch
	if out, err := r.run(ctx, path, "rev-parse", "--verify", "--quiet", "HEAD^{commit}"); err == nil {
		h.HeadSHA = strings.TrimSpace(out)
	} else if exitCode(err) != 1 {
		return ports.RepositoryHandle{}, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	// detached HEAD leaves HeadRef empty
	if out, err := r.run(ctx, path, "symbolic-ref", "--quiet", "HEAD"); err == nil {
		h.HeadRef = strings.TrimSpace(out)
	}

	logging.Logger.Info("Repository opened", "path", h.WorkDir, "head", h.HeadSHA, "ref", h.HeadRef)
	return h, nil
}

func classifyOpenError(path string, err error) error {
	var cmdErr *commandError
	if errors.As(err, &cmdErr) {
		msg := strings.ToLower(cmdErr.stderr)
		switch {
		case strings.Contains(msg, "not a git repository"):
			return fmt.Errorf("%s: %w", path, domain.ErrNotAGitRepository)
		case strings.Contains(msg, "permission denied"), strings.Contains(msg, "dubious ownership"):
			return fmt.Errorf("%s: %w: %s", path, domain.ErrPermissionDenied, cmdErr.stderr)
		}
	}
	return fmt.Errorf("failed to open repository: %w", err)
}

// GetRemoteURL implements WorkingTreeInspector.GetRemoteURL
func (r *CLIRepository) GetRemoteURL(ctx context.Context, h ports.RepositoryHandle) string {
	out, err := r.run(ctx, h.WorkDir, "remote", "get-url", "origin")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}
