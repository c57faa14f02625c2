package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/stephan-zhuchen/fastgit/internal/domain"
	"github.com/stephan-zhuchen/fastgit/internal/ports"
)

const (
	branchFormat = "%(refname)%00%(objectname)%00%(upstream:short)%00%(HEAD)"
	tagFormat    = "%(refname:strip=2)%00%(objecttype)%00%(objectname)%00%(*objectname)%00%(taggername)%00%(taggerdate:unix)%00%(contents:subject)"
)

// ListBranches implements RefLister.ListBranches. Local branches come first,
// then remote-tracking branches, each in refname order.
func (r *CLIRepository) ListBranches(ctx context.Context, h ports.RepositoryHandle) ([]domain.Branch, error) {
	out, err := r.run(ctx, h.WorkDir, "for-each-ref", "--format="+branchFormat, "refs/heads", "refs/remotes")
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	return parseBranches(out), nil
}

func parseBranches(out string) []domain.Branch {
	branches := []domain.Branch{}
	for _, line := range strings.Split(out, "\n") {
		parts := strings.Split(line, "\x00")
		if len(parts) < 4 {
			continue
		}

		refname := parts[0]
		b := domain.Branch{
			IsCurrent: parts[3] == "*",
			TargetSHA: parts[1],
			Upstream:  parts[2],
		}
		switch {
		case strings.HasPrefix(refname, "refs/heads/"):
			b.Name = strings.TrimPrefix(refname, "refs/heads/")
		case strings.HasPrefix(refname, "refs/remotes/"):
			b.Name = strings.TrimPrefix(refname, "refs/remotes/")
			b.IsRemote = true
			// origin/HEAD is a symbolic alias, not a branch
			if strings.HasSuffix(b.Name, "/HEAD") {
				continue
			}
		default:
			continue
		}
		branches = append(branches, b)
	}
	return branches
}

// ListTags implements RefLister.ListTags. Annotated tags report the commit they peel to.
func (r *CLIRepository) ListTags(ctx context.Context, h ports.RepositoryHandle) ([]domain.Tag, error) {
	out, err := r.run(ctx, h.WorkDir, "for-each-ref", "--format="+tagFormat, "refs/tags")
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return parseTags(out), nil
}

func parseTags(out string) []domain.Tag {
	tags := []domain.Tag{}
	for _, line := range strings.Split(out, "\n") {
		parts := strings.Split(line, "\x00")
		if len(parts) < 7 {
			continue
		}

		t := domain.Tag{
			Name:      parts[0],
			TargetSHA: parts[2],
		}
		if parts[1] == "tag" {
			t.Annotated = true
			t.Message = parts[6]
			t.Tagger = parts[4]
			if parts[3] != "" {
				t.TargetSHA = parts[3]
			}
			if secs, err := strconv.ParseInt(parts[5], 10, 64); err == nil {
				date := time.Unix(secs, 0).UTC()
				t.Date = &date
			}
		}
		tags = append(tags, t)
	}
	return tags
}

// ListSubmodulePaths implements RefLister.ListSubmodulePaths
func (r *CLIRepository) ListSubmodulePaths(ctx context.Context, h ports.RepositoryHandle) ([]string, error) {
	if _, err := os.Stat(filepath.Join(h.WorkDir, ".gitmodules")); os.IsNotExist(err) {
		return []string{}, nil
	}

	out, err := r.run(ctx, h.WorkDir, "config", "--file", ".gitmodules", "--get-regexp", `^submodule\..*\.path$`)
	if err != nil {
		// exit code 1: the file has no submodule paths
		if exitCode(err) == 1 {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list submodules: %w", err)
	}

	paths := []string{}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if _, path, ok := strings.Cut(line, " "); ok && path != "" {
			paths = append(paths, path)
		}
	}
	return paths, nil
}
