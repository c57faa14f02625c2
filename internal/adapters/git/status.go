package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/stephan-zhuchen/fastgit/internal/domain"
	"github.com/stephan-zhuchen/fastgit/internal/ports"
)

// ListFileStatuses implements WorkingTreeInspector.ListFileStatuses
func (r *CLIRepository) ListFileStatuses(ctx context.Context, h ports.RepositoryHandle) ([]domain.FileStatus, error) {
	out, err := r.run(ctx, h.WorkDir, "status", "--porcelain=v1", "-z", "--untracked-files=all")
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}
	return parsePorcelain(out), nil
}

// parsePorcelain parses `git status --porcelain=v1 -z`. Renames and copies
// carry their source path as an extra NUL-terminated entry, which is skipped.
func parsePorcelain(out string) []domain.FileStatus {
	files := []domain.FileStatus{}
	entries := strings.Split(out, "\x00")
	for i := 0; i < len(entries); i++ {
		entry := entries[i]
		if len(entry) < 4 {
			continue
		}

		fs := domain.FileStatus{
			Path:     entry[3:],
			Staged:   entry[0],
			Unstaged: entry[1],
		}
		files = append(files, fs)

		if isRenameOrCopy(fs.Staged) || isRenameOrCopy(fs.Unstaged) {
			i++
		}
	}
	return files
}

func isRenameOrCopy(code byte) bool {
	return code == 'R' || code == 'C'
}
