package git

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/stephan-zhuchen/fastgit/internal/domain"
	"github.com/stephan-zhuchen/fastgit/internal/logging"
	"github.com/stephan-zhuchen/fastgit/internal/ports"
)

const (
	fieldSep  = "\x1f"
	recordSep = "\x1e"

	// hash, short hash, author, email, author time, parents, raw body
	logFormat = "%H%x1f%h%x1f%an%x1f%ae%x1f%at%x1f%P%x1f%B%x1e"
)

// WalkHistory implements HistoryWalker.WalkHistory. An empty startSHA walks
// from HEAD; an unborn HEAD yields no commits. maxCount <= 0 means no limit.
func (r *CLIRepository) WalkHistory(ctx context.Context, h ports.RepositoryHandle, startSHA string, maxCount int) ([]domain.Commit, error) {
	if startSHA == "" {
		startSHA = h.HeadSHA
	}
	if startSHA == "" {
		logging.Logger.Debug("Unborn HEAD, no history", "path", h.WorkDir)
		return []domain.Commit{}, nil
	}

	args := []string{"log", "--format=" + logFormat}
	if maxCount > 0 {
		args = append(args, "-n", strconv.Itoa(maxCount))
	}
	args = append(args, startSHA, "--")

	out, err := r.run(ctx, h.WorkDir, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to walk history: %w", err)
	}

	commits, err := parseLog(out)
	if err != nil {
		return nil, err
	}
	logging.Logger.Debug("History walked", "path", h.WorkDir, "start", startSHA, "commits", len(commits))
	return commits, nil
}

func parseLog(out string) ([]domain.Commit, error) {
	commits := []domain.Commit{}
	for _, record := range strings.Split(out, recordSep) {
		record = strings.TrimLeft(record, "\n")
		if record == "" {
			continue
		}

		fields := strings.SplitN(record, fieldSep, 7)
		if len(fields) != 7 {
			return nil, fmt.Errorf("failed to parse log record: expected 7 fields, got %d", len(fields))
		}

		secs, err := strconv.ParseInt(fields[4], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse commit time %q: %w", fields[4], err)
		}

		parents := strings.Fields(fields[5])
		if parents == nil {
			parents = []string{}
		}

		commits = append(commits, domain.Commit{
			Author:      fields[2],
			AuthorEmail: fields[3],
			Message:     strings.TrimRight(fields[6], "\n"),
			Parents:     parents,
			SHA:         fields[0],
			ShortSHA:    fields[1],
			Timestamp:   time.Unix(secs, 0).UTC(),
		})
	}
	return commits, nil
}
