package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stephan-zhuchen/fastgit/internal/domain"
	"github.com/stephan-zhuchen/fastgit/internal/services"
	"github.com/stephan-zhuchen/fastgit/internal/tree"
)

func sampleBranches() []domain.Branch {
	return []domain.Branch{
		{Name: "main", IsCurrent: true, TargetSHA: "1111111aaaa", Upstream: "origin/main"},
		{Name: "feature/login", TargetSHA: "2222222bbbb"},
		{Name: "feature/ui/theme", TargetSHA: "3333333cccc"},
	}
}

func branchTree() *tree.Tree[domain.Branch] {
	return tree.Build(sampleBranches(), func(b domain.Branch) string { return b.Name }, tree.DefaultSeparator)
}

func TestRenderTree_ExpandAll(t *testing.T) {
	bt := branchTree()
	var buf bytes.Buffer

	renderTree(&buf, bt, expandAll(bt), branchLeaf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "▾ feature/", lines[0])
	assert.Equal(t, "  ▾ ui/", lines[1])
	assert.Equal(t, "      theme 3333333", lines[2])
	assert.Equal(t, "    login 2222222", lines[3])
	assert.Equal(t, "  * main 1111111 -> origin/main", lines[4])
}

func TestRenderTree_Collapsed(t *testing.T) {
	bt := branchTree()
	var buf bytes.Buffer

	renderTree(&buf, bt, tree.NewExpansion(), branchLeaf)

	out := buf.String()
	assert.Contains(t, out, "▸ feature/")
	assert.Contains(t, out, "* main")
	assert.NotContains(t, out, "login")
}

func TestRenderTree_Files(t *testing.T) {
	files := []domain.FileStatus{
		{Path: "src/app.go", Staged: 'M', Unstaged: ' '},
		{Path: "README.md", Staged: '?', Unstaged: '?'},
	}
	ft := tree.Build(files, func(f domain.FileStatus) string { return f.Path }, tree.DefaultSeparator)
	var buf bytes.Buffer

	renderTree(&buf, ft, expandAll(ft), fileLeaf)

	out := buf.String()
	assert.Contains(t, out, "▾ src/")
	assert.Contains(t, out, "M  app.go")
	assert.Contains(t, out, "?? README.md")
}

func TestRenderLog_Decorations(t *testing.T) {
	commits := []domain.AnnotatedCommit{
		{
			Commit: domain.Commit{
				Author:    "Ada",
				Message:   "Add parser\n\nlong body",
				ShortSHA:  "abc1234",
				Timestamp: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			},
			Branches: []string{"main", "origin/main"},
			Tags:     []string{"v1.0"},
		},
		{
			Commit:   domain.Commit{Author: "Bob", Message: "Init", ShortSHA: "def5678"},
			Branches: []string{},
			Tags:     []string{},
		},
	}
	var buf bytes.Buffer

	renderLog(&buf, commits, map[string]bool{"origin/main": true})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "abc1234 (main, origin/main, tag: v1.0) Add parser Ada, 2024-01-02 03:04:05"))
	assert.True(t, strings.HasPrefix(lines[1], "def5678 Init Bob"))
}

func TestDescribeHead(t *testing.T) {
	tests := []struct {
		name  string
		entry *domain.SessionCacheEntry
		want  string
	}{
		{
			name:  "unborn",
			entry: &domain.SessionCacheEntry{},
			want:  "(no commits yet)",
		},
		{
			name: "on branch",
			entry: &domain.SessionCacheEntry{
				Branches: []domain.Branch{{Name: "main", IsCurrent: true}},
				Commits:  []domain.AnnotatedCommit{{Commit: domain.Commit{ShortSHA: "abc1234"}}},
			},
			want: "main @ abc1234",
		},
		{
			name: "detached",
			entry: &domain.SessionCacheEntry{
				Branches: []domain.Branch{{Name: "main"}},
				Commits:  []domain.AnnotatedCommit{{Commit: domain.Commit{ShortSHA: "abc1234"}}},
			},
			want: "detached @ abc1234",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describeHead(tt.entry))
		})
	}
}

func TestRenderTags(t *testing.T) {
	date := time.Date(2024, 5, 6, 7, 8, 9, 0, time.Local)
	tags := []domain.Tag{
		{Name: "v1.0", TargetSHA: "aaaaaaaaaaaa", Annotated: true, Date: &date, Message: "Release 1.0\n\nnotes"},
		{Name: "nightly", TargetSHA: "bbbbbbb"},
	}
	var buf bytes.Buffer

	renderTags(&buf, tags)

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "aaaaaaa")
	assert.Contains(t, out, "annotated")
	assert.Contains(t, out, "2024-05-06 07:08:09")
	assert.Contains(t, out, "Release 1.0")
	assert.NotContains(t, out, "notes")
	assert.Contains(t, out, "lightweight")
	assert.Contains(t, out, "Total: 2 tags")
}

func TestRenderGrantsAndRecents(t *testing.T) {
	var buf bytes.Buffer
	renderGrants(&buf, []domain.AccessGrant{
		{Path: "/repos/a", Active: true},
		{Path: "/repos/b"},
	})
	assert.Contains(t, buf.String(), "/repos/a")
	assert.Contains(t, buf.String(), "✓")
	assert.Contains(t, buf.String(), "Total: 2 grants")

	buf.Reset()
	renderRecents(&buf, []domain.RepositoryIdentity{
		{Name: "a", Path: "/repos/a", RemoteURL: "git@example.com:a.git"},
	})
	assert.Contains(t, buf.String(), "git@example.com:a.git")
	assert.Contains(t, buf.String(), "Total: 1 repositories")
}

func TestSnapshotJSON(t *testing.T) {
	loaded := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	snap := services.Snapshot{
		Entry: &domain.SessionCacheEntry{
			LastUpdated: loaded,
			Path:        "/repos/a",
			RemoteURL:   "https://example.com/a.git",
		},
		Identity: domain.RepositoryIdentity{Name: "a", Path: "/repos/a"},
		Status:   services.StatusReady,
	}

	out := snapshotJSON(snap)

	assert.Equal(t, "ready", out.Status)
	assert.Equal(t, "https://example.com/a.git", out.RemoteURL)
	require.NotNil(t, out.Loaded)
	assert.Equal(t, loaded, *out.Loaded)
	assert.Empty(t, out.Error)

	failed := snapshotJSON(services.Snapshot{
		Err:      domain.ErrAccessDenied,
		Identity: domain.RepositoryIdentity{Name: "b", Path: "/repos/b"},
		Status:   services.StatusNeedsAuthorization,
	})
	assert.Equal(t, domain.ErrAccessDenied.Error(), failed.Error)
	assert.Nil(t, failed.Loaded)
}
