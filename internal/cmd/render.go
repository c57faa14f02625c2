package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/stephan-zhuchen/fastgit/internal/domain"
	"github.com/stephan-zhuchen/fastgit/internal/services"
	"github.com/stephan-zhuchen/fastgit/internal/theme"
	"github.com/stephan-zhuchen/fastgit/internal/tree"
)

const timeLayout = "2006-01-02 15:04:05"

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func renderSummary(w io.Writer, snap services.Snapshot) {
	entry := snap.Entry
	fmt.Fprintf(w, "%s  %s\n",
		theme.AppNameStyle.Render(snap.Identity.Name),
		theme.MutedStyle.Render(snap.Identity.Path))
	fmt.Fprintf(w, "Status:     %s\n", theme.SessionStatusStyle(snap.Status.String()).Render(snap.Status.String()))
	if entry == nil {
		return
	}

	if entry.RemoteURL != "" {
		fmt.Fprintf(w, "Remote:     %s\n", entry.RemoteURL)
	}
	fmt.Fprintf(w, "HEAD:       %s\n", describeHead(entry))
	fmt.Fprintf(w, "Branches:   %d local, %d remote\n", len(entry.LocalBranches()), len(entry.RemoteBranches()))
	fmt.Fprintf(w, "Tags:       %d\n", len(entry.Tags))
	if len(entry.Submodules) > 0 {
		fmt.Fprintf(w, "Submodules: %s\n", strings.Join(entry.Submodules, ", "))
	}
	fmt.Fprintf(w, "Commits:    %d loaded\n", len(entry.Commits))
	fmt.Fprintf(w, "Changes:    %d files\n", len(entry.Files))
	fmt.Fprintf(w, "Loaded:     %s\n", entry.LastUpdated.Format(timeLayout))
}

func describeHead(entry *domain.SessionCacheEntry) string {
	if len(entry.Commits) == 0 {
		return theme.MutedStyle.Render("(no commits yet)")
	}
	head := entry.Commits[0]
	if b, ok := entry.CurrentBranch(); ok {
		return fmt.Sprintf("%s @ %s", theme.CurrentBranchStyle.Render(b.Name), theme.SHAStyle.Render(head.ShortSHA))
	}
	return fmt.Sprintf("detached @ %s", theme.SHAStyle.Render(head.ShortSHA))
}

// renderLog prints one line per commit: sha, decorations, summary, author and date
func renderLog(w io.Writer, commits []domain.AnnotatedCommit, remotes map[string]bool) {
	for _, c := range commits {
		var line strings.Builder
		line.WriteString(theme.SHAStyle.Render(c.ShortSHA))
		if refs := decorations(c, remotes); refs != "" {
			line.WriteString(" (" + refs + ")")
		}
		line.WriteString(" " + c.Summary())
		line.WriteString(theme.MutedStyle.Render(fmt.Sprintf(" %s, %s", c.Author, c.Timestamp.Format(timeLayout))))
		fmt.Fprintln(w, line.String())
	}
}

func decorations(c domain.AnnotatedCommit, remotes map[string]bool) string {
	refs := make([]string, 0, len(c.Branches)+len(c.Tags))
	for _, b := range c.Branches {
		if remotes[b] {
			refs = append(refs, theme.RemoteBranchStyle.Render(b))
		} else {
			refs = append(refs, theme.BranchStyle.Render(b))
		}
	}
	for _, t := range c.Tags {
		refs = append(refs, theme.TagStyle.Render("tag: "+t))
	}
	return strings.Join(refs, ", ")
}

// expandAll returns an expansion with every folder of t open
func expandAll[T any](t *tree.Tree[T]) tree.Expansion {
	exp := tree.NewExpansion()
	t.Walk(func(n tree.Node[T], depth int) bool {
		if n.IsFolder() {
			exp.Set(n.Path, true)
		}
		return true
	})
	return exp
}

// renderTree prints the visible rows of t, indenting two spaces per level
func renderTree[T any](w io.Writer, t *tree.Tree[T], exp tree.Expansion, leaf func(n tree.Node[T]) string) {
	for _, row := range t.Visible(exp) {
		n := t.Node(row.ID)
		indent := strings.Repeat("  ", row.Depth)
		if n.IsFolder() {
			marker := "▸"
			if t.IsExpanded(row.ID, exp) {
				marker = "▾"
			}
			fmt.Fprintf(w, "%s%s %s\n", indent, marker, theme.FolderStyle.Render(n.Name+t.Separator()))
			continue
		}
		fmt.Fprintf(w, "%s  %s\n", indent, leaf(n))
	}
}

func branchLeaf(n tree.Node[domain.Branch]) string {
	b := n.Payload
	var label string
	switch {
	case b.IsCurrent:
		label = "* " + theme.CurrentBranchStyle.Render(n.Name)
	case b.IsRemote:
		label = theme.RemoteBranchStyle.Render(n.Name)
	default:
		label = theme.BranchStyle.Render(n.Name)
	}
	if b.TargetSHA != "" {
		label += " " + theme.SHAStyle.Render(shortSHA(b.TargetSHA))
	}
	if b.Upstream != "" {
		label += theme.MutedStyle.Render(" -> " + b.Upstream)
	}
	return label
}

func fileLeaf(n tree.Node[domain.FileStatus]) string {
	code := n.Payload.Code()
	return theme.FileStatusStyle(code).Render(code) + " " + n.Name
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

func renderTags(w io.Writer, tags []domain.Tag) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tCOMMIT\tTYPE\tDATE\tMESSAGE")
	for _, t := range tags {
		kind := "lightweight"
		if t.Annotated {
			kind = "annotated"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			t.Name,
			shortSHA(t.TargetSHA),
			kind,
			formatOptionalTime(t.Date),
			firstLine(t.Message))
	}
	tw.Flush()

	fmt.Fprintf(w, "\nTotal: %d tags\n", len(tags))
}

func renderRecents(w io.Writer, recents []domain.RepositoryIdentity) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tPATH\tREMOTE\tLAST OPENED")
	for _, r := range recents {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			r.Name,
			r.Path,
			r.RemoteURL,
			formatTime(r.LastOpened))
	}
	tw.Flush()

	fmt.Fprintf(w, "\nTotal: %d repositories\n", len(recents))
}

func renderGrants(w io.Writer, grants []domain.AccessGrant) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tCREATED\tACTIVE")
	for _, g := range grants {
		active := ""
		if g.Active {
			active = "✓"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", g.Path, formatTime(g.CreatedAt), active)
	}
	tw.Flush()

	fmt.Fprintf(w, "\nTotal: %d grants\n", len(grants))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(timeLayout)
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return formatTime(*t)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// repositoryJSON is the json form of an open repository
type repositoryJSON struct {
	Branches   []domain.Branch          `json:"branches"`
	Commits    []domain.AnnotatedCommit `json:"commits"`
	Error      string                   `json:"error,omitempty"`
	Files      []domain.FileStatus      `json:"files"`
	Loaded     *time.Time               `json:"loaded,omitempty"`
	Name       string                   `json:"name"`
	Path       string                   `json:"path"`
	RemoteURL  string                   `json:"remote_url,omitempty"`
	Status     string                   `json:"status"`
	Submodules []string                 `json:"submodules"`
	Tags       []domain.Tag             `json:"tags"`
}

func snapshotJSON(snap services.Snapshot) repositoryJSON {
	out := repositoryJSON{
		Name:   snap.Identity.Name,
		Path:   snap.Identity.Path,
		Status: snap.Status.String(),
	}
	if snap.Err != nil {
		out.Error = snap.Err.Error()
	}
	if entry := snap.Entry; entry != nil {
		loaded := entry.LastUpdated
		out.Branches = entry.Branches
		out.Commits = entry.Commits
		out.Files = entry.Files
		out.Loaded = &loaded
		out.RemoteURL = entry.RemoteURL
		out.Submodules = entry.Submodules
		out.Tags = entry.Tags
	}
	return out
}
