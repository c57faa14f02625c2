package domain

import "time"

// Commit is one entry of a history walk
type Commit struct {
	Author      string
	AuthorEmail string
	Message     string
	Parents     []string
	SHA         string
	ShortSHA    string
	Timestamp   time.Time
}

// Summary returns the first line of the commit message
func (c Commit) Summary() string {
	for i := 0; i < len(c.Message); i++ {
		if c.Message[i] == '\n' {
			return c.Message[:i]
		}
	}
	return c.Message
}

// AnnotatedCommit is a commit decorated with the names that reference it.
// Branches and Tags are never nil.
type AnnotatedCommit struct {
	Commit
	Branches []string
	Tags     []string
}

// Branch represents a local or remote-tracking branch
type Branch struct {
	IsCurrent bool
	IsRemote  bool
	Name      string // main, feature/x, origin/main
	TargetSHA string
	Upstream  string
}

// Tag represents a lightweight or annotated tag
type Tag struct {
	Annotated bool
	Date      *time.Time
	Message   string
	Name      string
	TargetSHA string // peeled commit SHA
	Tagger    string
}

// FileStatus is one working tree entry in porcelain XY form
type FileStatus struct {
	Path     string
	Staged   byte // X column, ' ' when clean
	Unstaged byte // Y column, ' ' when clean
}

// Code returns the two-letter porcelain status
func (f FileStatus) Code() string {
	return string([]byte{f.Staged, f.Unstaged})
}

// IsUntracked reports whether the file is not tracked by git
func (f FileStatus) IsUntracked() bool {
	return f.Staged == '?' && f.Unstaged == '?'
}
