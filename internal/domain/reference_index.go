package domain

// ReferenceIndex maps a commit SHA to the ordered names that point at it
type ReferenceIndex map[string][]string

// Names returns the names referencing sha. A missing sha has no references.
func (idx ReferenceIndex) Names(sha string) []string {
	if names, ok := idx[sha]; ok {
		return names
	}
	return []string{}
}

// BuildReferenceIndex indexes names by target SHA in a single pass.
// Entries with an empty SHA are skipped.
func BuildReferenceIndex[T any](refs []T, ref func(T) (name, sha string)) ReferenceIndex {
	idx := make(ReferenceIndex)
	for _, r := range refs {
		name, sha := ref(r)
		if sha == "" {
			continue
		}
		idx[sha] = append(idx[sha], name)
	}
	return idx
}

// BranchIndex indexes branches by target SHA
func BranchIndex(branches []Branch) ReferenceIndex {
	return BuildReferenceIndex(branches, func(b Branch) (string, string) {
		return b.Name, b.TargetSHA
	})
}

// TagIndex indexes tags by target SHA
func TagIndex(tags []Tag) ReferenceIndex {
	return BuildReferenceIndex(tags, func(t Tag) (string, string) {
		return t.Name, t.TargetSHA
	})
}

// Annotate decorates commits with the branches and tags pointing at them.
// Commit order is preserved and names are neither sorted nor deduplicated.
func Annotate(commits []Commit, branches []Branch, tags []Tag) []AnnotatedCommit {
	branchIdx := BranchIndex(branches)
	tagIdx := TagIndex(tags)

	result := make([]AnnotatedCommit, len(commits))
	for i, c := range commits {
		result[i] = AnnotatedCommit{
			Commit:   c,
			Branches: branchIdx.Names(c.SHA),
			Tags:     tagIdx.Names(c.SHA),
		}
	}
	return result
}
