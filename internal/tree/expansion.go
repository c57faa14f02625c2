package tree

// Expansion is the set of expanded folder paths
type Expansion map[string]struct{}

// NewExpansion returns an Expansion with paths expanded
func NewExpansion(paths ...string) Expansion {
	e := make(Expansion, len(paths))
	for _, p := range paths {
		e[p] = struct{}{}
	}
	return e
}

// IsExpanded reports whether path is expanded. A nil Expansion has nothing expanded.
func (e Expansion) IsExpanded(path string) bool {
	_, ok := e[path]
	return ok
}

// Set expands or collapses path
func (e Expansion) Set(path string, expanded bool) {
	if expanded {
		e[path] = struct{}{}
		return
	}
	delete(e, path)
}

// Toggle flips path and returns the new state
func (e Expansion) Toggle(path string) bool {
	expanded := !e.IsExpanded(path)
	e.Set(path, expanded)
	return expanded
}

// Clone returns an independent copy
func (e Expansion) Clone() Expansion {
	c := make(Expansion, len(e))
	for p := range e {
		c[p] = struct{}{}
	}
	return c
}
