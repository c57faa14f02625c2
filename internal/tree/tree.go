package tree

import (
	"sort"
	"strings"
)

// DefaultSeparator splits branch names and file paths
const DefaultSeparator = "/"

// NoParent is the Parent of root nodes
const NoParent NodeID = -1

// NodeID indexes a node inside its Tree
type NodeID int

// Kind distinguishes folders from leaves
type Kind uint8

const (
	KindFolder Kind = iota
	KindLeaf
)

// Node is a folder or a leaf. Folders carry no payload.
type Node[T any] struct {
	Children []NodeID
	Kind     Kind
	Name     string
	Parent   NodeID
	Path     string // separator-joined components from the root
	Payload  T
}

// IsFolder reports whether the node is a folder
func (n Node[T]) IsFolder() bool {
	return n.Kind == KindFolder
}

// Tree is an immutable folder/leaf hierarchy built from a flat list
type Tree[T any] struct {
	expandAll bool
	nameOf    func(T) string
	nodes     []Node[T]
	roots     []NodeID
	sep       string
}

type siblingKey struct {
	kind   Kind
	name   string
	parent NodeID
}

// Build creates a tree from items. Every name is split on sep ("" means "/");
// all components but the last become folders, the last one a leaf.
// Folders are shared by name within a parent and the first leaf with a given
// name wins. Siblings are ordered folders first, then case-insensitively by name.
func Build[T any](items []T, nameOf func(T) string, sep string) *Tree[T] {
	if sep == "" {
		sep = DefaultSeparator
	}

	t := &Tree[T]{nameOf: nameOf, sep: sep}
	index := make(map[siblingKey]NodeID)

	for _, item := range items {
		parts := splitName(nameOf(item), sep)
		if len(parts) == 0 {
			continue
		}

		parent := NoParent
		for i, part := range parts[:len(parts)-1] {
			key := siblingKey{kind: KindFolder, name: part, parent: parent}
			id, ok := index[key]
			if !ok {
				id = t.add(Node[T]{
					Kind:   KindFolder,
					Name:   part,
					Parent: parent,
					Path:   strings.Join(parts[:i+1], sep),
				})
				index[key] = id
			}
			parent = id
		}

		leafName := parts[len(parts)-1]
		key := siblingKey{kind: KindLeaf, name: leafName, parent: parent}
		if _, exists := index[key]; exists {
			continue
		}
		index[key] = t.add(Node[T]{
			Kind:    KindLeaf,
			Name:    leafName,
			Parent:  parent,
			Path:    strings.Join(parts, sep),
			Payload: item,
		})
	}

	t.sortSiblings(t.roots)
	for i := range t.nodes {
		t.sortSiblings(t.nodes[i].Children)
	}
	return t
}

func splitName(name, sep string) []string {
	raw := strings.Split(name, sep)
	parts := raw[:0]
	for _, p := range raw {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// add appends n and links it into its parent's child list
func (t *Tree[T]) add(n Node[T]) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	if n.Parent == NoParent {
		t.roots = append(t.roots, id)
	} else {
		t.nodes[n.Parent].Children = append(t.nodes[n.Parent].Children, id)
	}
	return id
}

func (t *Tree[T]) sortSiblings(ids []NodeID) {
	sort.SliceStable(ids, func(i, j int) bool {
		a, b := t.nodes[ids[i]], t.nodes[ids[j]]
		if a.Kind != b.Kind {
			return a.Kind == KindFolder
		}
		la, lb := strings.ToLower(a.Name), strings.ToLower(b.Name)
		if la != lb {
			return la < lb
		}
		return a.Name < b.Name
	})
}

// Len returns the number of nodes
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}

// Empty reports whether the tree has no nodes
func (t *Tree[T]) Empty() bool {
	return t.Len() == 0
}

// Roots returns the top-level node IDs in display order
func (t *Tree[T]) Roots() []NodeID {
	if t == nil {
		return nil
	}
	return t.roots
}

// Node returns the node for id
func (t *Tree[T]) Node(id NodeID) Node[T] {
	return t.nodes[id]
}

// Children returns the ordered children of id
func (t *Tree[T]) Children(id NodeID) []NodeID {
	return t.nodes[id].Children
}

// Separator returns the separator the tree was built with
func (t *Tree[T]) Separator() string {
	return t.sep
}

// NameOf returns the full name of a leaf payload
func (t *Tree[T]) NameOf(payload T) string {
	return t.nameOf(payload)
}

// Leaves returns every leaf payload in display order
func (t *Tree[T]) Leaves() []T {
	var result []T
	t.Walk(func(n Node[T], depth int) bool {
		if n.Kind == KindLeaf {
			result = append(result, n.Payload)
		}
		return true
	})
	return result
}

// Walk visits nodes depth-first in display order. Returning false from fn
// skips the node's children.
func (t *Tree[T]) Walk(fn func(n Node[T], depth int) bool) {
	if t == nil {
		return
	}
	var visit func(ids []NodeID, depth int)
	visit = func(ids []NodeID, depth int) {
		for _, id := range ids {
			n := t.nodes[id]
			if fn(n, depth) && len(n.Children) > 0 {
				visit(n.Children, depth+1)
			}
		}
	}
	visit(t.roots, 0)
}

// Row is one visible line of a tree
type Row struct {
	Depth int
	ID    NodeID
}

// Visible flattens the tree, descending only into expanded folders
func (t *Tree[T]) Visible(exp Expansion) []Row {
	var rows []Row
	if t == nil {
		return rows
	}
	var visit func(ids []NodeID, depth int)
	visit = func(ids []NodeID, depth int) {
		for _, id := range ids {
			rows = append(rows, Row{Depth: depth, ID: id})
			if t.IsExpanded(id, exp) {
				visit(t.nodes[id].Children, depth+1)
			}
		}
	}
	visit(t.roots, 0)
	return rows
}

// IsExpanded reports whether folder id is expanded under exp.
// Filtered trees are always fully expanded.
func (t *Tree[T]) IsExpanded(id NodeID, exp Expansion) bool {
	n := t.nodes[id]
	if n.Kind != KindFolder {
		return false
	}
	if t.expandAll {
		return true
	}
	return exp.IsExpanded(n.Path)
}

// ForcedExpanded reports whether every folder is shown expanded
func (t *Tree[T]) ForcedExpanded() bool {
	return t != nil && t.expandAll
}
