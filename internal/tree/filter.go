package tree

// Predicate decides whether a leaf's full name is kept
type Predicate func(candidate string) bool

// Filter keeps the leaves whose full name satisfies pred and every folder
// that still has a surviving descendant. Surviving folders are new nodes and
// the result is shown fully expanded. A nil pred returns t itself.
func Filter[T any](t *Tree[T], pred Predicate) *Tree[T] {
	if pred == nil || t == nil {
		return t
	}

	out := &Tree[T]{expandAll: true, nameOf: t.nameOf, sep: t.sep}
	for _, id := range t.roots {
		out.copyFiltered(t, id, NoParent, pred)
	}
	return out
}

// copyFiltered copies the subtree at id from src when something in it survives
func (t *Tree[T]) copyFiltered(src *Tree[T], id, parent NodeID, pred Predicate) bool {
	n := src.nodes[id]
	if n.Kind == KindLeaf {
		if !pred(src.nameOf(n.Payload)) {
			return false
		}
		n.Parent = parent
		n.Children = nil
		t.add(n)
		return true
	}

	mark := len(t.nodes)
	rootMark := len(t.roots)
	folder := t.add(Node[T]{
		Kind:   KindFolder,
		Name:   n.Name,
		Parent: parent,
		Path:   n.Path,
	})

	kept := false
	for _, child := range n.Children {
		if t.copyFiltered(src, child, folder, pred) {
			kept = true
		}
	}
	if kept {
		return true
	}

	// nothing below survived: unlink and drop the folder
	t.nodes = t.nodes[:mark]
	if parent == NoParent {
		t.roots = t.roots[:rootMark]
	} else {
		siblings := t.nodes[parent].Children
		t.nodes[parent].Children = siblings[:len(siblings)-1]
	}
	return false
}
