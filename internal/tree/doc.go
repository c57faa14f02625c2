// Package tree turns flat, separator-delimited names (branch names, file paths)
// into a sorted folder/leaf hierarchy and filters it without losing structure.
//
// Trees are arena-indexed: nodes live in one slice and refer to each other by
// NodeID. Expand/collapse state is not stored on nodes; it is an Expansion
// overlay keyed by node path, so the same Expansion works for a tree and for
// any filtered view of it.
package tree
