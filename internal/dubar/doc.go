// Package dubar sizes the immediate children of a directory.
//
// It lists the target's entries, resolves every directory's total by
// recursively summing regular-file sizes across its subtree with a
// bounded worker pool, and offers deterministic orderings over the
// results. Symbolic links are never followed.
package dubar
