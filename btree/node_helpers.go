package btree

// makeLeaf creates a new leaf owning a private copy of items and computes its
// summary.
func (t *Tree[I, S]) makeLeaf(items []I) *leafNode[I, S] {
	leaf := &leafNode[I, S]{
		items: append([]I(nil), items...),
	}
	t.recomputeLeafSummary(leaf)
	return leaf
}

// makeInternal creates a new internal node over children and computes summary
// and item count.
func (t *Tree[I, S]) makeInternal(children ...treeNode[I, S]) *innerNode[I, S] {
	inner := &innerNode[I, S]{
		children: append([]treeNode[I, S](nil), children...),
	}
	t.recomputeInnerSummary(inner)
	return inner
}
