package btree

// ForEachItem walks leaf items in-order.
//
// Iteration stops early if callback returns false.
func (t *Tree[I, S]) ForEachItem(fn func(item I) bool) {
	_ = t.ForEach(fn)
}

// ForEach walks leaf items in-order and reports whether every item has been
// visited. It returns false if visit asked to stop, or if visit is nil.
// An empty tree is walked successfully.
func (t *Tree[I, S]) ForEach(visit func(item I) bool) bool {
	if visit == nil {
		return false
	}
	if t == nil || t.root == nil {
		return true
	}
	return t.forEachItemNode(t.root, visit)
}

func (t *Tree[I, S]) forEachItemNode(n treeNode[I, S], fn func(item I) bool) bool {
	assert(n != nil, "forEachItemNode called with nil node")
	if n.isLeaf() {
		for _, item := range n.(*leafNode[I, S]).items {
			if !fn(item) {
				return false
			}
		}
		return true
	}
	for _, child := range n.(*innerNode[I, S]).children {
		if !t.forEachItemNode(child, fn) {
			return false
		}
	}
	return true
}
