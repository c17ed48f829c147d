package btree

import (
	"fmt"
)

// Tree is a persistent, summarized B+ tree.
//
// I is the leaf item type, S is the summary type aggregated through the tree.
// The item type is tied to summary type via SummarizedItem[S].
//
// A nil *Tree behaves like an empty tree for all read operations.
type Tree[I SummarizedItem[S], S any] struct {
	cfg    Config[I, S]
	root   treeNode[I, S]
	height int // 0 means empty tree
}

// New creates an empty tree with validated configuration.
func New[I SummarizedItem[S], S any](cfg Config[I, S]) (*Tree[I, S], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[I, S]{cfg: cfg}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[I, S]) Config() Config[I, S] {
	return t.cfg
}

// clone returns a shallow copy of the tree header. Nodes are shared; mutating
// operations path-copy whatever they touch.
func (t *Tree[I, S]) clone() *Tree[I, S] {
	cloned := *t
	return &cloned
}

// empty returns an empty tree sharing t's configuration.
func (t *Tree[I, S]) empty() *Tree[I, S] {
	return &Tree[I, S]{cfg: t.cfg}
}

// IsEmpty reports whether the tree has no items.
func (t *Tree[I, S]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of items in the tree.
func (t *Tree[I, S]) Len() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.root.size()
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Tree[I, S]) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Summary returns the root summary, or the monoid's Zero() for an empty tree.
func (t *Tree[I, S]) Summary() S {
	if t == nil {
		var zero S
		return zero
	}
	if t.root == nil {
		return t.cfg.Monoid.Zero()
	}
	return t.root.Summary()
}

// InsertAt inserts items at an item index and returns a new tree.
//
// InsertAt does not consult the ordering. Mixing it with ordered operations
// is the client's responsibility.
func (t *Tree[I, S]) InsertAt(index int, items ...I) (*Tree[I, S], error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if index < 0 || index > t.Len() {
		return nil, ErrIndexOutOfBounds
	}
	if len(items) == 0 {
		return t, nil
	}
	cloned := t.clone()
	for i, item := range items {
		cloned.insertOneAt(index+i, item)
	}
	return cloned, nil
}

// DeleteAt removes one item at index and returns a new tree.
//
// The removed item is not destroyed; other tree versions may still hold it.
func (t *Tree[I, S]) DeleteAt(index int) (*Tree[I, S], error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if index < 0 || index >= t.Len() {
		return nil, ErrIndexOutOfBounds
	}
	cloned := t.clone()
	needsRebalance, err := cloned.deleteOneAt(index)
	if err != nil {
		return nil, err
	}
	if needsRebalance {
		return nil, ErrUnbalanced
	}
	return cloned, nil
}

// normalizeRoot collapses internal roots with a single child and resets an
// empty tree to height 0.
func (t *Tree[I, S]) normalizeRoot() {
	t.root = normalizeNode[I, S](t.root)
	for t.root != nil {
		inner, ok := t.root.(*innerNode[I, S])
		if !ok || len(inner.children) != 1 {
			return
		}
		t.root = normalizeNode[I, S](inner.children[0])
		t.height--
	}
	t.height = 0
}

// deleteOneAt performs a single-item delete on this tree in place.
//
// The receiver must be a private clone.
func (t *Tree[I, S]) deleteOneAt(index int) (needsRebalance bool, err error) {
	assert(t.root != nil, "deleteOneAt called on empty tree")
	updated, needsRebalance, err := t.deleteRecursive(t.root, t.height, index, true)
	if err != nil {
		return false, err
	}
	t.root = updated
	t.normalizeRoot()
	t.assertRootNormalized()
	return needsRebalance, nil
}

// assertRootNormalized verifies root invariants after structural edits.
// Violations indicate a bug in the tree algorithm, not an input error.
func (t *Tree[I, S]) assertRootNormalized() {
	if t.root == nil {
		assert(t.height == 0, "root normalization: nil root must have height 0")
		return
	}
	if t.root.isLeaf() {
		assert(t.root.size() > 0, "root normalization: root leaf must be non-empty")
		assert(t.height == 1, "root normalization: root leaf must have height 1")
		return
	}
	inner := t.root.(*innerNode[I, S])
	assert(len(inner.children) > 1, "root normalization: root inner must have at least 2 children")
	assert(t.height >= 2, "root normalization: root inner must have height >= 2")
}

// deleteRecursive removes one item at index from subtree n.
//
// It returns the updated subtree root (nil if the subtree became empty) and
// whether the caller must repair occupancy at the parent level.
func (t *Tree[I, S]) deleteRecursive(
	n treeNode[I, S], height, index int, isRoot bool,
) (updated treeNode[I, S], needsRebalance bool, err error) {
	assert(n != nil, "deleteRecursive called with nil node")
	assert(height > 0, "deleteRecursive called with invalid height")
	if height == 1 {
		leaf := n.(*leafNode[I, S])
		if index < 0 || index >= len(leaf.items) {
			return nil, false, ErrIndexOutOfBounds
		}
		cloned := t.cloneLeaf(leaf)
		t.removeLeafItemsRange(cloned, index, index+1)
		t.recomputeLeafSummary(cloned)
		if len(cloned.items) == 0 {
			if isRoot {
				return nil, false, nil
			}
			return cloned, true, nil
		}
		return cloned, t.leafUnderflow(cloned, isRoot), nil
	}

	cloned := t.cloneInner(n.(*innerNode[I, S]))
	slot, localIndex, err := t.locateChildForDelete(cloned, index)
	if err != nil {
		return nil, false, err
	}
	updatedChild, childNeedsRebalance, err := t.deleteRecursive(cloned.children[slot], height-1, localIndex, false)
	if err != nil {
		return nil, false, err
	}
	updatedChild = normalizeNode[I, S](updatedChild)
	if updatedChild == nil {
		t.removeChildAt(cloned, slot)
	} else {
		cloned.children[slot] = updatedChild
		t.recomputeInnerSummary(cloned)
	}
	if childNeedsRebalance && updatedChild != nil {
		if len(cloned.children) > 1 {
			childNeedsRebalance = !t.rebalanceChildAfterDelete(cloned, slot, height-1)
		} else {
			// a lone child of the root is lifted by normalizeRoot
			childNeedsRebalance = !isRoot
		}
	}
	if len(cloned.children) == 0 {
		return nil, !isRoot, nil
	}
	return cloned, childNeedsRebalance || t.innerUnderflow(cloned, isRoot), nil
}

// insertOneAt inserts one item into this tree in place.
//
// The receiver must be a private clone.
func (t *Tree[I, S]) insertOneAt(index int, item I) {
	if t.root == nil {
		t.root = t.makeLeaf([]I{item})
		t.height = 1
		return
	}
	updated, promoted := t.insertRecursive(t.root, t.height, index, item)
	if promoted != nil {
		t.root = t.makeInternal(updated, promoted)
		t.height++
		return
	}
	t.root = updated
}

// insertRecursive inserts one item into subtree n and propagates split results.
//
// The returned promoted sibling is non-nil only when the updated subtree split.
func (t *Tree[I, S]) insertRecursive(n treeNode[I, S], height, index int, item I) (treeNode[I, S], treeNode[I, S]) {
	assert(n != nil, "insertRecursive called with nil node")
	assert(height > 0, "insertRecursive called with invalid height")
	if height == 1 {
		left, right, err := t.insertIntoLeafLocal(n.(*leafNode[I, S]), index, item)
		assert(err == nil, "insertRecursive: leaf insertion failed")
		return left, normalizeNode[I, S](right)
	}

	cloned := t.cloneInner(n.(*innerNode[I, S]))
	slot, localIndex := t.locateChildForInsert(cloned, index)
	updatedChild, promotedChild := t.insertRecursive(cloned.children[slot], height-1, localIndex, item)
	cloned.children[slot] = updatedChild
	if promotedChild != nil {
		t.insertChildAt(cloned, slot+1, promotedChild)
	} else {
		t.recomputeInnerSummary(cloned)
	}
	if !t.innerOverflow(cloned) {
		return cloned, nil
	}
	return t.splitInner(cloned)
}

// locateChildForInsert maps a subtree item index to child slot and local index.
//
// Boundary indices land in the left child (`remaining <= childItems`).
func (t *Tree[I, S]) locateChildForInsert(inner *innerNode[I, S], index int) (childSlot int, localIndex int) {
	assert(len(inner.children) > 0, "locateChildForInsert called with empty children")
	remaining := index
	for i, child := range inner.children {
		if remaining <= child.size() {
			return i, remaining
		}
		remaining -= child.size()
	}
	panic("locateChildForInsert index exceeded subtree item count")
}

// locateChildForDelete maps a subtree item index to child slot and local index.
//
// Each absolute index is owned by exactly one child (`remaining < childItems`).
func (t *Tree[I, S]) locateChildForDelete(inner *innerNode[I, S], index int) (childSlot int, localIndex int, err error) {
	assert(len(inner.children) > 0, "locateChildForDelete called with empty children")
	if index < 0 {
		return 0, 0, ErrIndexOutOfBounds
	}
	remaining := index
	for i, child := range inner.children {
		if remaining < child.size() {
			return i, remaining, nil
		}
		remaining -= child.size()
	}
	return 0, 0, ErrIndexOutOfBounds
}

// rebalanceChildAfterDelete repairs occupancy for the child at slot.
func (t *Tree[I, S]) rebalanceChildAfterDelete(parent *innerNode[I, S], slot int, childHeight int) bool {
	assert(slot >= 0 && slot < len(parent.children), "rebalanceChildAfterDelete slot out of range")
	if childHeight == 1 {
		return t.rebalanceLeafChild(parent, slot)
	}
	return t.rebalanceInnerChild(parent, slot)
}

// applyRebalancePolicy tries sibling operations in the order
// borrow-left, borrow-right, merge-left, merge-right.
func (t *Tree[I, S]) applyRebalancePolicy(
	parent *innerNode[I, S], slot int,
	borrowLeft, borrowRight, mergeLeft, mergeRight func() bool,
) bool {
	hasLeft := slot > 0
	hasRight := slot+1 < len(parent.children)
	switch {
	case hasLeft && borrowLeft():
		return true
	case hasRight && borrowRight():
		return true
	case hasLeft && mergeLeft():
		return true
	case hasRight && mergeRight():
		return true
	}
	return false
}

func (t *Tree[I, S]) rebalanceLeafChild(parent *innerNode[I, S], slot int) bool {
	child := parent.children[slot].(*leafNode[I, S])
	if !t.leafUnderflow(child, false) {
		return true
	}
	return t.applyRebalancePolicy(
		parent, slot,
		func() bool {
			left := parent.children[slot-1].(*leafNode[I, S])
			if len(left.items) <= Base {
				return false
			}
			leftClone := t.cloneLeaf(left)
			parent.children[slot-1] = leftClone
			borrowed := leftClone.items[len(leftClone.items)-1]
			t.removeLeafItemsRange(leftClone, len(leftClone.items)-1, len(leftClone.items))
			t.insertLeafItemsAt(child, 0, borrowed)
			t.recomputeLeafSummary(leftClone)
			t.recomputeLeafSummary(child)
			t.recomputeInnerSummary(parent)
			return true
		},
		func() bool {
			right := parent.children[slot+1].(*leafNode[I, S])
			if len(right.items) <= Base {
				return false
			}
			rightClone := t.cloneLeaf(right)
			parent.children[slot+1] = rightClone
			borrowed := rightClone.items[0]
			t.removeLeafItemsRange(rightClone, 0, 1)
			t.insertLeafItemsAt(child, len(child.items), borrowed)
			t.recomputeLeafSummary(rightClone)
			t.recomputeLeafSummary(child)
			t.recomputeInnerSummary(parent)
			return true
		},
		func() bool {
			left := parent.children[slot-1].(*leafNode[I, S])
			merged := append(append([]I(nil), left.items...), child.items...)
			parent.children[slot-1] = t.makeLeaf(merged)
			t.removeChildAt(parent, slot)
			return true
		},
		func() bool {
			right := parent.children[slot+1].(*leafNode[I, S])
			merged := append(append([]I(nil), child.items...), right.items...)
			parent.children[slot] = t.makeLeaf(merged)
			t.removeChildAt(parent, slot+1)
			return true
		},
	)
}

// rebalanceInnerChild applies borrow/merge to an underfull internal child.
// The child is a private clone made by deleteRecursive.
func (t *Tree[I, S]) rebalanceInnerChild(parent *innerNode[I, S], slot int) bool {
	child := parent.children[slot].(*innerNode[I, S])
	if !t.innerUnderflow(child, false) {
		return true
	}
	return t.applyRebalancePolicy(
		parent, slot,
		func() bool {
			left := parent.children[slot-1].(*innerNode[I, S])
			if len(left.children) <= Base {
				return false
			}
			leftClone := t.cloneInner(left)
			parent.children[slot-1] = leftClone
			borrowed := leftClone.children[len(leftClone.children)-1]
			t.removeChildAt(leftClone, len(leftClone.children)-1)
			t.insertChildAt(child, 0, borrowed)
			t.recomputeInnerSummary(parent)
			return true
		},
		func() bool {
			right := parent.children[slot+1].(*innerNode[I, S])
			if len(right.children) <= Base {
				return false
			}
			rightClone := t.cloneInner(right)
			parent.children[slot+1] = rightClone
			borrowed := rightClone.children[0]
			t.removeChildAt(rightClone, 0)
			t.insertChildAt(child, len(child.children), borrowed)
			t.recomputeInnerSummary(parent)
			return true
		},
		func() bool {
			left := parent.children[slot-1].(*innerNode[I, S])
			merged := append(append([]treeNode[I, S](nil), left.children...), child.children...)
			parent.children[slot-1] = t.makeInternal(merged...)
			t.removeChildAt(parent, slot)
			return true
		},
		func() bool {
			right := parent.children[slot+1].(*innerNode[I, S])
			merged := append(append([]treeNode[I, S](nil), child.children...), right.children...)
			parent.children[slot] = t.makeInternal(merged...)
			t.removeChildAt(parent, slot+1)
			return true
		},
	)
}

// normalizeNode removes typed-nil interface wrappers.
func normalizeNode[I SummarizedItem[S], S any](n treeNode[I, S]) treeNode[I, S] {
	switch v := n.(type) {
	case nil:
		return nil
	case *leafNode[I, S]:
		if v == nil {
			return nil
		}
	case *innerNode[I, S]:
		if v == nil {
			return nil
		}
	}
	return n
}
