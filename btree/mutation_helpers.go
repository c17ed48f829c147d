package btree

import "fmt"

func (t *Tree[I, S]) cloneLeaf(leaf *leafNode[I, S]) *leafNode[I, S] {
	if leaf == nil {
		return nil
	}
	return &leafNode[I, S]{
		summary: leaf.summary,
		items:   append([]I(nil), leaf.items...),
	}
}

func (t *Tree[I, S]) cloneInner(inner *innerNode[I, S]) *innerNode[I, S] {
	if inner == nil {
		return nil
	}
	return &innerNode[I, S]{
		summary:  inner.summary,
		count:    inner.count,
		children: append([]treeNode[I, S](nil), inner.children...),
	}
}

func (t *Tree[I, S]) recomputeLeafSummary(leaf *leafNode[I, S]) {
	assert(leaf != nil, "recomputeLeafSummary called with nil leaf")
	leaf.summary = t.cfg.Monoid.Zero()
	for _, item := range leaf.items {
		leaf.summary = t.cfg.Monoid.Add(leaf.summary, item.Summary())
	}
}

func (t *Tree[I, S]) recomputeInnerSummary(inner *innerNode[I, S]) {
	assert(inner != nil, "recomputeInnerSummary called with nil inner node")
	inner.summary = t.cfg.Monoid.Zero()
	inner.count = 0
	for _, child := range inner.children {
		if child != nil {
			inner.summary = t.cfg.Monoid.Add(inner.summary, child.Summary())
			inner.count += child.size()
		}
	}
}

// insertAt inserts values into a slice at idx and returns a new slice.
func insertAt[T any](src []T, idx int, values ...T) []T {
	assert(idx >= 0 && idx <= len(src), "insertAt index out of range")
	out := make([]T, 0, len(src)+len(values))
	out = append(out, src[:idx]...)
	out = append(out, values...)
	out = append(out, src[idx:]...)
	return out
}

// removeRange removes the half-open interval [from,to) from a slice.
func removeRange[T any](src []T, from, to int) []T {
	assert(from >= 0 && from <= to && to <= len(src), "removeRange bounds invalid")
	out := make([]T, 0, len(src)-(to-from))
	out = append(out, src[:from]...)
	out = append(out, src[to:]...)
	return out
}

func (t *Tree[I, S]) insertChildAt(inner *innerNode[I, S], idx int, child treeNode[I, S]) {
	assert(inner != nil, "insertChildAt called with nil inner node")
	inner.children = insertAt(inner.children, idx, child)
	t.recomputeInnerSummary(inner)
}

func (t *Tree[I, S]) removeChildAt(inner *innerNode[I, S], idx int) {
	assert(inner != nil, "removeChildAt called with nil inner node")
	assert(idx >= 0 && idx < len(inner.children), "removeChildAt index out of range")
	inner.children = removeRange(inner.children, idx, idx+1)
	t.recomputeInnerSummary(inner)
}

// insertLeafItemsAt inserts items into a leaf which must be a private clone.
// The caller recomputes the summary.
func (t *Tree[I, S]) insertLeafItemsAt(leaf *leafNode[I, S], idx int, values ...I) {
	assert(leaf != nil, "insertLeafItemsAt called with nil leaf")
	leaf.items = insertAt(leaf.items, idx, values...)
}

// removeLeafItemsRange removes [from,to) from a leaf which must be a private
// clone. The caller recomputes the summary.
func (t *Tree[I, S]) removeLeafItemsRange(leaf *leafNode[I, S], from, to int) {
	assert(leaf != nil, "removeLeafItemsRange called with nil leaf")
	leaf.items = removeRange(leaf.items, from, to)
}

func (t *Tree[I, S]) leafOverflow(leaf *leafNode[I, S]) bool {
	return leaf != nil && len(leaf.items) > MaxLeafItems
}

func (t *Tree[I, S]) leafUnderflow(leaf *leafNode[I, S], isRoot bool) bool {
	if leaf == nil || isRoot {
		return false
	}
	return len(leaf.items) < Base
}

func (t *Tree[I, S]) innerOverflow(inner *innerNode[I, S]) bool {
	return inner != nil && len(inner.children) > MaxChildren
}

func (t *Tree[I, S]) innerUnderflow(inner *innerNode[I, S], isRoot bool) bool {
	if inner == nil || isRoot {
		return false
	}
	return len(inner.children) < Base
}

// insertIntoLeafLocal inserts an item at a local leaf offset.
//
// It returns the updated (left) leaf and a promoted right sibling if the leaf
// had to be split.
func (t *Tree[I, S]) insertIntoLeafLocal(leaf *leafNode[I, S], index int, item I) (*leafNode[I, S], *leafNode[I, S], error) {
	if leaf == nil {
		return nil, nil, fmt.Errorf("%w: nil leaf", ErrInvalidConfig)
	}
	if index < 0 || index > len(leaf.items) {
		return nil, nil, ErrIndexOutOfBounds
	}
	cloned := t.cloneLeaf(leaf)
	t.insertLeafItemsAt(cloned, index, item)
	t.recomputeLeafSummary(cloned)
	if !t.leafOverflow(cloned) {
		return cloned, nil, nil
	}
	return t.splitLeaf(cloned)
}

// splitLeaf splits an overflowing leaf into two siblings.
func (t *Tree[I, S]) splitLeaf(leaf *leafNode[I, S]) (*leafNode[I, S], *leafNode[I, S], error) {
	n := len(leaf.items)
	mid := n / 2
	left := t.makeLeaf(leaf.items[:mid])
	right := t.makeLeaf(leaf.items[mid:])
	if len(left.items) < Base || len(right.items) < Base {
		return nil, nil, fmt.Errorf("%w: split violates leaf occupancy bounds", ErrInvalidConfig)
	}
	return left, right, nil
}

// splitInner splits one overflowing internal node into two siblings.
func (t *Tree[I, S]) splitInner(inner *innerNode[I, S]) (*innerNode[I, S], *innerNode[I, S]) {
	n := len(inner.children)
	assert(n > MaxChildren && n <= 2*MaxChildren, "splitInner called without single overflow")
	mid := n / 2
	left := t.makeInternal(inner.children[:mid]...)
	right := t.makeInternal(inner.children[mid:]...)
	assert(len(left.children) >= Base && len(right.children) >= Base,
		"splitInner violates internal occupancy bounds")
	return left, right
}
