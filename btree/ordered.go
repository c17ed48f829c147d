package btree

import (
	"fmt"
	"slices"
)

// Insert places item according to the tree's ordering and returns a new tree.
//
// The tree holds at most one item per equivalence class of Compare: inserting
// an item which compares equal to a stored one fails with ErrDuplicateItem and
// leaves ownership of item with the caller.
func (t *Tree[I, S]) Insert(item I) (*Tree[I, S], error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if !t.cfg.Ordered() {
		return nil, ErrOrderingRequired
	}
	index, found := t.search(item)
	if found {
		tracer().Debugf("btree: rejecting duplicate item at index %d", index)
		return nil, fmt.Errorf("%w: at index %d", ErrDuplicateItem, index)
	}
	cloned := t.clone()
	cloned.insertOneAt(index, item)
	return cloned, nil
}

// Find returns the stored item comparing equal to item.
func (t *Tree[I, S]) Find(item I) (I, bool) {
	var zero I
	if t.IsEmpty() || !t.cfg.Ordered() {
		return zero, false
	}
	index, found := t.search(item)
	if !found {
		return zero, false
	}
	stored, err := t.At(index)
	assert(err == nil, "Find: search returned invalid index")
	return stored, true
}

// Delete removes the stored item comparing equal to item and returns the new
// tree together with the removed item. The removed item is handed back to the
// caller and is not destroyed.
func (t *Tree[I, S]) Delete(item I) (*Tree[I, S], I, error) {
	var zero I
	if t == nil {
		return nil, zero, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if !t.cfg.Ordered() {
		return nil, zero, ErrOrderingRequired
	}
	if t.IsEmpty() {
		return nil, zero, ErrItemNotFound
	}
	index, found := t.search(item)
	if !found {
		return nil, zero, ErrItemNotFound
	}
	stored, err := t.At(index)
	if err != nil {
		return nil, zero, err
	}
	out, err := t.DeleteAt(index)
	if err != nil {
		return nil, zero, err
	}
	return out, stored, nil
}

// Release calls the configured destructor once for every item of this tree
// version and resets t to the empty tree. It returns the number of items
// destroyed.
//
// Items shared with other versions are destroyed as well, so Release must only
// be called on the last version holding them.
func (t *Tree[I, S]) Release() int {
	if t.IsEmpty() {
		return 0
	}
	released := 0
	if destroy := t.cfg.Destroy; destroy != nil {
		t.ForEachItem(func(item I) bool {
			destroy(item)
			released++
			return true
		})
	}
	tracer().Debugf("btree: released %d items", released)
	t.root, t.height = nil, 0
	return released
}

// search descends by comparing item against the maximum of each subtree.
// It returns the item index of item, or the index where item would have to be
// inserted to keep the tree ordered.
func (t *Tree[I, S]) search(item I) (index int, found bool) {
	if t.root == nil {
		return 0, false
	}
	n := t.root
	for !n.isLeaf() {
		children := n.(*innerNode[I, S]).children
		next := children[len(children)-1]
		for _, child := range children[:len(children)-1] {
			if t.cfg.Compare(item, lastItem[I, S](child)) <= 0 {
				next = child
				break
			}
			index += child.size()
		}
		n = next
	}
	pos, found := slices.BinarySearchFunc(n.(*leafNode[I, S]).items, item, func(stored, target I) int {
		return t.cfg.Compare(stored, target)
	})
	return index + pos, found
}

// lastItem returns the maximum item of a non-empty subtree.
func lastItem[I SummarizedItem[S], S any](n treeNode[I, S]) I {
	for !n.isLeaf() {
		children := n.(*innerNode[I, S]).children
		n = children[len(children)-1]
	}
	items := n.(*leafNode[I, S]).items
	return items[len(items)-1]
}
