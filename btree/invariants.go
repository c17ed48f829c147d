package btree

import "fmt"

// Check validates structural tree invariants: uniform leaf depth, occupancy
// bounds, cached item counts and, for ordered trees, strictly increasing
// items.
//
// This checker is strict and meant to be used in tests.
func (t *Tree[I, S]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.root == nil {
		if t.height != 0 {
			return fmt.Errorf("%w: empty tree must have height=0", ErrInvalidConfig)
		}
		return nil
	}
	if t.height <= 0 {
		return fmt.Errorf("%w: non-empty tree must have height > 0", ErrInvalidConfig)
	}
	_, height, err := t.checkNode(t.root, true)
	if err != nil {
		return err
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvalidConfig, height, t.height)
	}
	if t.cfg.Ordered() {
		return t.checkOrder()
	}
	return nil
}

func (t *Tree[I, S]) checkNode(n treeNode[I, S], isRoot bool) (items int, height int, err error) {
	if normalizeNode[I, S](n) == nil {
		return 0, 0, fmt.Errorf("%w: nil node", ErrInvalidConfig)
	}
	if n.isLeaf() {
		leaf := n.(*leafNode[I, S])
		if len(leaf.items) == 0 || len(leaf.items) > MaxLeafItems {
			return 0, 0, fmt.Errorf("%w: leaf holds %d items", ErrInvalidConfig, len(leaf.items))
		}
		if !isRoot && len(leaf.items) < Base {
			return 0, 0, fmt.Errorf("%w: leaf underflow (%d < %d)", ErrInvalidConfig, len(leaf.items), Base)
		}
		return len(leaf.items), 1, nil
	}
	inner := n.(*innerNode[I, S])
	if len(inner.children) == 0 {
		return 0, 0, fmt.Errorf("%w: internal node has no children", ErrInvalidConfig)
	}
	if len(inner.children) > MaxChildren {
		return 0, 0, fmt.Errorf("%w: child count %d exceeds degree %d",
			ErrInvalidConfig, len(inner.children), MaxChildren)
	}
	if isRoot && len(inner.children) < 2 {
		return 0, 0, fmt.Errorf("%w: internal root with a single child", ErrInvalidConfig)
	}
	if !isRoot && len(inner.children) < Base {
		return 0, 0, fmt.Errorf("%w: internal underflow (%d < %d)", ErrInvalidConfig, len(inner.children), Base)
	}
	var totalItems int
	var childHeight int
	for i, child := range inner.children {
		cItems, cHeight, cErr := t.checkNode(child, false)
		if cErr != nil {
			return 0, 0, cErr
		}
		totalItems += cItems
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: non-uniform subtree heights", ErrInvalidConfig)
		}
	}
	if totalItems != inner.count {
		return 0, 0, fmt.Errorf("%w: cached count %d != %d items", ErrInvalidConfig, inner.count, totalItems)
	}
	return totalItems, childHeight + 1, nil
}

func (t *Tree[I, S]) checkOrder() error {
	var err error
	var prev I
	index := 0
	t.ForEachItem(func(item I) bool {
		if index > 0 && t.cfg.Compare(prev, item) >= 0 {
			err = fmt.Errorf("%w: items at %d and %d out of order", ErrInvalidConfig, index-1, index)
			return false
		}
		prev = item
		index++
		return true
	})
	return err
}
