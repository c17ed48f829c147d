package btree

import "fmt"

// Dimension describes a seek dimension over summaries.
//
// K is the dimension key/position type.
type Dimension[S any, K any] interface {
	Zero() K
	Add(acc K, summary S) K
	Compare(acc K, target K) int
}

// Cursor seeks positions in a tree along a given dimension.
type Cursor[I SummarizedItem[S], S any, K any] struct {
	tree *Tree[I, S]
	dim  Dimension[S, K]
}

// NewCursor creates a cursor for a tree and a dimension.
func NewCursor[I SummarizedItem[S], S any, K any](tree *Tree[I, S], dim Dimension[S, K]) (*Cursor[I, S, K], error) {
	if tree == nil {
		return nil, fmt.Errorf("%w: tree is nil", ErrInvalidConfig)
	}
	if dim == nil {
		return nil, fmt.Errorf("%w: dimension is nil", ErrInvalidDimension)
	}
	return &Cursor[I, S, K]{
		tree: tree,
		dim:  dim,
	}, nil
}

// Seek finds the first item index where the accumulated dimension, including
// that item, reaches target. acc is the accumulated value up to and including
// the item found. If target is never reached, Seek returns the tree length.
func (c *Cursor[I, S, K]) Seek(target K) (itemIndex int, acc K, err error) {
	if c == nil || c.tree == nil || c.dim == nil {
		var zero K
		return 0, zero, fmt.Errorf("%w: cursor not initialized", ErrInvalidDimension)
	}
	zero := c.dim.Zero()
	if c.dim.Compare(zero, target) >= 0 || c.tree.root == nil {
		return 0, zero, nil
	}
	idx, reached, found := c.seekNode(c.tree.root, 0, zero, target)
	if found {
		return idx, reached, nil
	}
	return c.tree.Len(), reached, nil
}

// seekNode descends to the first leaf position where the accumulated
// dimension reaches target. startIndex and acc describe the prefix state
// before subtree n.
func (c *Cursor[I, S, K]) seekNode(n treeNode[I, S], startIndex int, acc K, target K) (idx int, reached K, found bool) {
	if n.isLeaf() {
		cur := acc
		for i, item := range n.(*leafNode[I, S]).items {
			next := c.dim.Add(cur, item.Summary())
			if c.dim.Compare(next, target) >= 0 {
				return startIndex + i, next, true
			}
			cur = next
		}
		return startIndex + n.size(), cur, false
	}
	curIdx, curAcc := startIndex, acc
	for _, child := range n.(*innerNode[I, S]).children {
		nextAcc := c.dim.Add(curAcc, child.Summary())
		if c.dim.Compare(nextAcc, target) >= 0 {
			return c.seekNode(child, curIdx, curAcc, target)
		}
		curAcc = nextAcc
		curIdx += child.size()
	}
	return curIdx, curAcc, false
}
