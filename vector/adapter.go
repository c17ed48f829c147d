package vector

import (
	"cmp"
	"fmt"

	"github.com/npillmayer/elements"
	"github.com/npillmayer/elements/btree"
)

// Adapter implements the element contracts for vector payloads.
type Adapter struct{}

var _ elements.Adapter[*Vector] = Adapter{}

// Compare delegates to Compare1By1.
func (Adapter) Compare(a, b *Vector) int {
	return Compare1By1(a, b)
}

// Destroy delegates to Release.
func (Adapter) Destroy(v *Vector) {
	Release(v)
}

// Compare1By1 orders vectors element by element and reduces the outcome of
// CompareVectors to -1, 0 or +1. Any difference counts, however small or
// large. Elements differing by NaN are ordered by cmp.Compare, which places
// NaN before every number.
//
// Absent vectors precede every present vector.
func Compare1By1(a, b *Vector) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	d := CompareVectors(a, b)
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	case d == 0:
		return 0
	}
	// d is NaN
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		if c := cmp.Compare(a.elems[i], b.elems[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}

// Release drops the element buffer of v and marks it released. Releasing an
// absent vector does nothing; releasing twice is traced and otherwise
// ignored.
func Release(v *Vector) {
	if v == nil {
		return
	}
	if v.released {
		tracer().Infof("vector: release of released vector ignored")
		return
	}
	v.elems = nil
	v.released = true
}

// Tree is an ordered B+ tree of vectors.
type Tree = btree.Tree[*Vector, Summary]

var _ elements.Container[*Vector] = (*Tree)(nil)

// NewTree creates an empty tree ordered by Compare1By1. Releasing the tree
// releases its vectors.
func NewTree() *Tree {
	tree, err := btree.New(elements.TreeConfig[*Vector, Summary](Adapter{}, Monoid{}))
	if err != nil {
		panic(err) // Monoid is always present
	}
	return tree
}

// FromVectors builds an ordered tree holding all vs. Vectors equal to one
// already inserted are rejected with btree.ErrDuplicateItem.
func FromVectors(vs ...*Vector) (*Tree, error) {
	tree := NewTree()
	for i, v := range vs {
		next, err := tree.Insert(v)
		if err != nil {
			return nil, fmt.Errorf("vector #%d: %w", i, err)
		}
		tree = next
	}
	return tree, nil
}
