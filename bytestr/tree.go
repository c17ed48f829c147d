package bytestr

import (
	"fmt"

	"github.com/npillmayer/elements"
	"github.com/npillmayer/elements/btree"
)

// Tree is an ordered B+ tree of string payloads.
type Tree = btree.Tree[*Str, Summary]

var _ elements.Container[*Str] = (*Tree)(nil)

// NewTree creates an empty tree ordered by Compare. Releasing the tree
// destroys its payloads.
func NewTree() *Tree {
	tree, err := btree.New(elements.TreeConfig[*Str, Summary](Adapter{}, Monoid{}))
	if err != nil {
		panic(err) // Monoid is always present
	}
	return tree
}

// FromStrings builds an ordered tree holding a payload for every distinct
// string of ss.
func FromStrings(ss ...string) (*Tree, error) {
	tree := NewTree()
	for _, s := range ss {
		next, err := tree.Insert(New(s))
		if err != nil {
			return nil, err
		}
		tree = next
	}
	return tree, nil
}

type summarized interface {
	Summary() Summary
}

// Join concatenates all payloads of c, in traversal order, each followed by a
// newline. The accumulator is sized up front, from the container's summary if
// it has one and by an extra counting pass otherwise. Absent payloads are
// skipped.
func Join(c elements.Container[*Str]) (string, error) {
	if elements.IsAbsent(c) {
		return "", fmt.Errorf("%w: container is nil", elements.ErrAbsentInput)
	}
	var sum Summary
	if s, ok := c.(summarized); ok {
		sum = s.Summary()
	} else {
		c.ForEach(func(s *Str) bool {
			sum = Monoid{}.Add(sum, s.Summary())
			return true
		})
	}
	acc := NewConcatenation(int(sum.Joined()))
	var err error
	c.ForEach(func(s *Str) bool {
		if s == nil {
			return true
		}
		err = Adapter{}.Fold(s, acc)
		return err == nil
	})
	if err != nil {
		return "", err
	}
	tracer().Debugf("joined %d strings into %d bytes", sum.Items, acc.Len())
	return acc.String(), nil
}

// ByteDimension is a seek dimension over byte positions of the text Join
// produces, newlines included.
type ByteDimension struct{}

var _ btree.Dimension[Summary, uint64] = ByteDimension{}

func (ByteDimension) Zero() uint64                          { return 0 }
func (ByteDimension) Add(acc uint64, sum Summary) uint64    { return acc + sum.Joined() }
func (ByteDimension) Compare(acc uint64, target uint64) int { return cmpUint(acc, target) }

func cmpUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Locate finds the payload covering byte position offset of the text Join
// would produce for tree. It returns the index of the payload and the offset
// within it; an offset equal to the payload's length denotes its newline.
func Locate(tree *Tree, offset uint64) (index int, local uint64, err error) {
	if tree == nil {
		return 0, 0, fmt.Errorf("%w: tree is nil", elements.ErrAbsentInput)
	}
	total := tree.Summary().Joined()
	if offset >= total {
		return 0, 0, fmt.Errorf("%w: offset %d, joined length %d",
			btree.ErrIndexOutOfBounds, offset, total)
	}
	cursor, err := btree.NewCursor(tree, btree.Dimension[Summary, uint64](ByteDimension{}))
	if err != nil {
		return 0, 0, err
	}
	index, end, err := cursor.Seek(offset + 1)
	if err != nil {
		return 0, 0, err
	}
	s, err := tree.At(index)
	if err != nil {
		return 0, 0, err
	}
	start := end - s.Summary().Joined()
	return index, offset - start, nil
}
