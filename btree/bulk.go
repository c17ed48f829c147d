package btree

import "fmt"

// Build creates a tree holding items in the given order, bulk-loading leaves
// and internal levels bottom up. Build does not consult the ordering.
func Build[I SummarizedItem[S], S any](cfg Config[I, S], items ...I) (*Tree[I, S], error) {
	t, err := New(cfg)
	if err != nil {
		return nil, err
	}
	t.load(items)
	return t, nil
}

// load replaces the receiver's content by a balanced tree over items.
func (t *Tree[I, S]) load(items []I) {
	t.root, t.height = nil, 0
	if len(items) == 0 {
		return
	}
	var level []treeNode[I, S]
	for _, chunk := range chunks(len(items), MaxLeafItems) {
		level = append(level, t.makeLeaf(items[chunk[0]:chunk[1]]))
	}
	t.height = 1
	for len(level) > 1 {
		var parents []treeNode[I, S]
		for _, chunk := range chunks(len(level), MaxChildren) {
			parents = append(parents, t.makeInternal(level[chunk[0]:chunk[1]]...))
		}
		level = parents
		t.height++
	}
	t.root = level[0]
}

// chunks partitions n slots into as few runs of at most limit slots as
// possible, spreading them evenly. With more than one run, every run holds at
// least limit/2 slots.
func chunks(n, limit int) [][2]int {
	k := (n + limit - 1) / limit
	runs := make([][2]int, 0, k)
	from := 0
	for i := 0; i < k; i++ {
		size := n / k
		if i < n%k {
			size++
		}
		runs = append(runs, [2]int{from, from + size})
		from += size
	}
	assert(from == n, "chunks do not cover all slots")
	return runs
}

func (t *Tree[I, S]) items() []I {
	items := make([]I, 0, t.Len())
	t.ForEachItem(func(item I) bool {
		items = append(items, item)
		return true
	})
	return items
}

// SplitAt splits the tree in front of index and returns the two halves.
// The receiver is left unchanged.
func (t *Tree[I, S]) SplitAt(index int) (*Tree[I, S], *Tree[I, S], error) {
	if t == nil {
		return nil, nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if index < 0 || index > t.Len() {
		return nil, nil, ErrIndexOutOfBounds
	}
	switch index {
	case 0:
		return t.empty(), t, nil
	case t.Len():
		return t, t.empty(), nil
	}
	items := t.items()
	left, right := t.empty(), t.empty()
	left.load(items[:index])
	right.load(items[index:])
	return left, right, nil
}

// Concat returns a tree holding the items of t followed by the items of
// other. For ordered trees, keeping the result ordered is the client's
// responsibility.
func (t *Tree[I, S]) Concat(other *Tree[I, S]) (*Tree[I, S], error) {
	if t == nil || other == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.IsEmpty() {
		return other, nil
	}
	if other.IsEmpty() {
		return t, nil
	}
	combined := t.empty()
	combined.load(append(t.items(), other.items()...))
	return combined, nil
}

// DeleteRange removes count items starting at index and returns a new tree.
// Removed items are not destroyed.
func (t *Tree[I, S]) DeleteRange(index, count int) (*Tree[I, S], error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	size := t.Len()
	if index < 0 || count < 0 || index+count > size {
		return nil, ErrIndexOutOfBounds
	}
	if count == 0 {
		return t, nil
	}
	if count == 1 {
		return t.DeleteAt(index)
	}
	items := t.items()
	trimmed := t.empty()
	trimmed.load(append(items[:index:index], items[index+count:]...))
	return trimmed, nil
}
