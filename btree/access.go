package btree

// At returns the leaf item at item index.
func (t *Tree[I, S]) At(index int) (I, error) {
	var zero I
	if index < 0 || index >= t.Len() {
		return zero, ErrIndexOutOfBounds
	}
	n := t.root
	for !n.isLeaf() {
		inner := n.(*innerNode[I, S])
		for _, child := range inner.children {
			if index < child.size() {
				n = child
				break
			}
			index -= child.size()
		}
	}
	return n.(*leafNode[I, S]).items[index], nil
}
