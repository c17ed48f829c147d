package btree

type treeNode[I SummarizedItem[S], S any] interface {
	isLeaf() bool
	Summary() S
	size() int
}

// leafNode holds items in order. count always equals len(items).
type leafNode[I SummarizedItem[S], S any] struct {
	summary S
	items   []I
}

func (l *leafNode[I, S]) isLeaf() bool { return true }
func (l *leafNode[I, S]) Summary() S   { return l.summary }
func (l *leafNode[I, S]) size() int    { return len(l.items) }

// innerNode caches the number of items below it in count. Every helper which
// changes children recomputes summary and count together.
type innerNode[I SummarizedItem[S], S any] struct {
	summary  S
	count    int
	children []treeNode[I, S]
}

func (n *innerNode[I, S]) isLeaf() bool { return false }
func (n *innerNode[I, S]) Summary() S   { return n.summary }
func (n *innerNode[I, S]) size() int    { return n.count }
