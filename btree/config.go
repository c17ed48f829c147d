package btree

import "fmt"

const (
	// Base is the minimum occupancy of non-root nodes.
	Base = 6
	// MaxChildren is the maximum fanout of internal nodes.
	MaxChildren = 2 * Base
	// MaxLeafItems is the maximum number of items in a leaf.
	MaxLeafItems = 2 * Base
)

// SummarizedItem ties a leaf item to its summary type at compile time.
type SummarizedItem[S any] interface {
	Summary() S
}

// SummaryMonoid defines how summaries are aggregated up the tree.
//
// For summaries s, t, u, Add should be associative:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero should be the neutral element:
//
//	Add(Zero(), s) == s == Add(s, Zero())
type SummaryMonoid[S any] interface {
	Zero() S
	Add(left, right S) S
}

// Config configures a summarized B+ tree.
type Config[I SummarizedItem[S], S any] struct {
	// Monoid aggregates summaries up the tree. Required.
	Monoid SummaryMonoid[S]
	// Compare orders items. Required for ordered operations only.
	Compare func(a, b I) int
	// Destroy releases an item. Optional; called by Release.
	Destroy func(I)
}

// Ordered reports whether the configuration carries an item ordering.
func (cfg Config[I, S]) Ordered() bool {
	return cfg.Compare != nil
}

func (cfg Config[I, S]) validate() error {
	if cfg.Monoid == nil {
		return fmt.Errorf("%w: monoid is required", ErrInvalidConfig)
	}
	return nil
}
