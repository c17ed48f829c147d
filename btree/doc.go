/*
Package btree provides a persistent, summarized B+ tree which serves as the
ordered container for element payloads.

The tree stores opaque items in its leaves and knows nothing about them except
what clients hand in through configuration:

  - a summary monoid (`Config.Monoid`), aggregating item summaries up the tree,
  - an ordering (`Config.Compare`), required for the ordered operations
    `Insert`, `Find` and `Delete`,
  - a destructor (`Config.Destroy`), called by `Release` for every stored item.

Updates never modify a tree in place. Every mutating operation path-copies the
nodes it touches and returns a new tree, sharing untouched subtrees with the
original. Consequently items may be reachable from more than one tree version.
Ownership of an item stays with the set of versions holding it; clients call
`Release` on the last of these versions only.

Traversal is in item order. `ForEach` matches the visitation contract of
package elements: it calls a visitor for every item and stops as soon as the
visitor asks to stop.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'elements'
func tracer() tracing.Trace {
	return tracing.Select("elements")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
