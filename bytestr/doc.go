/*
Package bytestr adapts NUL-terminated byte strings to element containers.

A payload of type *Str owns its bytes, followed by a terminating NUL. There is
no length field; the length of a payload is recomputed by scanning for the
terminator. Package bytestr offers

  - the primitives Length and Compare,
  - Adapter, implementing the ordering, destruction and fold contracts,
  - Concatenation, a growable (optionally bounded) fold accumulator,
  - Tree, an ordered B+ tree of strings, with Join and Locate on top of it.

Absent payloads (nil) are ordered before every present payload. This keeps
Compare a strict total order, and an absent payload never compares equal to
a present one.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bytestr

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'elements'
func tracer() tracing.Trace {
	return tracing.Select("elements")
}

// ErrCapacityExceeded signals a fold into a bounded accumulator which does not
// have enough room left.
var ErrCapacityExceeded = errors.New("bytestr: accumulator capacity exceeded")
