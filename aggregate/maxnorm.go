package aggregate

import (
	"github.com/npillmayer/elements"
	"github.com/npillmayer/elements/vector"
)

// MaxNorm finds the vector of maximal squared norm in c. The result holds a
// fresh copy of that vector, independent of the payloads in c, and owned by
// the caller. If several vectors share the maximal norm, the first one in
// traversal order wins.
//
// Absent vectors and vectors with a NaN norm are skipped. Only a strictly
// larger norm replaces the accumulator, which starts out as an empty vector
// of norm 0. A container holding nothing but absent, NaN or zero-norm vectors
// therefore yields an empty vector, not a copy of a stored one. An absent or
// empty container yields a result without value.
func MaxNorm(c elements.Container[*vector.Vector]) elements.Result[*vector.Vector] {
	if elements.IsAbsent(c) {
		return elements.Absent[*vector.Vector]()
	}
	if c.IsEmpty() {
		return elements.Empty[*vector.Vector]()
	}
	acc, status := Fold(c, keepLarger, vector.Empty())
	if status != elements.StatusFound {
		return elements.Result[*vector.Vector]{Status: status}
	}
	tracer().Debugf("aggregate: max norm vector has %d elements", acc.Len())
	return elements.Found(acc)
}

// keepLarger copies candidate into acc if its norm exceeds acc's.
func keepLarger(candidate, acc *vector.Vector) bool {
	if candidate == nil {
		return true
	}
	norm := vector.SquaredNorm(candidate)
	if norm.IsNaN() {
		tracer().Debugf("aggregate: skipping vector with NaN norm")
		return true
	}
	if norm.Cmp(vector.SquaredNorm(acc)) > 0 {
		vector.Copy(candidate, acc)
	}
	return true
}
