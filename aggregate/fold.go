package aggregate

import (
	"github.com/npillmayer/elements"
)

// Fold walks c and threads acc through visit for every payload.
// It returns the accumulator together with
//
//   - StatusAbsent if c or visit is missing,
//   - StatusEmpty if c holds no payloads,
//   - StatusFound otherwise, even if visit stopped the walk early.
func Fold[T, A any](c elements.Container[T], visit elements.Visitor[T, A], acc A) (A, elements.Status) {
	if elements.IsAbsent(c) || visit == nil {
		return acc, elements.StatusAbsent
	}
	if c.IsEmpty() {
		return acc, elements.StatusEmpty
	}
	if !elements.Visit(c, visit, acc) {
		tracer().Debugf("aggregate: fold stopped early")
	}
	return acc, elements.StatusFound
}
