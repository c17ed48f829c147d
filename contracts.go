package elements

import (
	"reflect"

	"github.com/npillmayer/elements/btree"
)

// Ordering is a total order over payloads of type T. It returns 0 iff a and
// b are equal, a negative value iff a precedes b and a positive value
// otherwise.
type Ordering[T any] func(a, b T) int

// Destructor releases a payload. Destructors accept absent payloads and do
// nothing for them.
type Destructor[T any] func(item T)

// Visitor is called for every payload during traversal, together with an
// accumulator threaded through the walk. Returning false stops the traversal.
type Visitor[T, A any] func(item T, acc A) bool

// Adapter bundles the capabilities a container needs to hold payloads of
// type T.
type Adapter[T any] interface {
	Compare(a, b T) int
	Destroy(item T)
}

// Folder folds a payload into an accumulator. It fails for absent arguments.
type Folder[T, A any] interface {
	Fold(item T, acc A) error
}

// Container is what algorithms see of a container: an emptiness check and a
// traversal primitive. ForEach calls visit for every payload and stops early
// if visit returns false; it reports whether the walk completed.
type Container[T any] interface {
	IsEmpty() bool
	ForEach(visit func(T) bool) bool
}

// IsAbsent reports whether c is missing, either as a nil interface or as an
// interface holding a nil pointer. Nil slices and maps are empty, not absent.
func IsAbsent[T any](c Container[T]) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Visit walks a container, threading acc through every call of visit.
// It reports whether the walk completed; walking an absent container fails.
func Visit[T, A any](c Container[T], visit Visitor[T, A], acc A) bool {
	if IsAbsent(c) || visit == nil {
		return false
	}
	return c.ForEach(func(item T) bool {
		return visit(item, acc)
	})
}

// TreeConfig creates a B+ tree configuration from an adapter and a summary
// monoid. The tree orders payloads by a.Compare and releases them with
// a.Destroy.
func TreeConfig[I btree.SummarizedItem[S], S any](a Adapter[I], monoid btree.SummaryMonoid[S]) btree.Config[I, S] {
	T().Debugf("elements: tree config for adapter %T", a)
	return btree.Config[I, S]{
		Monoid:  monoid,
		Compare: a.Compare,
		Destroy: a.Destroy,
	}
}
