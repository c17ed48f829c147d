package elements

import "fmt"

// Status tells apart the outcomes of an algorithm which may have nothing to
// report.
type Status uint8

const (
	// StatusAbsent means the input itself was missing.
	StatusAbsent Status = iota
	// StatusEmpty means the input was present but held no payloads.
	StatusEmpty
	// StatusFound means the result carries a value.
	StatusFound
)

func (s Status) String() string {
	switch s {
	case StatusAbsent:
		return "absent"
	case StatusEmpty:
		return "empty"
	case StatusFound:
		return "found"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Result is a value together with the status it has been produced with.
// The zero Result reports an absent input.
type Result[T any] struct {
	Value  T
	Status Status
}

// Found wraps a value.
func Found[T any](v T) Result[T] {
	return Result[T]{Value: v, Status: StatusFound}
}

// Absent is the result for a missing input.
func Absent[T any]() Result[T] {
	return Result[T]{Status: StatusAbsent}
}

// Empty is the result for an input without payloads.
func Empty[T any]() Result[T] {
	return Result[T]{Status: StatusEmpty}
}

// Ok reports whether r carries a value.
func (r Result[T]) Ok() bool {
	return r.Status == StatusFound
}

// Err maps the status to ErrAbsentInput or ErrEmptyCollection, or nil if r
// carries a value.
func (r Result[T]) Err() error {
	switch r.Status {
	case StatusFound:
		return nil
	case StatusEmpty:
		return ErrEmptyCollection
	}
	return ErrAbsentInput
}

// Get returns the value and an error for results without one, in the
// conventional Go shape.
func (r Result[T]) Get() (T, error) {
	return r.Value, r.Err()
}
